package create_booking

import (
	"errors"
	"net/http"

	"github.com/svtd-dev/TTD-BookingService/internal/api/handlers"
	createBooking "github.com/svtd-dev/TTD-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "Invalid date format. Use YYYY-MM-DD"
	msgInvalidSlot        = "Invalid slot selected"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Schema-level field validation, before any accounting.
	if err := req.Validate(); err != nil {
		h.logger.Warn("POST /api/bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var capErr *createBooking.CapacityExceededError

		switch {
		case errors.As(err, &capErr):
			// 409 body carries the exact remaining count.
			h.logger.Warn("POST /api/bookings - Capacity exceeded: date=%s, slot=%s, remaining=%d",
				capErr.Date, capErr.Slot, capErr.Remaining)
			handlers.RespondError(w, http.StatusConflict, capErr.Error())

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /api/bookings - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /api/bookings - Invalid slot: %s", req.Slot)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("POST /api/bookings - Failed to create booking: email=%s, error=%v",
				req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/bookings - Booking created successfully: booking_id=%d, email=%s",
		result.ID, req.Email)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
