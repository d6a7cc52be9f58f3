package get_bookings

import (
	"net/http"

	"github.com/svtd-dev/TTD-BookingService/internal/api/handlers"
	"github.com/svtd-dev/TTD-BookingService/internal/service/bookings/models"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings?email=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	var emailPtr *string
	if email != "" {
		emailPtr = &email
	}

	result, err := h.service.List(r.Context(), &models.ListBookingsRequest{Email: emailPtr})
	if err != nil {
		h.logger.Error("GET /api/bookings - Failed to list bookings: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /api/bookings - Bookings retrieved successfully: email=%s, count=%d",
		email, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}
