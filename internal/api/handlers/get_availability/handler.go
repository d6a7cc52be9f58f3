package get_availability

import (
	"errors"
	"net/http"

	"github.com/svtd-dev/TTD-BookingService/internal/api/handlers"
	getAvailability "github.com/svtd-dev/TTD-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingDate = "date is required (YYYY-MM-DD)"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrMissingDate):
			h.logger.Warn("GET /api/availability - Missing date")
			handlers.RespondBadRequest(w, msgMissingDate)

		default:
			h.logger.Error("GET /api/availability - Failed to get availability: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /api/availability - Availability retrieved successfully: date=%s, slots=%d",
		date, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
