// Package health serves the root liveness message.
package health

import (
	"net/http"

	"github.com/svtd-dev/TTD-BookingService/internal/api/handlers"
)

const livenessMessage = "Tirupati Balaji Booking Backend Running"

// HealthResponse HTTP response model.
type HealthResponse struct {
	Message string `json:"message"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, HealthResponse{Message: livenessMessage})
}
