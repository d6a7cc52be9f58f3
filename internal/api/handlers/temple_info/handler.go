// Package temple_info serves the static temple catalog.
package temple_info

import (
	"net/http"

	"github.com/svtd-dev/TTD-BookingService/internal/api/handlers"
	"github.com/svtd-dev/TTD-BookingService/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
}

// TempleInfoResponse HTTP response model.
type TempleInfoResponse struct {
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	DarshanTypes []string `json:"darshan_types"`
	Slots        []string `json:"slots"`
	SlotCapacity int      `json:"slot_capacity"`
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/temple/info
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, TempleInfoResponse{
		Name:         domain.TempleName,
		Location:     domain.TempleLocation,
		DarshanTypes: domain.DarshanTypes,
		Slots:        domain.Slots,
		SlotCapacity: domain.SlotCapacity,
	})
}
