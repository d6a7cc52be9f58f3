// Package diagnostics serves the /test endpoint: persistence reachability
// and the configured environment markers. It never fails the request;
// whatever is broken is reported in the payload.
package diagnostics

import (
	"net/http"

	"github.com/svtd-dev/TTD-BookingService/internal/api/handlers"
)

const relationsLimit = 10

const (
	statusRunning      = "running"
	statusConnected    = "connected"
	statusNotConnected = "not connected"
	statusAvailable    = "available"
	statusNotAvailable = "not available"
	markerSet          = "set"
	markerNotSet       = "not set"
)

// StatusResponse HTTP response model.
type StatusResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type Handler struct {
	store       Store
	bookingRepo BookingRepository
	urlFromEnv  bool
	nameFromEnv bool
	logger      Logger
}

// NewHandler creates the diagnostics handler. store may be nil when the
// connection could not be opened at startup.
func NewHandler(store Store, bookingRepo BookingRepository, urlFromEnv, nameFromEnv bool, logger Logger) *Handler {
	return &Handler{
		store:       store,
		bookingRepo: bookingRepo,
		urlFromEnv:  urlFromEnv,
		nameFromEnv: nameFromEnv,
		logger:      logger,
	}
}

// Handle GET /test
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Backend:          statusRunning,
		Database:         statusNotAvailable,
		DatabaseURL:      markerNotSet,
		DatabaseName:     markerNotSet,
		ConnectionStatus: statusNotConnected,
		Collections:      []string{},
	}

	if h.urlFromEnv {
		resp.DatabaseURL = markerSet
	}
	if h.nameFromEnv {
		resp.DatabaseName = markerSet
	}

	if h.store != nil {
		if err := h.store.PingContext(r.Context()); err != nil {
			h.logger.Warn("GET /test - Database ping failed: %v", err)
			resp.Database = statusNotAvailable
		} else {
			resp.Database = statusAvailable
			resp.ConnectionStatus = statusConnected

			relations, err := h.bookingRepo.Relations(r.Context(), relationsLimit)
			if err != nil {
				h.logger.Warn("GET /test - Failed to list relations: %v", err)
			} else {
				resp.Collections = relations
			}
		}
	}

	h.logger.Info("GET /test - Diagnostics: database=%s, connection=%s", resp.Database, resp.ConnectionStatus)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
