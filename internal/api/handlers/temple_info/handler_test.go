package temple_info

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svtd-dev/TTD-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	h := NewHandler(nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/temple/info", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp TempleInfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.TempleName, resp.Name)
	assert.Equal(t, domain.TempleLocation, resp.Location)
	assert.Equal(t, domain.Slots, resp.Slots)
	assert.Equal(t, domain.DarshanTypes, resp.DarshanTypes)
	assert.Equal(t, domain.SlotCapacity, resp.SlotCapacity)
}
