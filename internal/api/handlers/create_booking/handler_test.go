package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/svtd-dev/TTD-BookingService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp  *createBooking.Response
	err   error
	calls int
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
	f.calls++
	return f.resp, f.err
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"name":    "Ramesh Kumar",
		"email":   "ramesh@example.com",
		"phone":   "9876543210",
		"date":    "2025-01-01",
		"slot":    "06:00-08:00",
		"tickets": 2,
	}
}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{ID: 42, CreatedAt: time.Now()}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, validBody())

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "42", resp.BookingID)
}

func TestHandle_SchemaValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{name: "name too short", mutate: func(b map[string]interface{}) { b["name"] = "R" }},
		{name: "invalid email", mutate: func(b map[string]interface{}) { b["email"] = "not-an-email" }},
		{name: "phone too short", mutate: func(b map[string]interface{}) { b["phone"] = "1234567" }},
		{name: "phone too long", mutate: func(b map[string]interface{}) { b["phone"] = "1234567890123456" }},
		{name: "zero tickets", mutate: func(b map[string]interface{}) { b["tickets"] = 0 }},
		{name: "eleven tickets", mutate: func(b map[string]interface{}) { b["tickets"] = 11 }},
		{name: "tickets above any capacity", mutate: func(b map[string]interface{}) { b["tickets"] = 300 }},
		{name: "missing date", mutate: func(b map[string]interface{}) { b["date"] = "" }},
		{name: "missing slot", mutate: func(b map[string]interface{}) { b["slot"] = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			h := NewHandler(uc, nopLogger{})

			body := validBody()
			tt.mutate(body)
			rec := doRequest(t, h, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, uc.calls, "schema rejection must not reach the use case")
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, uc.calls)
}

func TestHandle_InvalidDateFromUseCase(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInvalidDate}
	h := NewHandler(uc, nopLogger{})

	body := validBody()
	body["date"] = "2025-13-45"
	rec := doRequest(t, h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid date format. Use YYYY-MM-DD")
}

func TestHandle_InvalidSlotFromUseCase(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInvalidSlot}
	h := NewHandler(uc, nopLogger{})

	body := validBody()
	body["slot"] = "99:00-100:00"
	rec := doRequest(t, h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid slot selected")
}

func TestHandle_CapacityExceeded(t *testing.T) {
	uc := &fakeUseCase{err: &createBooking.CapacityExceededError{
		Date:      "2025-01-01",
		Slot:      "06:00-08:00",
		Remaining: 0,
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, validBody())

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only 0 tickets remaining for 06:00-08:00 on 2025-01-01")
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInternal}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, validBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
