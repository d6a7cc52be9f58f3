package create_booking

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"

	"github.com/svtd-dev/TTD-BookingService/internal/domain"
	createBooking "github.com/svtd-dev/TTD-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
type CreateBookingRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Date        string `json:"date"` // "2025-01-01"
	Slot        string `json:"slot"` // "06:00-08:00"
	Tickets     int    `json:"tickets"`
	DarshanType string `json:"darshan_type,omitempty"`
}

// CreateBookingResponse HTTP response model.
type CreateBookingResponse struct {
	OK        bool   `json:"ok"`
	BookingID string `json:"booking_id"`
}

// Validate applies the schema-level field checks. These run before any
// capacity accounting; a request with tickets=300 never reaches the
// capacity check.
func (r *CreateBookingRequest) Validate() error {
	if len(r.Name) < domain.MinNameLength {
		return fmt.Errorf("name must be at least %d characters", domain.MinNameLength)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email must be a valid email address")
	}
	if len(r.Phone) < domain.MinPhoneLength || len(r.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("phone must be %d to %d characters", domain.MinPhoneLength, domain.MaxPhoneLength)
	}
	if r.Date == "" {
		return errors.New("date is required (YYYY-MM-DD)")
	}
	if r.Slot == "" {
		return errors.New("slot is required")
	}
	if r.Tickets < domain.MinTickets || r.Tickets > domain.MaxTickets {
		return fmt.Errorf("tickets must be between %d and %d", domain.MinTickets, domain.MaxTickets)
	}
	return nil
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Date:        r.Date,
		Slot:        r.Slot,
		Tickets:     r.Tickets,
		DarshanType: r.DarshanType,
	}
}

// FromUseCaseResponse converts the use case result into the HTTP response.
// The generated identifier is stringified at this boundary.
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		OK:        true,
		BookingID: strconv.FormatInt(resp.ID, 10),
	}
}
