package models

import (
	"strconv"
	"time"

	"github.com/svtd-dev/TTD-BookingService/internal/domain"
)

// ListBookingsRequest narrows the booking listing.
type ListBookingsRequest struct {
	Email *string
}

// BookingResponse one booking as exposed over HTTP.
// Identifiers are stringified at this boundary.
type BookingResponse struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Date        string `json:"date"`
	Slot        string `json:"slot"`
	Tickets     int    `json:"tickets"`
	DarshanType string `json:"darshan_type"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// BookingListResponse a list of bookings.
type BookingListResponse struct {
	Items []BookingResponse `json:"items"`
}

// FromDomainBooking converts a domain booking to its HTTP shape.
func FromDomainBooking(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          strconv.FormatInt(b.ID, 10),
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Date:        b.Date,
		Slot:        b.Slot,
		Tickets:     b.Tickets,
		DarshanType: b.DarshanType,
	}
	if !b.CreatedAt.IsZero() {
		resp.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// FromDomainBookingList converts a slice of domain bookings.
func FromDomainBookingList(bs []*domain.Booking) *BookingListResponse {
	items := make([]BookingResponse, len(bs))
	for i, b := range bs {
		items[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Items: items}
}
