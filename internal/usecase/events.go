package usecase

import (
	"time"

	"trip-booking/internal/data/entity"
	"trip-booking/internal/dto/response"
)

const (
	SubjectBookingCreated       = "booking.created"
	SubjectBookingStatusChanged = "booking.status_changed"
)

// BookingEvent is the payload published after a booking change commits.
type BookingEvent struct {
	Type           string                   `json:"type"`
	Booking        response.BookingResponse `json:"booking"`
	PreviousStatus entity.BookingStatus     `json:"previousStatus,omitempty"`
	OccurredAt     time.Time                `json:"occurredAt"`
}
