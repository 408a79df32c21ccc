package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// bookingTransitions lists the statuses each status may move to.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled},
	BookingStatusCancelled: nil,
}

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// CanTransitionTo reports whether a booking in status s may move to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type TripBooking struct {
	Base
	TripID        uuid.UUID       `db:"trip_id"`
	UserID        string          `db:"user_id"`
	NumberOfSeats int             `db:"number_of_seats"`
	TotalPrice    decimal.Decimal `db:"total_price"`
	Status        BookingStatus   `db:"status"`
}
