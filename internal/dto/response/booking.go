package response

import (
	"time"

	"trip-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	TripID        string               `json:"tripId"`
	UserID        string               `json:"userId"`
	NumberOfSeats int                  `json:"numberOfSeats"`
	TotalPrice    float64              `json:"totalPrice"`
	Status        entity.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func BookingToResponse(booking *entity.TripBooking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		TripID:        booking.TripID.String(),
		UserID:        booking.UserID,
		NumberOfSeats: booking.NumberOfSeats,
		TotalPrice:    booking.TotalPrice.InexactFloat64(),
		Status:        booking.Status,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}
