package wire

import (
	"trip-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings/user/{userId} - newest first
		r.Get("/user/{userId}", bookingHandler.GetUserBookings)

		r.Get("/{id}", bookingHandler.GetBookingByID)
		r.Patch("/{id}/status", bookingHandler.UpdateBookingStatus)
	})
}
