package wire

import (
	"trip-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTrip(r chi.Router, tripHandler *adaptor.TripHandler) {
	r.Route("/trips", func(r chi.Router) {
		// GET /api/trips?origin=&destination= | ?transportType=
		r.Get("/", tripHandler.GetTrips)
		r.Post("/", tripHandler.CreateTrip)

		r.Get("/{id}", tripHandler.GetTripByID)
		r.Put("/{id}", tripHandler.UpdateTrip)
		r.Delete("/{id}", tripHandler.DeleteTrip)
	})
}
