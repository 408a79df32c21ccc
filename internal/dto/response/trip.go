package response

import (
	"time"

	"trip-booking/internal/data/entity"
)

type TripResponse struct {
	ID             string    `json:"id"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  time.Time `json:"departureTime"`
	ArrivalTime    time.Time `json:"arrivalTime"`
	TransportType  string    `json:"transportType"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"availableSeats"`
	Carrier        *string   `json:"carrier"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func TripToResponse(trip *entity.Trip) TripResponse {
	return TripResponse{
		ID:             trip.ID.String(),
		Origin:         trip.Origin,
		Destination:    trip.Destination,
		DepartureTime:  trip.DepartureTime,
		ArrivalTime:    trip.ArrivalTime,
		TransportType:  trip.TransportType,
		Price:          trip.Price.InexactFloat64(),
		AvailableSeats: trip.AvailableSeats,
		Carrier:        trip.Carrier,
		CreatedAt:      trip.CreatedAt,
		UpdatedAt:      trip.UpdatedAt,
	}
}

func TripsToResponse(trips []*entity.Trip) []TripResponse {
	out := make([]TripResponse, len(trips))
	for i, trip := range trips {
		out[i] = TripToResponse(trip)
	}
	return out
}
