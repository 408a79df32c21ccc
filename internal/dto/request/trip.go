package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripRequest carries every mutable trip field. It is used for both create and
// full-replacement update. Bounds match the trips column types: price is
// NUMERIC(12,2) and availableSeats is INTEGER.
type TripRequest struct {
	Origin         string           `json:"origin" validate:"required,max=100"`
	Destination    string           `json:"destination" validate:"required,max=100"`
	DepartureTime  time.Time        `json:"departureTime" validate:"required"`
	ArrivalTime    time.Time        `json:"arrivalTime" validate:"required,gtfield=DepartureTime"`
	TransportType  string           `json:"transportType" validate:"required,max=50"`
	Price          *decimal.Decimal `json:"price" validate:"required,gte=0,lte=9999999999.99"`
	AvailableSeats *int             `json:"availableSeats" validate:"required,gte=0,max=2147483647"`
	Carrier        *string          `json:"carrier,omitempty" validate:"omitempty,max=100"`
}
