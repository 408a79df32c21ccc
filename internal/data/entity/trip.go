package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Trip struct {
	Base
	Origin         string          `db:"origin"`
	Destination    string          `db:"destination"`
	DepartureTime  time.Time       `db:"departure_time"`
	ArrivalTime    time.Time       `db:"arrival_time"`
	TransportType  string          `db:"transport_type"` // flight, train, bus, ...
	Price          decimal.Decimal `db:"price"`
	AvailableSeats int             `db:"available_seats"`
	Carrier        *string         `db:"carrier"`
}

// TripFilter selects which trips List returns. The zero value means all trips.
type TripFilter struct {
	Origin        string
	Destination   string
	TransportType string
}

// ByRoute reports whether both ends of the route are set.
func (f TripFilter) ByRoute() bool {
	return f.Origin != "" && f.Destination != ""
}
