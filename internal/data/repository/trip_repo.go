package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"trip-booking/internal/data/entity"
	"trip-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TripRepository interface {
	Create(ctx context.Context, trip *entity.Trip) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)
	FindAll(ctx context.Context, filter entity.TripFilter) ([]*entity.Trip, error)
	Update(ctx context.Context, trip *entity.Trip) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Seat inventory
	DecrementSeats(ctx context.Context, id uuid.UUID, count int) (*entity.Trip, error)
	IncrementSeats(ctx context.Context, id uuid.UUID, count int) error
}

const tripColumns = `id, origin, destination, departure_time, arrival_time, transport_type,
		price, available_seats, carrier, created_at, updated_at`

type tripRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewTripRepository(db database.Querier, log *zap.Logger) TripRepository {
	return &tripRepository{
		db:  db,
		log: log.With(zap.String("repository", "trip")),
	}
}

func scanTrip(row pgx.Row, trip *entity.Trip) error {
	return row.Scan(
		&trip.ID,
		&trip.Origin,
		&trip.Destination,
		&trip.DepartureTime,
		&trip.ArrivalTime,
		&trip.TransportType,
		&trip.Price,
		&trip.AvailableSeats,
		&trip.Carrier,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
}

// Create inserts trip and refreshes it from the stored row.
func (r *tripRepository) Create(ctx context.Context, trip *entity.Trip) error {
	query := `
		INSERT INTO trips (id, origin, destination, departure_time, arrival_time, transport_type,
		                   price, available_seats, carrier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, query,
		trip.ID,
		trip.Origin,
		trip.Destination,
		trip.DepartureTime,
		trip.ArrivalTime,
		trip.TransportType,
		trip.Price,
		trip.AvailableSeats,
		trip.Carrier,
		trip.CreatedAt,
		trip.UpdatedAt,
	)

	if err := scanTrip(row, trip); err != nil {
		r.log.Error("Failed to create trip",
			zap.Error(err),
			zap.String("origin", trip.Origin),
			zap.String("destination", trip.Destination),
		)
		return fmt.Errorf("create trip %s -> %s: %w", trip.Origin, trip.Destination, err)
	}

	return nil
}

func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	var trip entity.Trip
	err := scanTrip(r.db.QueryRow(ctx, query, id), &trip)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find trip by ID",
			zap.Error(err),
			zap.String("trip_id", id.String()),
		)
		return nil, fmt.Errorf("find trip by ID %s: %w", id.String(), err)
	}

	return &trip, nil
}

// FindAll returns trips matching filter. A route filter needs both ends set and
// takes precedence over the transport type filter.
func (r *tripRepository) FindAll(ctx context.Context, filter entity.TripFilter) ([]*entity.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips`
	var args []any

	switch {
	case filter.ByRoute():
		query += ` WHERE origin = $1 AND destination = $2`
		args = append(args, filter.Origin, filter.Destination)
	case filter.TransportType != "":
		query += ` WHERE transport_type = $1`
		args = append(args, filter.TransportType)
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find trips",
			zap.Error(err),
			zap.String("origin", filter.Origin),
			zap.String("destination", filter.Destination),
			zap.String("transport_type", filter.TransportType),
		)
		return nil, fmt.Errorf("find trips: %w", err)
	}
	defer rows.Close()

	trips := make([]*entity.Trip, 0)
	for rows.Next() {
		var trip entity.Trip
		if err := scanTrip(rows, &trip); err != nil {
			r.log.Error("Failed to scan trip row", zap.Error(err))
			return nil, fmt.Errorf("scan trip row: %w", err)
		}
		trips = append(trips, &trip)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate trip rows: %w", err)
	}

	return trips, nil
}

// Update replaces every mutable column and refreshes trip from the stored row,
// so ID and CreatedAt come back as persisted.
func (r *tripRepository) Update(ctx context.Context, trip *entity.Trip) error {
	query := `
		UPDATE trips
		SET origin = $2, destination = $3, departure_time = $4, arrival_time = $5,
		    transport_type = $6, price = $7, available_seats = $8, carrier = $9, updated_at = $10
		WHERE id = $1
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, query,
		trip.ID,
		trip.Origin,
		trip.Destination,
		trip.DepartureTime,
		trip.ArrivalTime,
		trip.TransportType,
		trip.Price,
		trip.AvailableSeats,
		trip.Carrier,
		trip.UpdatedAt,
	)

	err := scanTrip(row, trip)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to update trip",
			zap.Error(err),
			zap.String("trip_id", trip.ID.String()),
		)
		return fmt.Errorf("update trip %s: %w", trip.ID.String(), err)
	}

	return nil
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM trips WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete trip",
			zap.Error(err),
			zap.String("trip_id", id.String()),
		)
		return fmt.Errorf("delete trip %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Trip deleted", zap.String("trip_id", id.String()))
	return nil
}

// DecrementSeats takes count seats from the trip in one conditional UPDATE.
// The row is only touched when enough seats remain, so concurrent callers
// cannot drive available_seats below zero. On success the updated trip is
// returned and its row stays locked until the surrounding transaction ends.
func (r *tripRepository) DecrementSeats(ctx context.Context, id uuid.UUID, count int) (*entity.Trip, error) {
	query := `
		UPDATE trips
		SET available_seats = available_seats - $2, updated_at = NOW()
		WHERE id = $1 AND available_seats >= $2
		RETURNING ` + tripColumns

	// available_seats is an INTEGER, so a larger count can never be satisfied.
	if count <= math.MaxInt32 {
		var trip entity.Trip
		err := scanTrip(r.db.QueryRow(ctx, query, id, count), &trip)
		if err == nil {
			return &trip, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			r.log.Error("Failed to decrement seats",
				zap.Error(err),
				zap.String("trip_id", id.String()),
				zap.Int("count", count),
			)
			return nil, fmt.Errorf("decrement seats for trip %s: %w", id.String(), err)
		}
	}

	// Nothing updated: either the trip is gone or it is short on seats.
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM trips WHERE id = $1)`, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check trip existence",
			zap.Error(err),
			zap.String("trip_id", id.String()),
		)
		return nil, fmt.Errorf("check trip %s exists: %w", id.String(), err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	return nil, ErrInsufficientSeats
}

// IncrementSeats gives count seats back to the trip.
func (r *tripRepository) IncrementSeats(ctx context.Context, id uuid.UUID, count int) error {
	query := `UPDATE trips SET available_seats = available_seats + $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, count)
	if err != nil {
		r.log.Error("Failed to increment seats",
			zap.Error(err),
			zap.String("trip_id", id.String()),
			zap.Int("count", count),
		)
		return fmt.Errorf("increment seats for trip %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
