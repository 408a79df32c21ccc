package repository

import (
	"context"
	"errors"
	"fmt"

	"trip-booking/pkg/database"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientSeats is returned when a trip has fewer seats than requested.
	ErrInsufficientSeats = errors.New("insufficient seats")
)

type Repository struct {
	Trip    TripRepository
	Booking BookingRepository

	db  database.PgxIface
	log *zap.Logger
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return newRepository(db, db, log)
}

func newRepository(q database.Querier, db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Trip:    NewTripRepository(q, log),
		Booking: NewBookingRepository(q, log),
		db:      db,
		log:     log,
	}
}

// WithTx runs fn against repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				r.log.Error("Failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	if err = fn(newRepository(tx, r.db, r.log)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
