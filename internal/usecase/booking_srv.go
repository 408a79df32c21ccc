package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trip-booking/internal/data/entity"
	"trip-booking/internal/data/repository"
	"trip-booking/internal/dto/request"
	"trip-booking/internal/dto/response"
	"trip-booking/pkg/broker"
	"trip-booking/pkg/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	publisher broker.Publisher
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, publisher broker.Publisher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		publisher: publisher,
		log:       log.With(zap.String("service", "booking")),
	}
}

// CreateBooking takes the seats and records the booking in one transaction.
// The seat decrement returns the trip row it locked, so the price used for
// the total is the one in effect when the seats were taken.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
		return nil, err
	}

	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		metrics.BookingsRejected.WithLabelValues("trip_not_found").Inc()
		return nil, ErrTripNotFound
	}

	now := time.Now().UTC()
	booking := &entity.TripBooking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TripID:        tripID,
		UserID:        req.UserID,
		NumberOfSeats: req.NumberOfSeats,
		Status:        entity.BookingStatusPending,
	}

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		trip, err := tx.Trip.DecrementSeats(ctx, tripID, req.NumberOfSeats)
		if err != nil {
			return err
		}

		booking.TotalPrice = trip.Price.Mul(decimal.NewFromInt(int64(req.NumberOfSeats)))
		return tx.Booking.Create(ctx, booking)
	})

	switch {
	case errors.Is(err, repository.ErrNotFound):
		metrics.BookingsRejected.WithLabelValues("trip_not_found").Inc()
		return nil, ErrTripNotFound
	case errors.Is(err, repository.ErrInsufficientSeats):
		metrics.BookingsRejected.WithLabelValues("insufficient_seats").Inc()
		s.log.Warn("Not enough seats",
			zap.String("trip_id", req.TripID),
			zap.Int("requested", req.NumberOfSeats),
		)
		return nil, ErrInsufficientSeats
	case err != nil:
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingsCreated.Inc()
	metrics.SeatsBooked.Add(float64(booking.NumberOfSeats))

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("trip_id", req.TripID),
		zap.String("user_id", req.UserID),
		zap.Int("seat_count", booking.NumberOfSeats),
		zap.String("total_price", booking.TotalPrice.StringFixed(2)),
	)

	resp := response.BookingToResponse(booking)
	s.publish(ctx, SubjectBookingCreated, BookingEvent{
		Type:       SubjectBookingCreated,
		Booking:    resp,
		OccurredAt: now,
	})

	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	out := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = response.BookingToResponse(b)
	}
	return out, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// UpdateBookingStatus moves a booking along pending -> confirmed -> cancelled.
// Cancelling returns the booked seats to the trip in the same transaction.
// Requesting the current status is a no-op.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	status := entity.BookingStatus(req.Status)
	if !status.Valid() {
		s.log.Warn("Unknown booking status", zap.String("status", req.Status))
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	var (
		booking  *entity.TripBooking
		previous entity.BookingStatus
	)

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		b, err := tx.Booking.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		booking, previous = b, b.Status

		if b.Status == status {
			return nil
		}
		if !b.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, b.Status, status)
		}

		now := time.Now().UTC()
		if err := tx.Booking.UpdateStatus(ctx, b.ID, status, now); err != nil {
			return err
		}

		if status == entity.BookingStatusCancelled {
			err := tx.Trip.IncrementSeats(ctx, b.TripID, b.NumberOfSeats)
			if errors.Is(err, repository.ErrNotFound) {
				s.log.Warn("Cancelled booking references a missing trip",
					zap.String("booking_id", bookingID),
					zap.String("trip_id", b.TripID.String()),
				)
			} else if err != nil {
				return err
			}
		}

		b.Status = status
		b.UpdatedAt = now
		return nil
	})

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, ErrBookingNotFound
	case errors.Is(err, ErrInvalidTransition):
		s.log.Warn("Rejected status transition", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("update booking %s status: %w", bookingID, err)
	}

	resp := response.BookingToResponse(booking)
	if previous == status {
		return &resp, nil
	}

	metrics.BookingStatusChanges.WithLabelValues(string(status)).Inc()
	if status == entity.BookingStatusCancelled {
		metrics.SeatsReleased.Add(float64(booking.NumberOfSeats))
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(previous)),
		zap.String("to", string(status)),
	)

	s.publish(ctx, SubjectBookingStatusChanged, BookingEvent{
		Type:           SubjectBookingStatusChanged,
		Booking:        resp,
		PreviousStatus: previous,
		OccurredAt:     booking.UpdatedAt,
	})

	return &resp, nil
}

// publish is best effort: the booking is already committed.
func (s *bookingService) publish(ctx context.Context, subject string, event BookingEvent) {
	if err := s.publisher.Publish(ctx, subject, event); err != nil {
		s.log.Warn("Failed to publish event",
			zap.Error(err),
			zap.String("subject", subject),
			zap.String("booking_id", event.Booking.ID),
		)
	}
}
