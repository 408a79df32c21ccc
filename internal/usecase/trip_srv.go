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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TripService interface {
	GetTrips(ctx context.Context, filter entity.TripFilter) ([]response.TripResponse, error)
	GetTripByID(ctx context.Context, tripID string) (*response.TripResponse, error)
	CreateTrip(ctx context.Context, req *request.TripRequest) (*response.TripResponse, error)
	UpdateTrip(ctx context.Context, tripID string, req *request.TripRequest) (*response.TripResponse, error)
	DeleteTrip(ctx context.Context, tripID string) error
}

type tripService struct {
	tripRepo repository.TripRepository
	log      *zap.Logger
}

func NewTripService(tripRepo repository.TripRepository, log *zap.Logger) TripService {
	return &tripService{
		tripRepo: tripRepo,
		log:      log.With(zap.String("service", "trip")),
	}
}

// parseTripID treats a malformed ID like an unknown one.
func parseTripID(tripID string) (uuid.UUID, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return uuid.Nil, ErrTripNotFound
	}
	return id, nil
}

func (s *tripService) GetTrips(ctx context.Context, filter entity.TripFilter) ([]response.TripResponse, error) {
	trips, err := s.tripRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get trips: %w", err)
	}

	return response.TripsToResponse(trips), nil
}

func (s *tripService) GetTripByID(ctx context.Context, tripID string) (*response.TripResponse, error) {
	id, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get trip %s: %w", tripID, err)
	}

	resp := response.TripToResponse(trip)
	return &resp, nil
}

func (s *tripService) CreateTrip(ctx context.Context, req *request.TripRequest) (*response.TripResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create trip validation failed", zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	trip := &entity.Trip{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyTripRequest(trip, req)

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	s.log.Info("Trip created",
		zap.String("trip_id", trip.ID.String()),
		zap.String("origin", trip.Origin),
		zap.String("destination", trip.Destination),
	)

	resp := response.TripToResponse(trip)
	return &resp, nil
}

func (s *tripService) UpdateTrip(ctx context.Context, tripID string, req *request.TripRequest) (*response.TripResponse, error) {
	id, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}

	if err := validate(req); err != nil {
		s.log.Warn("Update trip validation failed", zap.Error(err), zap.String("trip_id", tripID))
		return nil, err
	}

	trip := &entity.Trip{
		Base: entity.Base{
			ID:        id,
			UpdatedAt: time.Now().UTC(),
		},
	}
	applyTripRequest(trip, req)

	err = s.tripRepo.Update(ctx, trip)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update trip %s: %w", tripID, err)
	}

	s.log.Info("Trip updated", zap.String("trip_id", tripID))

	resp := response.TripToResponse(trip)
	return &resp, nil
}

func (s *tripService) DeleteTrip(ctx context.Context, tripID string) error {
	id, err := parseTripID(tripID)
	if err != nil {
		return err
	}

	err = s.tripRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTripNotFound
	}
	if err != nil {
		return fmt.Errorf("delete trip %s: %w", tripID, err)
	}

	return nil
}

func applyTripRequest(trip *entity.Trip, req *request.TripRequest) {
	trip.Origin = req.Origin
	trip.Destination = req.Destination
	trip.DepartureTime = req.DepartureTime.UTC()
	trip.ArrivalTime = req.ArrivalTime.UTC()
	trip.TransportType = req.TransportType
	trip.Price = req.Price.Round(2)
	trip.AvailableSeats = *req.AvailableSeats
	trip.Carrier = req.Carrier
}
