package usecase

import (
	"trip-booking/internal/data/repository"
	"trip-booking/pkg/broker"

	"go.uber.org/zap"
)

type Service struct {
	Trip    TripService
	Booking BookingService
}

func NewService(repo *repository.Repository, publisher broker.Publisher, log *zap.Logger) *Service {
	return &Service{
		Trip:    NewTripService(repo.Trip, log),
		Booking: NewBookingService(repo, publisher, log),
	}
}
