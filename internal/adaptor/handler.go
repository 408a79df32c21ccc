package adaptor

import (
	"trip-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Trip    *TripHandler
	Booking *BookingHandler
	Health  *HealthHandler
}

func NewHandler(service *usecase.Service, serviceName string, log *zap.Logger) *Handler {
	return &Handler{
		Trip:    NewTripHandler(service.Trip, log),
		Booking: NewBookingHandler(service.Booking, log),
		Health:  NewHealthHandler(serviceName),
	}
}
