package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"trip-booking/internal/data/entity"
	"trip-booking/internal/dto/request"
	"trip-booking/internal/usecase"
	"trip-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TripHandler struct {
	service usecase.TripService
	log     *zap.Logger
}

func NewTripHandler(service usecase.TripService, log *zap.Logger) *TripHandler {
	return &TripHandler{
		service: service,
		log:     log.With(zap.String("handler", "trip")),
	}
}

// GetTrips handles GET /api/trips
// Optional filters: ?origin=&destination= (both required) or ?transportType=
func (h *TripHandler) GetTrips(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := entity.TripFilter{
		Origin:        query.Get("origin"),
		Destination:   query.Get("destination"),
		TransportType: query.Get("transportType"),
	}

	trips, err := h.service.GetTrips(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err, "get trips")
		return
	}

	utils.ResponseSuccess(w, trips)
}

// GetTripByID handles GET /api/trips/{id}
func (h *TripHandler) GetTripByID(w http.ResponseWriter, r *http.Request) {
	trip, err := h.service.GetTripByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get trip by ID")
		return
	}

	utils.ResponseSuccess(w, trip)
}

// CreateTrip handles POST /api/trips
func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req request.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	trip, err := h.service.CreateTrip(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create trip")
		return
	}

	utils.ResponseCreated(w, trip)
}

// UpdateTrip handles PUT /api/trips/{id}
func (h *TripHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req request.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	trip, err := h.service.UpdateTrip(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "update trip")
		return
	}

	utils.ResponseSuccess(w, trip)
}

// DeleteTrip handles DELETE /api/trips/{id}
func (h *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTrip(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, err, "delete trip")
		return
	}

	utils.ResponseMessage(w, "Trip deleted")
}

func (h *TripHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var verr *usecase.ValidationError

	switch {
	case errors.Is(err, usecase.ErrTripNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Trip not found")

	case errors.As(err, &verr):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed: "+utils.FormatValidationErrors(verr.Fields))

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
