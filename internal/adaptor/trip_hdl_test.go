package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"trip-booking/internal/data/entity"
	"trip-booking/internal/dto/request"
	"trip-booking/internal/dto/response"
	"trip-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTripHandler() (*mockTripService, *TripHandler) {
	svc := &mockTripService{}
	return svc, NewTripHandler(svc, zap.NewNop())
}

func TestTripHandler_GetTrips_Filters(t *testing.T) {
	tests := []struct {
		name   string
		target string
		filter entity.TripFilter
	}{
		{"no filter", "/api/trips", entity.TripFilter{}},
		{"route", "/api/trips?origin=NYC&destination=BOS", entity.TripFilter{Origin: "NYC", Destination: "BOS"}},
		{"transport type", "/api/trips?transportType=bus", entity.TripFilter{TransportType: "bus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, h := newTripHandler()
			svc.On("GetTrips", mock.Anything, tt.filter).
				Return([]response.TripResponse{{ID: "t1", Origin: "NYC"}}, nil).Once()

			rec, env := serve(t, http.MethodGet, "/api/trips", tt.target, "", h.GetTrips)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, env.Success)
			var trips []response.TripResponse
			require.NoError(t, json.Unmarshal(env.Data, &trips))
			assert.Len(t, trips, 1)
			svc.AssertExpectations(t)
		})
	}
}

func TestTripHandler_GetTripByID_NotFound(t *testing.T) {
	svc, h := newTripHandler()
	svc.On("GetTripByID", mock.Anything, "missing").Return(nil, usecase.ErrTripNotFound)

	rec, env := serve(t, http.MethodGet, "/api/trips/{id}", "/api/trips/missing", "", h.GetTripByID)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Trip not found", env.Error)
}

func TestTripHandler_CreateTrip(t *testing.T) {
	svc, h := newTripHandler()
	svc.On("CreateTrip", mock.Anything, mock.MatchedBy(func(req *request.TripRequest) bool {
		return req.Origin == "NYC" && req.Price != nil && req.Price.String() == "50" && *req.AvailableSeats == 10
	})).Return(&response.TripResponse{ID: "t1", Origin: "NYC", Price: 50, AvailableSeats: 10}, nil)

	body := `{"origin":"NYC","destination":"BOS","departureTime":"2025-02-01T08:00:00Z",
		"arrivalTime":"2025-02-01T12:00:00Z","transportType":"train","price":50,"availableSeats":10}`
	rec, env := serve(t, http.MethodPost, "/api/trips", "/api/trips", body, h.CreateTrip)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	var trip response.TripResponse
	require.NoError(t, json.Unmarshal(env.Data, &trip))
	assert.Equal(t, "t1", trip.ID)
	assert.Equal(t, 50.0, trip.Price)
	svc.AssertExpectations(t)
}

func TestTripHandler_CreateTrip_BadBody(t *testing.T) {
	svc, h := newTripHandler()

	rec, env := serve(t, http.MethodPost, "/api/trips", "/api/trips", `{"origin":`, h.CreateTrip)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", env.Error)
	svc.AssertNotCalled(t, "CreateTrip", mock.Anything, mock.Anything)
}

func TestTripHandler_CreateTrip_Validation(t *testing.T) {
	svc, h := newTripHandler()
	svc.On("CreateTrip", mock.Anything, mock.Anything).
		Return(nil, &usecase.ValidationError{Fields: map[string]string{"origin": "origin is required"}})

	rec, env := serve(t, http.MethodPost, "/api/trips", "/api/trips", `{}`, h.CreateTrip)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed: origin: origin is required", env.Error)
}

func TestTripHandler_UpdateTrip(t *testing.T) {
	svc, h := newTripHandler()
	svc.On("UpdateTrip", mock.Anything, "t1", mock.Anything).
		Return(&response.TripResponse{ID: "t1", AvailableSeats: 4}, nil)

	rec, env := serve(t, http.MethodPut, "/api/trips/{id}", "/api/trips/t1", `{"origin":"NYC"}`, h.UpdateTrip)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	svc.AssertExpectations(t)
}

func TestTripHandler_DeleteTrip(t *testing.T) {
	svc, h := newTripHandler()
	svc.On("DeleteTrip", mock.Anything, "t1").Return(nil)
	svc.On("DeleteTrip", mock.Anything, "t2").Return(usecase.ErrTripNotFound)

	rec, env := serve(t, http.MethodDelete, "/api/trips/{id}", "/api/trips/t1", "", h.DeleteTrip)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Trip deleted", env.Message)

	rec, env = serve(t, http.MethodDelete, "/api/trips/{id}", "/api/trips/t2", "", h.DeleteTrip)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Trip not found", env.Error)
}

func TestTripHandler_InternalError(t *testing.T) {
	svc, h := newTripHandler()
	svc.On("GetTrips", mock.Anything, mock.Anything).Return(nil, errors.New("pool closed"))

	rec, env := serve(t, http.MethodGet, "/api/trips", "/api/trips", "", h.GetTrips)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", env.Error)
}
