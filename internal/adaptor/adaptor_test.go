package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trip-booking/internal/data/entity"
	"trip-booking/internal/dto/request"
	"trip-booking/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTripService struct {
	mock.Mock
}

func (m *mockTripService) GetTrips(ctx context.Context, filter entity.TripFilter) ([]response.TripResponse, error) {
	args := m.Called(ctx, filter)
	trips, _ := args.Get(0).([]response.TripResponse)
	return trips, args.Error(1)
}

func (m *mockTripService) GetTripByID(ctx context.Context, tripID string) (*response.TripResponse, error) {
	args := m.Called(ctx, tripID)
	trip, _ := args.Get(0).(*response.TripResponse)
	return trip, args.Error(1)
}

func (m *mockTripService) CreateTrip(ctx context.Context, req *request.TripRequest) (*response.TripResponse, error) {
	args := m.Called(ctx, req)
	trip, _ := args.Get(0).(*response.TripResponse)
	return trip, args.Error(1)
}

func (m *mockTripService) UpdateTrip(ctx context.Context, tripID string, req *request.TripRequest) (*response.TripResponse, error) {
	args := m.Called(ctx, tripID, req)
	trip, _ := args.Get(0).(*response.TripResponse)
	return trip, args.Error(1)
}

func (m *mockTripService) DeleteTrip(ctx context.Context, tripID string) error {
	return m.Called(ctx, tripID).Error(0)
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, req)
	booking, _ := args.Get(0).(*response.BookingResponse)
	return booking, args.Error(1)
}

func (m *mockBookingService) GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	args := m.Called(ctx, userID)
	bookings, _ := args.Get(0).([]response.BookingResponse)
	return bookings, args.Error(1)
}

func (m *mockBookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	args := m.Called(ctx, bookingID)
	booking, _ := args.Get(0).(*response.BookingResponse)
	return booking, args.Error(1)
}

func (m *mockBookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, bookingID, req)
	booking, _ := args.Get(0).(*response.BookingResponse)
	return booking, args.Error(1)
}

// envelope mirrors utils.Response with a raw data field.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// serve routes a single request through a chi router so URL params resolve.
func serve(t *testing.T, method, pattern, target, body string, h http.HandlerFunc) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}
