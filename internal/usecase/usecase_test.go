package usecase

import (
	"context"
	"testing"
	"time"

	"trip-booking/internal/data/entity"
	"trip-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	tripColumnNames = []string{
		"id", "origin", "destination", "departure_time", "arrival_time", "transport_type",
		"price", "available_seats", "carrier", "created_at", "updated_at",
	}
	bookingColumnNames = []string{
		"id", "trip_id", "user_id", "number_of_seats", "total_price", "status", "created_at", "updated_at",
	}
	fixedTime = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *repository.Repository) {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool, repository.NewRepository(pool, zap.NewNop())
}

// tripRow returns a NYC to BOS train row. IDs and prices are text, as the driver hands them to Scan.
func tripRow(id uuid.UUID, price string, seats int) *pgxmock.Rows {
	var carrier *string
	return pgxmock.NewRows(tripColumnNames).AddRow(
		id.String(), "NYC", "BOS",
		time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
		"train", price, seats, carrier, fixedTime, fixedTime,
	)
}

func bookingRows(bookings ...*entity.TripBooking) *pgxmock.Rows {
	rows := pgxmock.NewRows(bookingColumnNames)
	for _, b := range bookings {
		rows.AddRow(
			b.ID.String(), b.TripID.String(), b.UserID, b.NumberOfSeats,
			b.TotalPrice.String(), b.Status, b.CreatedAt, b.UpdatedAt,
		)
	}
	return rows
}

// decimalArg matches a decimal.Decimal query argument by numeric value.
type decimalArg string

func (a decimalArg) Match(v any) bool {
	d, ok := v.(decimal.Decimal)
	return ok && d.Equal(decimal.RequireFromString(string(a)))
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, subject string, payload any) error {
	args := m.Called(ctx, subject, payload)
	return args.Error(0)
}

func (m *mockPublisher) Close() {}
