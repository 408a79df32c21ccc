package database

import (
	"context"
	"errors"
	"testing"

	"trip-booking/pkg/utils"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMigrate_AppliesFilesInOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS trips").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS trip_bookings").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, Migrate(context.Background(), mock, zap.NewNop()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_StopsOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS trips").
		WillReturnError(errors.New("permission denied"))

	err = Migrate(context.Background(), mock, zap.NewNop())
	assert.ErrorContains(t, err, "001_create_trips.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDSN(t *testing.T) {
	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=trips sslmode=disable",
		DSN(utils.DatabaseConfig{
			Host:     "db",
			Port:     "5432",
			Name:     "trips",
			User:     "app",
			Password: "secret",
			SSLMode:  "disable",
		}),
	)
}
