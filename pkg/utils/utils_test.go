package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moneyInput struct {
	Amount *decimal.Decimal `json:"amount" validate:"required,gte=0,lte=9999999999.99"`
	Seats  int              `json:"seats" validate:"required,min=1"`
	Start  time.Time        `json:"start" validate:"required"`
	End    time.Time        `json:"end" validate:"required,gtfield=Start"`
}

func TestValidateStruct(t *testing.T) {
	start := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	zero := decimal.Zero
	negative := decimal.NewFromFloat(-0.01)

	t.Run("valid with zero amount", func(t *testing.T) {
		errs := ValidateStruct(moneyInput{Amount: &zero, Seats: 1, Start: start, End: start.Add(time.Hour)})
		assert.Empty(t, errs)
	})

	t.Run("reports json field names", func(t *testing.T) {
		errs := ValidateStruct(moneyInput{Amount: &negative, Start: start, End: start})
		assert.Equal(t, "Must be greater than or equal to 0", errs["amount"])
		assert.Equal(t, "This field is required", errs["seats"])
		assert.Equal(t, "Must be after start", errs["end"])
	})

	t.Run("amount above upper bound", func(t *testing.T) {
		huge := decimal.RequireFromString("10000000000")
		errs := ValidateStruct(moneyInput{Amount: &huge, Seats: 1, Start: start, End: start.Add(time.Hour)})
		assert.Equal(t, "Must be less than or equal to 9999999999.99", errs["amount"])
	})

	t.Run("missing amount", func(t *testing.T) {
		errs := ValidateStruct(moneyInput{Seats: 2, Start: start, End: start.Add(time.Hour)})
		assert.Equal(t, "This field is required", errs["amount"])
	})
}

func TestFormatValidationErrors(t *testing.T) {
	got := FormatValidationErrors(map[string]string{
		"seats":  "Minimum is 1",
		"amount": "This field is required",
	})
	assert.Equal(t, "amount: This field is required; seats: Minimum is 1", got)
}

func TestResponses(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseCreated(rec, map[string]int{"n": 1})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"n":1}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	ResponseNotFound(rec, "Trip not found")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Trip not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	ResponseMessage(rec, "Trip deleted")
	assert.JSONEq(t, `{"success":true,"message":"Trip deleted"}`, rec.Body.String())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, http://localhost:5173")
	t.Setenv("HTTP_READ_TIMEOUT", "3s")
	t.Setenv("NATS_URL", "nats://localhost:4222")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, "trip-service", config.App.Name)
	assert.EqualValues(t, 25, config.Database.MaxConns)
	assert.True(t, config.Database.AutoMigrate)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, config.HTTP.AllowedOrigins)
	assert.Equal(t, 3*time.Second, config.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, config.HTTP.ShutdownTimeout)
	assert.Equal(t, "nats://localhost:4222", config.NATS.URL)
	assert.Equal(t, "trips", config.NATS.SubjectPrefix)
}

func TestInitLogger_WritesFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := InitLogger(dir, false)
	require.NoError(t, err)
	logger.Info("hello")
	_ = logger.Sync()

	assert.FileExists(t, dir+"/trip-booking.log")
}
