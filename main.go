// main.go
package main

import (
	"context"
	"log"

	"trip-booking/cmd"
	"trip-booking/internal/data/repository"
	"trip-booking/internal/wire"
	"trip-booking/pkg/broker"
	"trip-booking/pkg/database"
	"trip-booking/pkg/metrics"
	"trip-booking/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	// Connect to database
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.AutoMigrate {
		if err := database.Migrate(ctx, db, logger); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	metrics.RegisterDBPool(prometheus.DefaultRegisterer, func() metrics.PoolStat { return db.Stat() })

	// Event publisher, optional
	var publisher broker.Publisher = broker.NopPublisher{}
	if config.NATS.URL != "" {
		natsPublisher, err := broker.NewNATSPublisher(config.NATS.URL, config.NATS.SubjectPrefix, logger)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		publisher = natsPublisher
		logger.Info("NATS publisher ready", zap.String("url", config.NATS.URL))
	}
	defer publisher.Close()

	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, publisher, config, logger)

	if err := cmd.APIServer(ctx, app.Router, config, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
