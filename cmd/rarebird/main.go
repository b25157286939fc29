package main

import (
	"time"

	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/handlers"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/metrics"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/store"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/temporal"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/config"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/database"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/logging"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/middleware"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/monitoring"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/server"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/version"
)

func main() {
	// Setup logger
	logger := logging.NewLoggerWithService("rarebird")

	// Load environment variables
	config.LoadEnv(logger)

	logger.Info("Starting Rarebird (Uniqueness Scoring API)")

	dbURL := config.RequireEnv("DATABASE_URL")
	jwtSecret := config.RequireEnv("JWT_SECRET")
	serviceToken := config.RequireEnv("SERVICE_TOKEN")

	// Shared posts database (read-only from this service)
	dbConfig := database.DefaultConfig()
	dbConfig.URL = dbURL
	postsDB := database.MustConnect(dbConfig, logger)
	defer func() { _ = postsDB.Close() }()

	// Setup monitoring
	healthChecker := monitoring.NewHealthChecker("rarebird", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("rarebird", version.Version, version.GitCommit)

	healthChecker.AddCheck("postgres", monitoring.DatabaseHealthCheck(postsDB))
	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"DATABASE_URL": dbURL,
		"JWT_SECRET":   jwtSecret,
	}))

	// Custom scoring metrics
	dbQueries, dbQueryDuration, dbConnections := metricsCollector.CreateDatabaseMetrics()
	serviceMetrics := &metrics.Metrics{
		ScoringRequests:     metricsCollector.NewCounter("scoring_requests_total", "Scoring requests processed", []string{"operation", "status"}),
		ScoreDuration:       metricsCollector.NewHistogram("scoring_duration_seconds", "Scoring request duration", []string{"operation"}, nil),
		WindowQueryDuration: metricsCollector.NewHistogram("window_query_duration_seconds", "Per-window store query duration", []string{"window"}, nil),
		StoreFallbacks:      metricsCollector.NewCounter("store_fallbacks_total", "Window queries degraded to the zero-population default", []string{"window"}),
		DBQueries:           dbQueries,
		DBQueryDuration:     dbQueryDuration,
		DBConnections:       dbConnections,
	}

	postStore := store.NewPostgresStore(postsDB, logger, serviceMetrics)
	orchestrator := temporal.NewOrchestrator(temporal.Config{
		Store:         postStore,
		Logger:        logger,
		Metrics:       serviceMetrics,
		SettleDelay:   config.GetEnvDuration("SCORE_SETTLE_MS", 500*time.Millisecond),
		WindowTimeout: config.GetEnvDuration("WINDOW_QUERY_TIMEOUT_MS", 5*time.Second),
	})

	h := handlers.New(postStore, orchestrator, logger, serviceMetrics)

	// Router with unified health/metrics, scoring routes behind auth
	router := server.SetupServiceRouter(logger, "rarebird", healthChecker, metricsCollector)

	v1 := router.Group("/v1")
	v1.Use(middleware.FlexibleAuthMiddleware(serviceToken, []byte(jwtSecret)))
	{
		v1.POST("/score", h.ScoreOnce)
		v1.POST("/score/temporal", h.ScoreTemporal)
	}

	serverConfig := server.DefaultConfig("rarebird", "18010")
	if err := server.Start(serverConfig, router, logger); err != nil {
		logger.WithError(err).Fatal("Server startup failed")
	}
}
