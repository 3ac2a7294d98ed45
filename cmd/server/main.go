package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ndevrinc/outdoor-quiz/internal/analytics"
	"github.com/ndevrinc/outdoor-quiz/internal/config"
	"github.com/ndevrinc/outdoor-quiz/internal/crm"
	"github.com/ndevrinc/outdoor-quiz/internal/handlers"
	"github.com/ndevrinc/outdoor-quiz/internal/repositories"
	"github.com/ndevrinc/outdoor-quiz/internal/repositories/postgres"
	"github.com/ndevrinc/outdoor-quiz/internal/services"
	"github.com/ndevrinc/outdoor-quiz/internal/storage"
	"github.com/ndevrinc/outdoor-quiz/internal/utils"
	"github.com/ndevrinc/outdoor-quiz/internal/validator"
	"github.com/ndevrinc/outdoor-quiz/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Exit(1)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	// Durable session store: Redis when reachable, in-memory otherwise.
	var kv storage.KV
	if redisClient, err := pkg.NewRedisClient(cfg); err != nil {
		logger.Warn("redis unavailable, falling back to in-memory session store", "error", err)
		kv = storage.NewMemoryKV()
	} else {
		kv = storage.NewRedisKV(redisClient, 30*24*time.Hour)
		defer redisClient.Close()
	}
	store := storage.NewStore(kv, logger)

	// Relational backend is optional; without it the session flow still runs
	// on the durable store alone.
	var (
		assessmentRepo repositories.AssessmentRepository
		leadRepo       repositories.LeadRepository
		eventRepo      repositories.EventRepository
	)
	if cfg.RemoteStoreEnabled() {
		db, err := pkg.InitDatabase(cfg)
		if err != nil {
			logger.LogError(err, "database connection failed, continuing without relational backend")
		} else if err := pkg.Migrate(db); err != nil {
			logger.LogError(err, "database migration failed, continuing without relational backend")
		} else {
			assessmentRepo = postgres.NewAssessmentPostgreSQL(db)
			leadRepo = postgres.NewLeadPostgreSQL(db)
			eventRepo = postgres.NewEventPostgreSQL(db)
		}
	}
	remote := services.NewRemoteStore(assessmentRepo, leadRepo, logger)

	publisher, err := cfg.Events.CreateEventPublisher(utils.ToSlogLogger(logger))
	if err != nil {
		logger.LogError(err, "failed to create event publisher, using mock")
		publisher = analytics.NewMockEventPublisher(utils.ToSlogLogger(logger))
	}
	defer publisher.Close()

	var sink analytics.EventSink
	if eventRepo != nil {
		sink = eventRepo
	}
	tracker := analytics.NewTracker(publisher, sink, logger)

	crmClient := crm.NewHubSpotClient(cfg.HubSpotPortalID, cfg.HubSpotFormGUID)
	v := validator.New()

	sessionService := services.NewSessionService(store, remote, crmClient, tracker, v, logger, cfg.RecommendationsURL)
	reportService := services.NewReportService(assessmentRepo, eventRepo, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	manager := handlers.NewHandlerManager(sessionService, reportService, tracker, logger)
	manager.SetupRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.LogError(err, "server stopped unexpectedly")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.LogError(err, "forced shutdown")
	}
}
