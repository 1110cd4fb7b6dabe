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
	"github.com/justsurfingit/job-board/internal/auth"
	"github.com/justsurfingit/job-board/internal/config"
	"github.com/justsurfingit/job-board/internal/database"
	"github.com/justsurfingit/job-board/internal/events"
	"github.com/justsurfingit/job-board/internal/handlers"
	"github.com/justsurfingit/job-board/internal/logger"
	"github.com/justsurfingit/job-board/internal/services"
	log "github.com/sirupsen/logrus"
)

func main() {
	// 1. Load configuration (.env is optional)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	if cfg.UsesDevSecret() {
		log.Warn("JWT_SECRET is not set, using the development secret")
	}

	// 2. Database Connection
	db, err := database.Connect(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.WithField("driver", cfg.DBDriver).Info("Database connected and migrated")

	// 3. Event publisher
	var publisher events.Publisher = events.Noop{}
	if cfg.RabbitMQURL != "" {
		mq, err := events.NewRabbitMQ(cfg.RabbitMQURL, cfg.EventsQueue)
		if err != nil {
			log.WithError(err).Warn("RabbitMQ unavailable, events will be dropped")
		} else {
			defer mq.Close()
			publisher = mq
			log.WithField("queue", cfg.EventsQueue).Info("Publishing events to RabbitMQ")
		}
	}

	// 4. Services and router
	router := handlers.NewRouter(handlers.Deps{
		DB:           db,
		Tokens:       auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		Accounts:     services.NewAccountService(db),
		Profiles:     services.NewProfileService(db),
		Jobs:         services.NewJobService(db, publisher),
		Applications: services.NewApplicationService(db, publisher),
		CORSOrigins:  cfg.CORSOrigins,
		StaticDir:    cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown listener
	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-shutdownCtx.Done()
	log.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("Server exited cleanly")
}
