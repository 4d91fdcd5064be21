package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"timeledger/config"
	_ "timeledger/docs"
	"timeledger/internal/adapters/auth"
	httpdelivery "timeledger/internal/delivery/http"
	"timeledger/internal/delivery/http/controllers"
	"timeledger/internal/delivery/http/middleware"
	"timeledger/internal/domain"
	"timeledger/internal/repository/postgres"
	"timeledger/internal/services"
)

// @title Timeledger API
// @version 1.0
// @description Personal time-tracking service: start/stop named activities and browse day/week aggregations.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		logger.Error("database unreachable", "err", err)
		os.Exit(1)
	}

	entryRepo := postgres.NewEntryRepository(db)
	trackingService := services.NewTrackingService(entryRepo, cfg.DBTimeout)
	trackingController := controllers.NewTrackingController(logger, trackingService)

	var (
		verifier       domain.TokenVerifier
		authController *controllers.AuthController
	)
	if cfg.AuthEnabled() {
		tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
		verifier = tokens
		authController = controllers.NewAuthController(
			logger, cfg.AuthPasswordHash, auth.NewBcryptVerifier(), tokens,
			int64(cfg.TokenTTL/time.Second),
		)
	} else {
		logger.Warn("auth disabled: JWT_SECRET and AUTH_PASSWORD_HASH not both set")
	}

	mux := httpdelivery.NewRouter(trackingController, authController, verifier, db)
	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
