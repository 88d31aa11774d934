package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"proposal_governance_system/configs"
	"proposal_governance_system/internal/api"
	"proposal_governance_system/internal/di"

	"github.com/gin-gonic/gin"
)

func main() {
	config, err := configs.LoadGovernanceAPIConfig()
	logger := di.NewLogger(config.Logger)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	if !config.App.IsDevEnvironment() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("starting db")
	repos, err := di.NewRepositories(config.App, config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer repos.Close()
	logger.Info("db started")

	logger.Info("initializing services")
	built, err := di.NewServices(config.Engine, repos, logger)
	if err != nil {
		logger.Fatalw("failed to initialize services", "error", err)
	}

	handlers := api.NewHandlers(built.Votes, built.Polls, built.Phases, built.Decisions, logger)
	server := &http.Server{
		Addr:    config.HTTP.Addr,
		Handler: api.NewRouter(handlers),
	}

	go func() {
		logger.Infow("http server listening", "addr", config.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("http server failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("failed to shut down http server", "error", err)
	}
}
