package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"proposal_governance_system/configs"
	"proposal_governance_system/internal/di"
	"proposal_governance_system/internal/services"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// sweepTimeout bounds one scheduled sweep so a hung provider call cannot hold the
// singleton job forever.
const sweepTimeout = 10 * time.Minute

func main() {
	config, err := configs.LoadProposalStateServiceConfig()
	logger := di.NewLogger(config.Logger)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	repos, err := di.NewRepositories(config.App, config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer repos.Close()
	logger.Info("db started")

	logger.Info("initializing repositories and services")
	built, err := di.NewServices(config.Engine, repos, logger)
	if err != nil {
		logger.Fatalw("failed to initialize services", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := newScheduler(config.Voting.PhaseSweepCron, func() {
		runSweep(ctx, built.Phases, services.PassCheckAll, logger)
	})
	if err != nil {
		logger.Fatalw("failed to schedule phase sweep", "error", err, "cron", config.Voting.PhaseSweepCron)
	}

	s.StartAsync()
	logger.Infow("phase sweep scheduled", "cron", config.Voting.PhaseSweepCron)

	<-ctx.Done()
	s.Stop()
	logger.Info("scheduler stopped")
}

func newScheduler(cron string, job func()) (*gocron.Scheduler, error) {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	if _, err := s.Cron(cron).Do(job); err != nil {
		return nil, err
	}

	return s, nil
}

func runSweep(ctx context.Context, phases services.PhaseService, pass services.SweepPass, logger *zap.SugaredLogger) services.SweepResult {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	result, err := phases.Sweep(ctx, pass)
	if err != nil {
		logger.Errorw("failed to run phase sweep", "error", err, "pass", pass)
		return result
	}

	for _, message := range result.Errors {
		logger.Warnw("phase sweep error", "pass", pass, "error", message)
	}

	return result
}
