package di

import (
	"context"
	"errors"
	"time"

	"proposal_governance_system/configs"
	"proposal_governance_system/internal/db"
	"proposal_governance_system/internal/db/repositories"
	"proposal_governance_system/internal/db/repositories/memory"
	"proposal_governance_system/internal/dispatcher"
	"proposal_governance_system/internal/governance"
	"proposal_governance_system/internal/reasoning"
	"proposal_governance_system/internal/services"

	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
)

var errMissingDatabase = errors.New("DB_URL is required outside the dev environment")

func NewLogger(config configs.Logger) *zap.SugaredLogger {
	if config.URL == "" {
		return zap.Must(zap.NewProduction()).Sugar()
	}

	ctx := context.Background()
	lokiConfig := zaploki.Config{
		Url:          config.URL,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": config.AppName},
	}
	return zap.Must(zaploki.New(ctx, lokiConfig).WithCreateLogger(zap.NewProductionConfig())).Sugar()
}

type Repositories struct {
	Proposals repositories.ProposalRepository
	Votes     repositories.VoteRepository
	Reports   repositories.DecisionReportRepository
	close     func() error
}

func (r Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// NewRepositories connects to Postgres, or keeps everything in memory for a dev
// environment without a database.
func NewRepositories(app configs.App, config configs.DB, logger *zap.SugaredLogger) (Repositories, error) {
	if config.URL == "" {
		if !app.IsDevEnvironment() {
			return Repositories{}, errMissingDatabase
		}

		logger.Warn("DB_URL is empty, using the in-memory store")
		store := memory.NewStore()
		return Repositories{
			Proposals: store.Proposals(),
			Votes:     store.Votes(),
			Reports:   store.Reports(),
		}, nil
	}

	database, err := db.StartDB(config, logger)
	if err != nil {
		return Repositories{}, err
	}

	return Repositories{
		Proposals: repositories.NewProposalRepository(database),
		Votes:     repositories.NewVoteRepository(database),
		Reports:   repositories.NewDecisionReportRepository(database),
		close:     database.Close,
	}, nil
}

func NewDispatcher(config configs.Engine, logger *zap.SugaredLogger) dispatcher.Dispatcher {
	var collaborator dispatcher.Dispatcher = dispatcher.Noop{}
	if config.Dispatcher.FunctionsBaseURL != "" {
		collaborator = dispatcher.NewFunctionsDispatcher(config.Dispatcher.FunctionsBaseURL, config.Dispatcher.FunctionsToken)
	} else {
		logger.Warn("FUNCTIONS_BASE_URL is empty, decisions will not reach downstream functions")
	}

	var notifiers []dispatcher.Notifier
	notifications := config.Notifications

	if notifications.TelegramBotToken != "" && notifications.TelegramChatID != 0 {
		notifier, err := dispatcher.NewTelegramNotifier(notifications.TelegramBotToken, notifications.TelegramChatID)
		if err != nil {
			logger.Errorw("failed to create telegram notifier", "error", err)
		} else {
			notifiers = append(notifiers, notifier)
		}
	}

	if notifications.DiscordBotToken != "" && notifications.DiscordChannelID != "" {
		notifier, err := dispatcher.NewDiscordNotifier(notifications.DiscordBotToken, notifications.DiscordChannelID)
		if err != nil {
			logger.Errorw("failed to create discord notifier", "error", err)
		} else {
			notifiers = append(notifiers, notifier)
		}
	}

	if notifications.RedisURL != "" {
		notifier, err := dispatcher.NewRedisNotifier(notifications.RedisURL, notifications.RedisStream)
		if err != nil {
			logger.Errorw("failed to create redis notifier", "error", err)
		} else {
			notifiers = append(notifiers, notifier)
		}
	}

	return dispatcher.NewChain(collaborator, logger, notifiers...)
}

type Services struct {
	Votes     services.VoteService
	Polls     services.PollService
	Decisions services.DecisionService
	Phases    services.PhaseService
}

func NewServices(config configs.Engine, repos Repositories, logger *zap.SugaredLogger) (Services, error) {
	client, err := reasoning.NewClient(config.Reasoning)
	if err != nil {
		return Services{}, err
	}

	clock := governance.SystemClock{}

	votes := services.NewVoteService(repos.Proposals, repos.Votes, clock, governance.DefaultAbstentionPolicy, logger)
	polls := services.NewPollService(repos.Proposals, votes, client, services.PollOptions{
		Delay:      config.Voting.ExecutivePollDelay,
		Timeout:    config.Voting.ReasoningTimeout,
		Abstention: governance.DefaultAbstentionPolicy,
		Coercion:   governance.DefaultCoercionPolicy,
	}, logger)
	decisions := services.NewDecisionService(repos.Proposals, repos.Votes, repos.Reports, NewDispatcher(config, logger), clock, logger)
	phases := services.NewPhaseService(repos.Proposals, votes, polls, decisions, clock, services.Windows{
		Executive: config.Voting.ExecutiveWindow,
		Community: config.Voting.CommunityWindow,
	}, logger)

	return Services{
		Votes:     votes,
		Polls:     polls,
		Decisions: decisions,
		Phases:    phases,
	}, nil
}

// NewBallotServices builds what the community bot needs: ballots and read access to
// decisions, without a reasoning provider.
func NewBallotServices(repos Repositories, logger *zap.SugaredLogger) (services.VoteService, services.DecisionService) {
	clock := governance.SystemClock{}

	votes := services.NewVoteService(repos.Proposals, repos.Votes, clock, governance.DefaultAbstentionPolicy, logger)
	decisions := services.NewDecisionService(repos.Proposals, repos.Votes, repos.Reports, dispatcher.Noop{}, clock, logger)

	return votes, decisions
}
