package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"proposal_governance_system/configs"
	"proposal_governance_system/internal/di"
	tgbot "proposal_governance_system/internal/tg_bot"
	"proposal_governance_system/internal/tg_bot/commands"
	"proposal_governance_system/internal/tg_bot/handlers"
)

func main() {
	config, err := configs.LoadCommunityVoteBotConfig()
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

	voteService, decisionService := di.NewBallotServices(repos, logger)

	handler := handlers.NewCommunityVoteBotCommandHandler(logger, []commands.Command{
		commands.NewStartCommand(config.Bot.CommunityName),
		commands.NewPendingProposalsCommand(repos.Proposals, logger),
		commands.NewDecidedProposalsCommand(repos.Proposals, logger),
		commands.NewProposalCommand(repos.Proposals, voteService, decisionService, logger),
		commands.NewVoteCommand(voteService, logger),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tgbot.NewBot(handler).Start(ctx, config.Bot, logger); err != nil {
		logger.Fatalw("bot stopped", "error", err)
	}
}
