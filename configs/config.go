package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Engine is the configuration every process that drives the voting engine shares.
type Engine struct {
	App           App
	DB            DB
	Logger        Logger
	Voting        Voting
	Reasoning     Reasoning
	Dispatcher    Dispatcher
	Notifications Notifications
}

type GovernanceAPIConfig struct {
	Engine
	HTTP HTTP
}

type ProposalStateServiceConfig struct {
	Engine
}

type CommunityVoteBotConfig struct {
	App    App
	DB     DB
	Logger Logger
	Bot    Bot
}

func LoadGovernanceAPIConfig() (GovernanceAPIConfig, error) {
	var config GovernanceAPIConfig

	if err := env.Parse(&config); err != nil {
		return GovernanceAPIConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func LoadProposalStateServiceConfig() (ProposalStateServiceConfig, error) {
	var config ProposalStateServiceConfig

	if err := env.Parse(&config); err != nil {
		return ProposalStateServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func LoadCommunityVoteBotConfig() (CommunityVoteBotConfig, error) {
	var config CommunityVoteBotConfig

	if err := env.Parse(&config); err != nil {
		return CommunityVoteBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
