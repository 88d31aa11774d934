package configs

import "time"

type Voting struct {
	ExecutiveWindow    time.Duration `env:"EXECUTIVE_VOTING_WINDOW" envDefault:"1h"`
	CommunityWindow    time.Duration `env:"COMMUNITY_VOTING_WINDOW" envDefault:"25h"`
	ExecutivePollDelay time.Duration `env:"EXECUTIVE_POLL_DELAY" envDefault:"2s"`
	ReasoningTimeout   time.Duration `env:"REASONING_TIMEOUT" envDefault:"45s"`
	PhaseSweepCron     string        `env:"PHASE_SWEEP_CRON" envDefault:"*/5 * * * *"`
}
