package configs

type Notifications struct {
	TelegramBotToken string `env:"TELEGRAM_NOTIFY_BOT_TOKEN"`
	TelegramChatID   int64  `env:"TELEGRAM_NOTIFY_CHAT_ID"`
	DiscordBotToken  string `env:"DISCORD_BOT_TOKEN"`
	DiscordChannelID string `env:"DISCORD_CHANNEL_ID"`
	RedisURL         string `env:"REDIS_URL"`
	RedisStream      string `env:"REDIS_DECISION_STREAM" envDefault:"governance.decisions"`
}
