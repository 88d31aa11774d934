package dispatcher

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type DiscordNotifier struct {
	send      func(channelID, content string) error
	channelID string
}

func NewDiscordNotifier(token, channelID string) (*DiscordNotifier, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	return &DiscordNotifier{
		send: func(channelID, content string) error {
			_, err := session.ChannelMessageSend(channelID, content)
			return err
		},
		channelID: channelID,
	}, nil
}

func (n *DiscordNotifier) Notify(_ context.Context, outcome Outcome) error {
	return n.send(n.channelID, summary(outcome))
}
