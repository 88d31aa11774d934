package commands

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const startCommandName = "start"

type startCommand struct {
	communityName string
}

func NewStartCommand(communityName string) Command {
	return &startCommand{communityName: communityName}
}

func (c *startCommand) CanHandle(command string) bool {
	return command == startCommandName
}

func (c *startCommand) Handle(_ context.Context, _ string, sender Sender, chatID int64) []tgbotapi.Chattable {
	greeting := "Hi!"
	if sender.UserName != "" {
		greeting = fmt.Sprintf("Hi, @%s!", sender.UserName)
	}

	text := fmt.Sprintf(`%s I collect community votes for %s proposals.

/pending_proposals - proposals that are open for voting
/proposal <id> - details and the current tally of a proposal
/vote <id> <approve|reject|abstain> <reasoning> - cast or change your vote
/decided_proposals - proposals that have been decided

An abstention must name a conflict of interest, insufficient information or that the proposal is outside your expertise.`,
		greeting,
		c.communityName,
	)

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, text)}
}
