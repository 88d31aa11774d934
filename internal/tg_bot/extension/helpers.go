package extension

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const sessionKeyPrefix = "telegram:"

// SessionKey identifies a Telegram user as a community voter.
func SessionKey(telegramID int64) string {
	return sessionKeyPrefix + strconv.FormatInt(telegramID, 10)
}

func DefaultErrorMessage(chatID int64) tgbotapi.Chattable {
	return ErrorMessage(chatID, "Something went wrong, please try again later.")
}

func ErrorMessage(chatID int64, text string) tgbotapi.Chattable {
	return tgbotapi.NewMessage(chatID, text)
}

func UsageMessage(chatID int64, usage string) tgbotapi.Chattable {
	return tgbotapi.NewMessage(chatID, fmt.Sprintf("Usage: %s", usage))
}
