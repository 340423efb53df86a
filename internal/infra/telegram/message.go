package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// ExtractText returns the moderatable text of a message: the body text if
// present, otherwise the caption of media content, otherwise "".
func ExtractText(message *tgbotapi.Message) string {
	if message == nil {
		return ""
	}
	if message.Text != "" {
		return message.Text
	}
	return message.Caption
}

// ReplyTargetID returns the sender of the message being replied to, or 0
// when the message is not a reply.
func ReplyTargetID(message *tgbotapi.Message) int64 {
	if message == nil || message.ReplyToMessage == nil || message.ReplyToMessage.From == nil {
		return 0
	}
	return message.ReplyToMessage.From.ID
}
