package app

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/quocchienn/duanbot/internal/domain/model"
	"github.com/quocchienn/duanbot/internal/infra/telegram"
	"github.com/quocchienn/duanbot/internal/services/detect"
	"github.com/quocchienn/duanbot/internal/services/policy"
	"github.com/quocchienn/duanbot/internal/ui"
)

func (a *App) routeUpdate(_ context.Context, update tgbotapi.Update) {
	if update.Message != nil {
		a.routeMessage(update.Message)
	}
}

func (a *App) routeMessage(message *tgbotapi.Message) {
	if message == nil || message.From == nil {
		return
	}

	if message.IsCommand() {
		switch message.Command() {
		case "start":
			a.handleStart(message)
		case "addword":
			a.handleAddWord(message)
		case "delword":
			a.handleDelWord(message)
		case "listwords":
			a.handleListWords(message)
		case "setmute":
			a.handleSetMute(message)
		case "unmute":
			a.handleUnmute(message)
		case "status":
			a.handleStatus(message)
		}
		return
	}

	a.handleIncoming(message)
}

// handleIncoming runs the moderation pipeline for one non-command message.
func (a *App) handleIncoming(message *tgbotapi.Message) {
	text := telegram.ExtractText(message)
	if text == "" {
		return
	}

	keyword, matched := detect.Match(text, a.policyService.Snapshot().BannedWords)
	if !matched {
		return
	}

	event := model.ModerationEvent{
		ChatID:    message.Chat.ID,
		MessageID: message.MessageID,
		SenderID:  message.From.ID,
		Username:  message.From.UserName,
		Text:      text,
		Keyword:   keyword,
		FromAdmin: a.accessService.IsAdmin(message.Chat.ID, message.From.ID),
	}

	outcome := a.enforceService.Enforce(event)
	a.logger.Info("moderation event handled",
		"chat_id", event.ChatID,
		"user_id", event.SenderID,
		"keyword", keyword,
		"outcome", outcome,
	)
}

func (a *App) handleStart(message *tgbotapi.Message) {
	a.notifyService.Notify(message.Chat.ID, ui.StartMessage())
}

func (a *App) handleAddWord(message *tgbotapi.Message) {
	if !a.accessService.IsAdmin(message.Chat.ID, message.From.ID) {
		return
	}

	word := strings.TrimSpace(message.CommandArguments())
	if word == "" {
		a.notifyService.Notify(message.Chat.ID, ui.UsageAddWord)
		return
	}

	outcome, err := a.policyService.AddWord(word)
	if err != nil {
		a.notifyService.Notify(message.Chat.ID, ui.UsageAddWord)
		return
	}

	switch outcome {
	case policy.WordAdded:
		a.notifyService.Notify(message.Chat.ID, ui.WordAdded(word))
	case policy.WordExists:
		a.notifyService.Notify(message.Chat.ID, ui.WordExists(word))
	}
}

func (a *App) handleDelWord(message *tgbotapi.Message) {
	if !a.accessService.IsAdmin(message.Chat.ID, message.From.ID) {
		return
	}

	word := strings.TrimSpace(message.CommandArguments())
	if word == "" {
		a.notifyService.Notify(message.Chat.ID, ui.UsageDelWord)
		return
	}

	outcome, err := a.policyService.RemoveWord(word)
	if err != nil {
		a.notifyService.Notify(message.Chat.ID, ui.UsageDelWord)
		return
	}

	switch outcome {
	case policy.WordRemoved:
		a.notifyService.Notify(message.Chat.ID, ui.WordRemoved(word))
	case policy.WordMissing:
		a.notifyService.Notify(message.Chat.ID, ui.WordNotFound(word))
	}
}

func (a *App) handleListWords(message *tgbotapi.Message) {
	if !a.accessService.IsAdmin(message.Chat.ID, message.From.ID) {
		return
	}

	words := a.policyService.Snapshot().BannedWords
	if len(words) == 0 {
		a.notifyService.Notify(message.Chat.ID, ui.WordListEmpty)
		return
	}
	a.notifyService.Notify(message.Chat.ID, ui.WordList(words))
}

func (a *App) handleSetMute(message *tgbotapi.Message) {
	if !a.accessService.IsAdmin(message.Chat.ID, message.From.ID) {
		return
	}

	args := strings.Fields(message.CommandArguments())
	if len(args) == 0 {
		a.notifyService.Notify(message.Chat.ID, ui.UsageSetMute)
		return
	}

	minutes, err := strconv.Atoi(args[0])
	if err != nil {
		a.notifyService.Notify(message.Chat.ID, ui.InvalidMinutes)
		return
	}

	if a.policyService.SetMuteMinutes(minutes) != policy.DurationSet {
		a.notifyService.Notify(message.Chat.ID, ui.InvalidMinutes)
		return
	}
	a.notifyService.Notify(message.Chat.ID, ui.MuteDurationSet(minutes))
}

func (a *App) handleUnmute(message *tgbotapi.Message) {
	if !a.accessService.IsAdmin(message.Chat.ID, message.From.ID) {
		return
	}

	targetID := telegram.ReplyTargetID(message)
	if targetID == 0 {
		a.notifyService.Notify(message.Chat.ID, ui.UsageUnmute)
		return
	}

	if err := a.enforceService.Unmute(message.Chat.ID, targetID); err != nil {
		a.notifyService.Notify(message.Chat.ID, ui.UnmuteFailed(err))
		return
	}
	a.notifyService.Notify(message.Chat.ID, ui.UnmuteDone)
}

func (a *App) handleStatus(message *tgbotapi.Message) {
	if !a.accessService.IsAdmin(message.Chat.ID, message.From.ID) {
		return
	}

	snap := a.policyService.Snapshot()
	a.notifyService.Notify(message.Chat.ID, ui.StatusMessage(snap.MuteMinutes, len(snap.BannedWords)))
}
