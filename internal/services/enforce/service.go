package enforce

import (
	"log/slog"
	"time"

	"github.com/quocchienn/duanbot/internal/domain/enums"
	"github.com/quocchienn/duanbot/internal/domain/model"
	"github.com/quocchienn/duanbot/internal/ui"
)

type Platform interface {
	DeleteMessage(chatID int64, messageID int) error
	RestrictSending(chatID, userID int64, until time.Time) error
	LiftRestriction(chatID, userID int64) error
}

type PolicyReader interface {
	Snapshot() model.PolicySnapshot
}

type Notifier interface {
	Notify(chatID int64, text string)
}

// Service runs the enforcement sequence for one violation: delete the
// message, mute the sender, post an ephemeral notice. Deletion is
// best-effort; the mute is the enforcement outcome that matters.
type Service struct {
	platform Platform
	policy   PolicyReader
	notifier Notifier
	logger   *slog.Logger
}

func NewService(platform Platform, policy PolicyReader, notifier Notifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		platform: platform,
		policy:   policy,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *Service) Enforce(event model.ModerationEvent) enums.EnforcementOutcome {
	if event.FromAdmin {
		return enums.EnforcementSkipped
	}

	if err := s.platform.DeleteMessage(event.ChatID, event.MessageID); err != nil {
		s.logger.Warn("delete message",
			"chat_id", event.ChatID, "message_id", event.MessageID, "error", err)
	}

	// Duration is read at the moment of action so a concurrent admin change
	// applies to in-flight violations.
	minutes := s.policy.Snapshot().MuteMinutes
	order := model.RestrictionOrder{
		ChatID: event.ChatID,
		UserID: event.SenderID,
		Until:  time.Now().UTC().Add(time.Duration(minutes) * time.Minute),
		Reason: event.Keyword,
	}

	if err := s.platform.RestrictSending(order.ChatID, order.UserID, order.Until); err != nil {
		s.logger.Error("restrict member",
			"chat_id", order.ChatID, "user_id", order.UserID, "error", err)
		return enums.EnforcementFailed
	}

	s.notifier.Notify(event.ChatID, ui.ViolationNotice(ui.Mention(event.Username, event.SenderID), minutes, event.Keyword))
	return enums.EnforcementDone
}

// Unmute lifts any active restriction immediately.
func (s *Service) Unmute(chatID, userID int64) error {
	return s.platform.LiftRestriction(chatID, userID)
}
