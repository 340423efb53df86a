package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quocchienn/duanbot/internal/domain/model"
)

const DefaultTTL = 10 * time.Second

type Sender interface {
	SendMessage(chatID int64, text string) (int, error)
	DeleteMessage(chatID int64, messageID int) error
}

// Service posts ephemeral notices: a message followed by exactly one delayed
// deletion attempt. It never reports failure to the caller.
type Service struct {
	sender     Sender
	logger     *slog.Logger
	defaultTTL time.Duration
	wg         sync.WaitGroup
}

func NewService(sender Sender, logger *slog.Logger, defaultTTL time.Duration) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Service{
		sender:     sender,
		logger:     logger,
		defaultTTL: defaultTTL,
	}
}

func (s *Service) Notify(chatID int64, text string) {
	s.NotifyTTL(chatID, text, s.defaultTTL)
}

func (s *Service) NotifyTTL(chatID int64, text string, ttl time.Duration) {
	messageID, err := s.sender.SendMessage(chatID, text)
	if err != nil {
		s.logger.Warn("post notice", "chat_id", chatID, "error", err)
		return
	}

	ticket := model.NotificationTicket{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		MessageID: messageID,
		PostedAt:  time.Now().UTC(),
		TTL:       ttl,
	}

	s.wg.Add(1)
	go s.expire(ticket)
}

// expire holds no lock: outstanding notices never block other work.
func (s *Service) expire(ticket model.NotificationTicket) {
	defer s.wg.Done()

	time.Sleep(ticket.TTL)
	if err := s.sender.DeleteMessage(ticket.ChatID, ticket.MessageID); err != nil {
		// The notice may already have been removed by a moderator.
		s.logger.Debug("delete notice", "ticket_id", ticket.ID, "chat_id", ticket.ChatID, "error", err)
	}
}

// Wait blocks until every scheduled deletion has been attempted.
func (s *Service) Wait() {
	s.wg.Wait()
}
