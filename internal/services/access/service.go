package access

import "log/slog"

const (
	statusCreator       = "creator"
	statusAdministrator = "administrator"
)

type MemberClient interface {
	MemberStatus(chatID, userID int64) (string, error)
}

// Service answers whether a user may run privileged commands in a chat.
// Roles are queried fresh on every call; they can change between messages.
type Service struct {
	client MemberClient
	logger *slog.Logger
}

func NewService(client MemberClient, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger}
}

// IsAdmin fails closed: any lookup error counts as not an admin.
func (s *Service) IsAdmin(chatID, userID int64) bool {
	if s.client == nil {
		return false
	}

	status, err := s.client.MemberStatus(chatID, userID)
	if err != nil {
		s.logger.Debug("member status lookup failed", "chat_id", chatID, "user_id", userID, "error", err)
		return false
	}
	return status == statusAdministrator || status == statusCreator
}
