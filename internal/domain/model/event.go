package model

import "time"

// ModerationEvent describes a single inbound message that matched a banned
// word. It lives only for the duration of one enforcement run.
type ModerationEvent struct {
	ChatID    int64
	MessageID int
	SenderID  int64
	Username  string
	Text      string
	Keyword   string
	FromAdmin bool
}

// RestrictionOrder is the logical record of a mute (or, with a zero Until,
// an unmute). The platform owns the actual restriction state.
type RestrictionOrder struct {
	ChatID int64
	UserID int64
	Until  time.Time
	Reason string
}

type NotificationTicket struct {
	ID        string
	ChatID    int64
	MessageID int
	PostedAt  time.Time
	TTL       time.Duration
}
