package model

// PolicySnapshot is a point-in-time copy of the moderation policy.
// Callers own the returned slice and may not observe later mutations.
type PolicySnapshot struct {
	MuteMinutes int
	BannedWords []string
}
