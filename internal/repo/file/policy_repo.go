package file

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/quocchienn/duanbot/internal/domain/model"
)

const (
	defaultMuteMinutes = 10
	minMuteMinutes     = 1
	maxMuteMinutes     = 7 * 24 * 60
)

// record is the on-disk layout. The whole file is rewritten on every save.
type record struct {
	MuteMinutes int      `json:"mute_minutes"`
	BannedWords []string `json:"banned_words"`
}

type PolicyRepo struct {
	path string
}

func NewPolicyRepo(path string) *PolicyRepo {
	return &PolicyRepo{path: path}
}

// Defaults is the policy used when no valid snapshot exists on disk.
func Defaults() model.PolicySnapshot {
	return model.PolicySnapshot{
		MuteMinutes: defaultMuteMinutes,
		BannedWords: []string{"spam", "quảng cáo", "link lừa đảo"},
	}
}

// Load reads the snapshot, substituting defaults for a missing file,
// unreadable JSON, an out-of-range duration, or an empty word list.
func (r *PolicyRepo) Load() model.PolicySnapshot {
	cfg := Defaults()

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return cfg
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return cfg
	}

	if rec.MuteMinutes >= minMuteMinutes && rec.MuteMinutes <= maxMuteMinutes {
		cfg.MuteMinutes = rec.MuteMinutes
	}

	words := make([]string, 0, len(rec.BannedWords))
	for _, word := range rec.BannedWords {
		if strings.TrimSpace(word) != "" {
			words = append(words, word)
		}
	}
	if len(words) > 0 {
		cfg.BannedWords = words
	}

	return cfg
}

func (r *PolicyRepo) Save(cfg model.PolicySnapshot) error {
	raw, err := json.MarshalIndent(record{
		MuteMinutes: cfg.MuteMinutes,
		BannedWords: cfg.BannedWords,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode policy: %w", err)
	}

	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}
