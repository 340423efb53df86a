package policy

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/quocchienn/duanbot/internal/domain/model"
)

const (
	MinMuteMinutes = 1
	MaxMuteMinutes = 7 * 24 * 60
)

var ErrEmptyWord = errors.New("banned word must not be empty")

type Repo interface {
	Load() model.PolicySnapshot
	Save(model.PolicySnapshot) error
}

type AddOutcome int

const (
	WordAdded AddOutcome = iota
	WordExists
)

type RemoveOutcome int

const (
	WordRemoved RemoveOutcome = iota
	WordMissing
)

type SetOutcome int

const (
	DurationSet SetOutcome = iota
	DurationInvalid
)

// Service owns the moderation policy. Mutations are validated, applied and
// persisted under a single write lock; readers take a consistent snapshot.
type Service struct {
	mu     sync.RWMutex
	cfg    model.PolicySnapshot
	repo   Repo
	logger *slog.Logger
}

func NewService(repo Repo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := model.PolicySnapshot{MuteMinutes: 10}
	if repo != nil {
		cfg = repo.Load()
	}

	return &Service{
		cfg:    cfg,
		repo:   repo,
		logger: logger,
	}
}

// Snapshot returns a copy of the current policy. The caller owns the slice.
func (s *Service) Snapshot() model.PolicySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := make([]string, len(s.cfg.BannedWords))
	copy(words, s.cfg.BannedWords)
	return model.PolicySnapshot{
		MuteMinutes: s.cfg.MuteMinutes,
		BannedWords: words,
	}
}

func (s *Service) AddWord(word string) (AddOutcome, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return WordExists, ErrEmptyWord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lower := strings.ToLower(word)
	for _, existing := range s.cfg.BannedWords {
		if strings.ToLower(existing) == lower {
			return WordExists, nil
		}
	}

	s.cfg.BannedWords = append(s.cfg.BannedWords, word)
	s.persist()
	return WordAdded, nil
}

func (s *Service) RemoveWord(word string) (RemoveOutcome, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return WordMissing, ErrEmptyWord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lower := strings.ToLower(word)
	kept := s.cfg.BannedWords[:0]
	for _, existing := range s.cfg.BannedWords {
		if strings.ToLower(existing) != lower {
			kept = append(kept, existing)
		}
	}

	if len(kept) == len(s.cfg.BannedWords) {
		return WordMissing, nil
	}

	s.cfg.BannedWords = kept
	s.persist()
	return WordRemoved, nil
}

func (s *Service) SetMuteMinutes(minutes int) SetOutcome {
	if minutes < MinMuteMinutes || minutes > MaxMuteMinutes {
		return DurationInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.MuteMinutes = minutes
	s.persist()
	return DurationSet
}

// persist runs under the write lock. A save failure keeps the in-memory
// state authoritative: moderation availability wins over edit durability.
func (s *Service) persist() {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(s.cfg); err != nil {
		s.logger.Error("persist policy", "error", err)
	}
}
