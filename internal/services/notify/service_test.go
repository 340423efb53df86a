package notify

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type stubSender struct {
	mu        sync.Mutex
	nextID    int
	sendErr   error
	deleteErr error
	sent      []string
	deleted   []int
}

func (s *stubSender) SendMessage(_ int64, text string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendErr != nil {
		return 0, s.sendErr
	}
	s.nextID++
	s.sent = append(s.sent, text)
	return s.nextID, nil
}

func (s *stubSender) DeleteMessage(_ int64, messageID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, messageID)
	return s.deleteErr
}

func (s *stubSender) snapshot() ([]string, []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.sent...), append([]int{}, s.deleted...)
}

func TestNotifyPostsThenDeletesAfterTTL(t *testing.T) {
	sender := &stubSender{}
	svc := NewService(sender, nil, time.Second)

	svc.NotifyTTL(-100200, "notice", 5*time.Millisecond)
	svc.Wait()

	sent, deleted := sender.snapshot()
	if len(sent) != 1 || sent[0] != "notice" {
		t.Fatalf("expected one posted notice, got %v", sent)
	}
	if len(deleted) != 1 || deleted[0] != 1 {
		t.Fatalf("expected exactly one deletion of message 1, got %v", deleted)
	}
}

func TestNotifyPostFailureSkipsDeletion(t *testing.T) {
	sender := &stubSender{sendErr: errors.New("chat not found")}
	svc := NewService(sender, nil, time.Millisecond)

	svc.Notify(-100200, "notice")
	svc.Wait()

	_, deleted := sender.snapshot()
	if len(deleted) != 0 {
		t.Fatalf("expected no deletion after failed post, got %v", deleted)
	}
}

func TestNotifySwallowsDeleteFailure(t *testing.T) {
	sender := &stubSender{deleteErr: errors.New("message already deleted")}
	svc := NewService(sender, nil, time.Millisecond)

	svc.NotifyTTL(-100200, "notice", time.Millisecond)
	svc.Wait()

	_, deleted := sender.snapshot()
	if len(deleted) != 1 {
		t.Fatalf("expected single deletion attempt despite error, got %v", deleted)
	}
}

func TestNotifyDoesNotBlockCaller(t *testing.T) {
	sender := &stubSender{}
	svc := NewService(sender, nil, time.Second)

	start := time.Now()
	svc.NotifyTTL(-100200, "notice", 200*time.Millisecond)
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("notify blocked for %v while the ttl ran", elapsed)
	}
	svc.Wait()
}

func TestConcurrentNoticesAreIndependent(t *testing.T) {
	sender := &stubSender{}
	svc := NewService(sender, nil, time.Millisecond)

	for i := 0; i < 5; i++ {
		svc.NotifyTTL(int64(-i), "notice", time.Millisecond)
	}
	svc.Wait()

	sent, deleted := sender.snapshot()
	if len(sent) != 5 || len(deleted) != 5 {
		t.Fatalf("expected 5 posts and 5 deletions, got %d/%d", len(sent), len(deleted))
	}
}
