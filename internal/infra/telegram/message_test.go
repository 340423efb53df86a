package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestExtractTextPrefersBody(t *testing.T) {
	msg := &tgbotapi.Message{Text: "hello", Caption: "caption"}
	if got := ExtractText(msg); got != "hello" {
		t.Fatalf("expected body text, got %q", got)
	}
}

func TestExtractTextFallsBackToCaption(t *testing.T) {
	msg := &tgbotapi.Message{Caption: "photo caption"}
	if got := ExtractText(msg); got != "photo caption" {
		t.Fatalf("expected caption, got %q", got)
	}
}

func TestExtractTextEmpty(t *testing.T) {
	if got := ExtractText(&tgbotapi.Message{}); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
	if got := ExtractText(nil); got != "" {
		t.Fatalf("expected empty text for nil message, got %q", got)
	}
}

func TestReplyTargetID(t *testing.T) {
	msg := &tgbotapi.Message{
		ReplyToMessage: &tgbotapi.Message{From: &tgbotapi.User{ID: 4242}},
	}
	if got := ReplyTargetID(msg); got != 4242 {
		t.Fatalf("expected 4242, got %d", got)
	}
	if got := ReplyTargetID(&tgbotapi.Message{}); got != 0 {
		t.Fatalf("expected 0 for non-reply, got %d", got)
	}
}
