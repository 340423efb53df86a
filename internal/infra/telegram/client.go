package telegram

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type UpdateHandler func(context.Context, tgbotapi.Update)

type Client struct {
	api         *tgbotapi.BotAPI
	logger      *slog.Logger
	handler     UpdateHandler
	pollTimeout int
	dryRun      bool
}

func NewClient(token string, pollTimeout int, logger *slog.Logger, handler UpdateHandler) (*Client, error) {
	if handler == nil {
		return nil, errors.New("telegram update handler is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	if strings.TrimSpace(token) == "" {
		return &Client{
			logger:      logger,
			handler:     handler,
			pollTimeout: pollTimeout,
			dryRun:      true,
		}, nil
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Client{
		api:         api,
		logger:      logger,
		handler:     handler,
		pollTimeout: pollTimeout,
	}, nil
}

func (c *Client) Start(ctx context.Context) error {
	if c.dryRun {
		c.logger.Warn("BOT_TOKEN is empty, running in dry mode")
		<-ctx.Done()
		return nil
	}

	timeout := c.pollTimeout
	if timeout <= 0 {
		timeout = 30
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = timeout
	updates := c.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			c.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			// Each update is an independent unit of work.
			go c.handler(ctx, update)
		}
	}
}

// SendMessage posts a plain text message and returns its message id.
func (c *Client) SendMessage(chatID int64, text string) (int, error) {
	if c.dryRun {
		return 0, nil
	}
	sent, err := c.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

func (c *Client) DeleteMessage(chatID int64, messageID int) error {
	if c.dryRun {
		return nil
	}
	_, err := c.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}

// RestrictSending denies the user the ability to send messages until the
// given time.
func (c *Client) RestrictSending(chatID, userID int64, until time.Time) error {
	return c.restrict(chatID, userID, false, until.Unix())
}

// LiftRestriction restores the user's ability to send messages immediately.
func (c *Client) LiftRestriction(chatID, userID int64) error {
	return c.restrict(chatID, userID, true, 0)
}

func (c *Client) restrict(chatID, userID int64, canSend bool, untilDate int64) error {
	if c.dryRun {
		return nil
	}
	_, err := c.api.Request(tgbotapi.RestrictChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: chatID,
			UserID: userID,
		},
		UntilDate:   untilDate,
		Permissions: &tgbotapi.ChatPermissions{CanSendMessages: canSend},
	})
	return err
}

// MemberStatus returns the user's membership status in the chat
// ("creator", "administrator", "member", ...).
func (c *Client) MemberStatus(chatID, userID int64) (string, error) {
	if c.dryRun {
		return "", errors.New("dry mode: no member info")
	}
	member, err := c.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: chatID,
			UserID: userID,
		},
	})
	if err != nil {
		return "", err
	}
	return member.Status, nil
}
