package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quocchienn/duanbot/internal/config"
	"github.com/quocchienn/duanbot/internal/infra/telegram"
	"github.com/quocchienn/duanbot/internal/repo/file"
	"github.com/quocchienn/duanbot/internal/services/access"
	"github.com/quocchienn/duanbot/internal/services/enforce"
	"github.com/quocchienn/duanbot/internal/services/notify"
	"github.com/quocchienn/duanbot/internal/services/policy"
)

type App struct {
	cfg    config.Config
	logger *slog.Logger
	tg     *telegram.Client

	policyService  *policy.Service
	accessService  *access.Service
	enforceService *enforce.Service
	notifyService  *notify.Service
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	app := &App{
		cfg:           cfg,
		logger:        logger,
		policyService: policy.NewService(file.NewPolicyRepo(cfg.ConfigPath), logger),
	}

	tg, err := telegram.NewClient(cfg.BotToken, cfg.PollTimeoutSeconds, logger, app.routeUpdate)
	if err != nil {
		return nil, fmt.Errorf("create telegram client: %w", err)
	}

	app.tg = tg
	app.accessService = access.NewService(tg, logger)
	app.notifyService = notify.NewService(tg, logger, time.Duration(cfg.NoticeTTLSeconds)*time.Second)
	app.enforceService = enforce.NewService(tg, app.policyService, app.notifyService, logger)

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	err := a.tg.Start(ctx)
	// Let outstanding ephemeral notices finish their deletions.
	a.notifyService.Wait()
	return err
}
