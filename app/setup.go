package app

import (
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusquest/internal/config"
	"github.com/ayoisaiah/focusquest/internal/game"
	"github.com/ayoisaiah/focusquest/internal/logger"
	"github.com/ayoisaiah/focusquest/internal/static"
	"github.com/ayoisaiah/focusquest/internal/ui"
	"github.com/ayoisaiah/focusquest/notify"
	"github.com/ayoisaiah/focusquest/store"
)

// loadConfig resolves the file locations and reads the configuration. The
// first-run prompt is only shown when prompt is set.
func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	paths, err := config.ResolvePaths()
	if err != nil {
		return nil, err
	}

	opts := []config.Option{config.WithPaths(paths)}

	if prompt {
		opts = append(opts, config.WithPromptConfig(paths.ConfigPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(paths.ConfigPath),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// setupLogger points the default logger at the log file.
func setupLogger(cfg *config.Config) (*slog.Logger, io.Closer) {
	// the level was checked during validation
	level, _ := config.ParseLogLevel(cfg.Log.Level)

	l, closer := logger.New(cfg.System.LogPath, level)

	slog.SetDefault(l)

	return l, closer
}

// desktopNotifier returns the operating system notifier, or nil when
// notifications are disabled.
func desktopNotifier(cfg *config.Config, l *slog.Logger) *notify.Desktop {
	if !cfg.Notifications.Enabled {
		return nil
	}

	opts := []notify.DesktopOption{notify.WithLogger(l)}

	icon, err := static.Install(
		filepath.Join(filepath.Dir(cfg.System.DBPath), "static"),
	)
	if err != nil {
		l.Warn("unable to install notification icon", slog.Any("error", err))
	} else {
		opts = append(opts, notify.WithIcon(icon))
	}

	if cfg.Notifications.Sound {
		opts = append(opts, notify.WithChime(notify.NewChime()))
	}

	return notify.NewDesktop(opts...)
}

// newGame creates the game from the configuration.
func newGame(
	cfg *config.Config,
	db store.DB,
	n notify.Notifier,
	l *slog.Logger,
) *game.Game {
	return game.New(&game.Options{
		Store:         db,
		Notifier:      n,
		Logger:        l,
		Now:           time.Now,
		Settings:      cfg.TimerSettings(),
		ExpPerSession: cfg.Settings.ExpPerSession,
		PersistEvery:  cfg.Settings.PersistEvery,
		SessionCmd:    cfg.Settings.SessionCmd,
	})
}
