package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/zboyco/notify-balloon/internal/balloon"
	"github.com/zboyco/notify-balloon/internal/config"
	"github.com/zboyco/notify-balloon/internal/logutils"
)

type flags struct {
	configPath string
	logLevel   string
	logFile    string
	title      string
	body       string
	hold       time.Duration
	guid       string
}

func main() {
	var (
		f         flags
		settings  config.Settings
		logger    zerolog.Logger
		logCloser func()
	)

	app := &cli.Command{
		Name:      "notify-balloon",
		Usage:     "Show a balloon tip in the notification area, then remove it",
		UsageText: "notify-balloon [options]",
		Flags:     newFlags(&f),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			settings, err = loadSettings(&f, c)
			if err != nil {
				return ctx, err
			}

			logger, logCloser, err = logutils.New(settings.LogLevel, f.logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var id balloon.ID
			if f.guid != "" {
				parsed, err := uuid.Parse(f.guid)
				if err != nil {
					return fmt.Errorf("parse --guid: %w", err)
				}
				id = parsed
			}
			return run(ctx, balloon.New(nil, logger), settings, id, logger)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// run posts the notification, holds it, and removes it. An interrupt cuts
// the hold short but the notification is still removed.
func run(ctx context.Context, n *balloon.Notifier, settings config.Settings, id balloon.ID, logger zerolog.Logger) error {
	id, err := n.ShowWithID(ctx, id, settings.Title, settings.Body)
	if err != nil {
		return fmt.Errorf("show notification: %w", err)
	}
	logger.Info().Stringer("id", id).Dur("hold", settings.Hold).Msg("notification shown")

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	timer := time.NewTimer(settings.Hold)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-sigCtx.Done():
		logger.Info().Msg("interrupted, removing notification early")
	}

	if err := n.Remove(context.WithoutCancel(ctx), id); err != nil {
		return fmt.Errorf("remove notification: %w", err)
	}
	logger.Info().Stringer("id", id).Msg("notification removed")
	return nil
}

func newFlags(f *flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("NOTIFY_BALLOON_CONFIG"),
			Value:       defaultConfigPath(),
			Destination: &f.configPath,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Sources:     cli.EnvVars("NOTIFY_BALLOON_LOG_LEVEL"),
			Destination: &f.logLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "write JSON logs to this file instead of stderr",
			Sources:     cli.EnvVars("NOTIFY_BALLOON_LOG_FILE"),
			Destination: &f.logFile,
		},
		&cli.StringFlag{
			Name:        "title",
			Usage:       "notification title (truncated to 64 UTF-16 units)",
			Destination: &f.title,
		},
		&cli.StringFlag{
			Name:        "body",
			Usage:       "notification body (truncated to 256 UTF-16 units)",
			Destination: &f.body,
		},
		&cli.DurationFlag{
			Name:        "hold",
			Usage:       "how long the notification stays before it is removed",
			Destination: &f.hold,
		},
		&cli.StringFlag{
			Name:        "guid",
			Usage:       "notification identifier to use instead of a generated one",
			Destination: &f.guid,
		},
	}
}

func loadSettings(f *flags, c *cli.Command) (config.Settings, error) {
	settings, err := config.Load(f.configPath)
	switch {
	case errors.Is(err, config.ErrNotConfigured):
		settings = config.Default()
	case err != nil:
		return config.Settings{}, fmt.Errorf("load config: %w", err)
	}

	if c.IsSet("title") {
		settings.Title = f.title
	}
	if c.IsSet("body") {
		settings.Body = f.body
	}
	if c.IsSet("hold") {
		settings.Hold = f.hold
	}
	if c.IsSet("log-level") {
		settings.LogLevel = f.logLevel
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

func defaultConfigPath() string {
	path, err := config.Path()
	if err != nil {
		return "config.yaml"
	}
	return path
}
