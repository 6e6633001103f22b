package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ykvlv/pomodoro-bot/internal/app"
	"github.com/ykvlv/pomodoro-bot/internal/config"
	"github.com/ykvlv/pomodoro-bot/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; exit immediately.
		_, _ = os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(2)
	}
	// Ensure logger flush; ignore sync error (common on some platforms).
	defer func() { _ = log.Sync() }()

	if err := newRootCmd(cfg, log).Execute(); err != nil {
		log.Error("command failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config, log *zap.Logger) *cobra.Command {
	serve := func(cmd *cobra.Command, _ []string) error {
		application, err := app.New(cfg, log)
		if err != nil {
			return fmt.Errorf("app init: %w", err)
		}
		return application.Run(cmd.Context())
	}

	root := &cobra.Command{
		Use:           "pomodoro-bot",
		Short:         "Telegram pomodoro timer bot",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the bot (default)",
			RunE:  serve,
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print every stored pomodoro without contacting Telegram",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return printStatus(cmd.Context(), cfg, log, cmd.OutOrStdout())
			},
		},
	)
	return root
}
