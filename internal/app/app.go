package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ykvlv/pomodoro-bot/internal/config"
	"github.com/ykvlv/pomodoro-bot/internal/pomodoro"
	"github.com/ykvlv/pomodoro-bot/internal/store"
	"github.com/ykvlv/pomodoro-bot/internal/telegram"
)

var ErrNoToken = errors.New("BOT_TOKEN is required")

type App struct {
	cfg      config.Config
	log      *zap.Logger
	bot      *tgbotapi.BotAPI
	httpSrv  *http.Server
	repo     store.Repo
	sessions *pomodoro.Service
	router   *telegram.Router
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	if cfg.BotToken == "" {
		return nil, ErrNoToken
	}
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = false

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      healthMux(),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return &App{cfg: cfg, log: log, bot: bot, httpSrv: srv}, nil
}

// OpenStore opens the timer store selected by cfg.Store.
func OpenStore(ctx context.Context, cfg config.Config) (store.Repo, error) {
	return store.Open(ctx, StoreOptions(cfg))
}

// StoreOptions maps configuration onto store options.
func StoreOptions(cfg config.Config) store.Options {
	return store.Options{
		Backend: store.Backend(cfg.Store),
		DBPath:  cfg.DBPath,
		Redis: store.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		},
	}
}

// NewSessions builds the pomodoro service with the configured poll settings.
func NewSessions(cfg config.Config, repo store.Repo, notifier pomodoro.Notifier, log *zap.Logger) *pomodoro.Service {
	return pomodoro.New(repo, notifier, log,
		pomodoro.WithPollInterval(cfg.PollInterval),
		pomodoro.WithDefaultMinutes(cfg.DefaultMinutes),
	)
}

func healthMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	return mux
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting pomodoro-bot",
		zap.String("store", a.cfg.Store),
		zap.String("http", a.cfg.HTTPAddr),
		zap.Duration("poll", a.cfg.PollInterval),
	)

	repo, err := OpenStore(ctx, a.cfg)
	if err != nil {
		a.log.Error("open store failed", zap.Error(err))
		return err
	}
	a.repo = repo
	a.log.Info("store ready")

	a.sessions = NewSessions(a.cfg, a.repo, telegram.NewNotifier(a.bot), a.log)
	a.router = telegram.NewRouter(a.bot, a.log, a.sessions)

	// Sessions persisted by a previous run still need the poller.
	if err := a.sessions.Resume(ctx); err != nil {
		a.log.Warn("resume pomodoros failed", zap.Error(err))
	}

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updCh := a.bot.GetUpdatesChan(u)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			a.log.Info("shutdown signal received")
			a.bot.StopReceivingUpdates()
			a.sessions.Shutdown()

			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := a.httpSrv.Shutdown(shCtx)
			cancel()

			if err != nil {
				a.log.Warn("http server shutdown error", zap.Error(err))
			}
			if err := a.repo.Close(); err != nil {
				a.log.Warn("store close error", zap.Error(err))
			}
			return nil

		case upd := <-updCh:
			a.router.HandleUpdate(ctx, upd)
		}
	}
}
