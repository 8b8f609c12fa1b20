package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/app"
	"github.com/aliskhannn/chalisa-kids-bot/internal/config"
	"github.com/aliskhannn/chalisa-kids-bot/internal/delivery/telegram"
	"github.com/aliskhannn/chalisa-kids-bot/internal/logger"
	"github.com/aliskhannn/chalisa-kids-bot/internal/metrics"
	"github.com/aliskhannn/chalisa-kids-bot/internal/service"
	"github.com/aliskhannn/chalisa-kids-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if cfg.TelegramAPIToken == "" {
		lg.Fatal("TELEGRAM_API_TOKEN is not set", zap.Error(config.ErrMissingEnvironmentVariables))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := app.OpenStore(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer closeStore()

	var recorder service.MetricsRecorder = metrics.Noop{}
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		recorder = metrics.New(reg)
		go serveMetrics(ctx, cfg.Metrics.Addr, reg, lg)
	}

	svc, err := app.NewServices(ctx, cfg, store, lg, recorder)
	if err != nil {
		lg.Fatal("failed to init services", zap.Error(err))
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Env == "local"

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "prayers", Description: "List all prayers"},
		{Command: "prayer", Description: "Open a prayer (usage: /prayer 2)"},
		{Command: "verse", Description: "Read a verse (usage: /verse 5)"},
		{Command: "ask", Description: "Ask about the current prayer"},
		{Command: "quiz", Description: "Quiz on the current prayer"},
		{Command: "daily", Description: "Verse of the day"},
		{Command: "progress", Description: "Show your progress"},
		{Command: "remind", Description: "Daily reminder on or off"},
		{Command: "help", Description: "Help"},
	}
	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	handler := telegram.NewHandler(
		bot,
		lg,
		svc.Prayers,
		svc.Answerer,
		svc.Daily,
		svc.Reminders,
		svc.Learners,
		storage.NewQuizStorage(),
		storage.NewReminderStorage(),
	)

	svc.Reminders.SetNotifier(handler)
	if cfg.Reminders.Enabled {
		go svc.Reminders.Start(ctx)
	}

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("handler stopped", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}

func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry, lg *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	lg.Info("metrics server started", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Error("metrics server failed", zap.Error(err))
	}
}
