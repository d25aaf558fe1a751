package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/stockpilot/stockpilot-go/internal/cli"
	"github.com/stockpilot/stockpilot-go/internal/config"
	"github.com/stockpilot/stockpilot-go/internal/infra/observability"
	"github.com/stockpilot/stockpilot-go/internal/notify"
	"github.com/stockpilot/stockpilot-go/internal/store"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Debug("configuration loaded",
		zap.String("api_url", cfg.APIBaseURL),
		zap.String("log_level", cfg.LogLevel),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.String("state_file", cfg.StateFile),
	)

	// --- Tracing ---
	if cfg.TraceEnabled {
		shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "stockpilot")
		if err != nil {
			logger.Fatal("failed to init tracer", zap.Error(err))
		}
		defer shutdown(context.Background())
	}

	// --- Application context ---
	app, err := store.NewApp(cfg, logger)
	if err != nil {
		logger.Fatal("failed to init application state", zap.Error(err))
	}

	// Notifications surface on stderr so stdout stays parseable.
	app.Bus.Subscribe(notify.TopicNotification, func(ev notify.Event) {
		if n, ok := ev.Payload.(notify.Notification); ok {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", n.Severity, n.Message)
		}
	})
	app.Bus.Subscribe(notify.TopicAuthExpired, func(notify.Event) {
		fmt.Fprintln(os.Stderr, "session expired, please log in again")
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(app)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
