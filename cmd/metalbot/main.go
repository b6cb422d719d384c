package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/metalbot/config"
	"github.com/alejandrodnm/metalbot/internal/adapters/host"
	"github.com/alejandrodnm/metalbot/internal/adapters/metal"
	"github.com/alejandrodnm/metalbot/internal/adapters/notify"
	"github.com/alejandrodnm/metalbot/internal/adapters/storage"
	"github.com/alejandrodnm/metalbot/internal/application/mint"
	"github.com/alejandrodnm/metalbot/internal/domain"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	createTokens := flag.Bool("create-tokens", false, "run the token creation batch")
	initLiquidity := flag.Bool("init-liquidity", false, "run the liquidity initialization batch")
	list := flag.Bool("list", false, "print the merchant token table and exit")
	history := flag.Int("history", 0, "print the last N batch runs and exit")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	if cfg.API.Key == "" {
		slog.Error("METAL_API_KEY is not set (use .env or the environment)")
		os.Exit(1)
	}
	if cfg.API.MerchantAddress == "" {
		slog.Error("merchant_address is not configured")
		os.Exit(1)
	}

	slog.Info("metalbot starting",
		"config", *configPath,
		"base", cfg.API.Base,
		"merchant", cfg.API.MerchantAddress,
		"companies", len(cfg.Companies),
	)

	client := metal.NewClient(cfg.API.Base, cfg.API.LiquidityBase, cfg.API.Key)
	console := notify.NewConsole()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *list {
		console.PrintTokens(client.ListMerchantTokens(ctx, cfg.API.MerchantAddress))
		return
	}

	store, err := storage.NewSQLiteStorage(cfg.Storage.DSN)
	if err != nil {
		slog.Error("failed to open storage", "err", err, "dsn", cfg.Storage.DSN)
		os.Exit(1)
	}
	defer store.Close()

	if *history > 0 {
		rows, err := store.History(ctx, *history)
		if err != nil {
			slog.Error("failed to read history", "err", err)
			os.Exit(1)
		}
		console.PrintHistory(rows)
		return
	}

	if !*createTokens && !*initLiquidity {
		flag.Usage()
		os.Exit(2)
	}

	companies := make([]domain.Company, 0, len(cfg.Companies))
	for _, c := range cfg.Companies {
		companies = append(companies, domain.Company{ID: c.ID, Name: c.Name})
	}

	svc := mint.New(
		mint.Config{
			MerchantAddress: cfg.API.MerchantAddress,
			PollAttempts:    cfg.Batch.PollAttempts,
			PollInterval:    cfg.PollInterval(),
			ItemDelay:       cfg.ItemDelay(),
		},
		client,
		metal.DecodeJobStatus,
		host.NewStatic(companies),
		host.LogAnnouncer{},
		console,
		store,
	)

	// El Start devuelve enseguida; el CLI espera la terminación porque no
	// hay nadie más observando el batch.
	if *createTokens {
		if !svc.StartTokenCreation(ctx) {
			slog.Error("token creation batch rejected")
			os.Exit(1)
		}
		svc.Wait()
	}

	if *initLiquidity {
		if !svc.StartLiquidityInit(ctx) {
			slog.Error("liquidity batch rejected")
			os.Exit(1)
		}
		svc.Wait()
	}

	slog.Info("metalbot stopped cleanly")
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
