package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"finwell/internal/config"
	apphttp "finwell/internal/http"
	applog "finwell/internal/log"
	"finwell/internal/source"
	mem "finwell/internal/source/memory"
	"finwell/internal/source/plaidsource"
	"finwell/internal/transactions"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	var (
		txSource  source.TransactionSource
		links     source.LinkTokenCreator
		exchanger source.TokenExchanger
	)

	switch cfg.DataSource {
	case "plaid":
		cli := plaidsource.New(plaidsource.Config{
			ClientID:   cfg.PlaidClientID,
			Secret:     cfg.PlaidSecret,
			Env:        cfg.PlaidEnv,
			ClientName: cfg.PlaidClientName,
			UserID:     cfg.PlaidUserID,
		})
		txSource, links, exchanger = cli, cli, cli
		logger.Info("Initialized Plaid source", "env", cfg.PlaidEnv)
	default:
		store := mem.New()
		txSource, links, exchanger = store, store, store
		logger.Info("Initialized memory source")
	}

	tokens := &transactions.TokenStore{}
	svc := transactions.NewService(txSource, tokens, cfg.CacheTTL, cfg.FetchWindowDays)

	srv := apphttp.NewServer(":"+cfg.Port, svc, tokens, links, exchanger)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting finwell server", "port", cfg.Port, "source", cfg.DataSource, "cache_ttl", cfg.CacheTTL)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
