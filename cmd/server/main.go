package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gradquest/internal/config"
	"gradquest/internal/game"
	"gradquest/internal/session"
	"gradquest/internal/web"
)

const (
	sessionIdle   = 2 * time.Hour
	sweepInterval = 10 * time.Minute
	shutdownGrace = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, logger *slog.Logger) error {
	balance := game.DefaultBalance()
	if cfg.BalancePath != "" {
		b, err := game.LoadBalance(cfg.BalancePath)
		if err != nil {
			return err
		}
		balance = b
		logger.Info("balance loaded", "path", cfg.BalancePath)
	}

	tmpl, err := web.ParseTemplates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	store := session.NewMemoryStore[*web.Session]()
	go store.SweepEvery(ctx, sweepInterval, sessionIdle, func(n int) {
		logger.Info("idle runs swept", "count", n, "live", store.Len())
	})

	srv := &web.Server{
		Store:   store,
		Balance: balance,
		Seed:    cfg.Seed,
		Log:     logger,
		Tmpl:    tmpl,
	}
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	logger.Info("listening", "addr", cfg.Addr, "seed", cfg.Seed)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
