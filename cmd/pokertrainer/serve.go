package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokertrainer/internal/drill"
)

// ServeCmd runs the drill HTTP server.
type ServeCmd struct {
	Config    string `short:"c" default:"pokertrainer.hcl" help:"Path to HCL configuration file"`
	Addr      string `short:"a" help:"Server address to bind to (overrides config)"`
	LogLevel  string `short:"l" help:"Log level (overrides config)"`
	CacheSize int    `help:"Scenario cache capacity (overrides config)"`
}

func (c *ServeCmd) Run() error {
	cfg, err := drill.LoadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Apply command line overrides
	if c.LogLevel != "" {
		cfg.Server.LogLevel = c.LogLevel
	}
	if c.CacheSize > 0 {
		cfg.Server.CacheCapacity = c.CacheSize
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := setupLogger(cfg.Server.LogLevel)

	ttl, err := cfg.CacheTTL()
	if err != nil {
		return err
	}

	addr := cfg.GetServerAddress()
	if c.Addr != "" {
		addr = c.Addr
	}
	cache := drill.NewCache(cfg.Server.CacheCapacity, ttl, nil)
	server := drill.NewServer(addr, cache, logger)

	logger.Info("Starting pokertrainer server",
		"addr", addr,
		"cache_capacity", cfg.Server.CacheCapacity,
		"cache_ttl", ttl)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		cache.Janitor(ctx, time.Minute)
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Stop(shutdownCtx)
	})

	return g.Wait()
}
