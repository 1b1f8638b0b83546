// Command teachpy is a terminal Python tutor backed by a shared Redis
// store and the Google Gemini API.
//
// Usage:
//
//	GEMINI_API_KEY=gk-... REDIS_URL=redis://... teachpy [flags]
//
// Flags:
//
//	-redis-url string  Redis connection URL (default: REDIS_URL env var)
//	-api-key string    Gemini API key (overrides GEMINI_API_KEY)
//	-model string      Model ID (default: gemini-2.0-flash)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fwojciec/teachpy"
	bt "github.com/fwojciec/teachpy/bubbletea"
	"github.com/fwojciec/teachpy/gemini"
	"github.com/fwojciec/teachpy/redis"
)

const defaultRedisURL = "redis://localhost:6379"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "teachpy: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		redisURL = flag.String("redis-url", "", "Redis connection URL (default: REDIS_URL env var)")
		apiKey   = flag.String("api-key", "", "Gemini API key (overrides GEMINI_API_KEY)")
		model    = flag.String("model", "", "Model ID (default: gemini-2.0-flash)")
	)
	flag.Parse()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	url := *redisURL
	if url == "" {
		url = os.Getenv("REDIS_URL")
	}
	if url == "" {
		url = defaultRedisURL
	}
	client, err := redis.Open(ctx, url)
	if err != nil {
		return err
	}
	defer client.Close()

	key := *apiKey
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key == "" {
		return errors.New("no API key: set GEMINI_API_KEY or pass -api-key")
	}
	var opts []gemini.Option
	if *model != "" {
		opts = append(opts, gemini.WithModel(*model))
	}
	dialer, err := gemini.New(ctx, key, opts...)
	if err != nil {
		return err
	}

	app := teachpy.NewApp(
		teachpy.NewManager(redis.New(client)),
		teachpy.NewBridge(dialer),
	)

	if err := bt.Run(ctx, bt.New(app, teachpy.DefaultTheme())); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}
