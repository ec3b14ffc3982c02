package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/stepwise-hq/stepwise/engine/infra/identity"
	"github.com/stepwise-hq/stepwise/engine/infra/server"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/engine/llm"
	"github.com/stepwise-hq/stepwise/pkg/config"
	"github.com/stepwise-hq/stepwise/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stepwise: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional; absent .env files are fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewLogger(&logger.Config{
		Level: logger.LogLevel(cfg.Log.Level),
		JSON:  cfg.Log.JSON,
	})

	st, err := buildStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Error("failed to close store", "error", err)
		}
	}()

	provider := identity.NewHTTPProvider(identity.HTTPConfig{
		BaseURL: cfg.Identity.BaseURL,
		APIKey:  cfg.Identity.APIKey,
		Timeout: cfg.Identity.Timeout,
	})

	client, err := llm.NewLangChainClient(llm.Config{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		BaseURL: cfg.LLM.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize llm client: %w", err)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.ContextWithLogger(ctx, log)

	srv := server.NewServer(cfg, log, server.Dependencies{
		Store:    st,
		Identity: provider,
		LLM:      client,
	})
	return srv.Run(ctx)
}

func buildStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case "memory":
		return store.NewMemoryStore(), nil
	case "surreal":
		return store.NewSurrealStore(store.SurrealConfig{
			URL:       cfg.Store.URL,
			Namespace: cfg.Store.Namespace,
			Database:  cfg.Store.Database,
			Username:  cfg.Store.Username,
			Password:  cfg.Store.Password,
		})
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
