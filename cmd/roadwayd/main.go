// Command roadwayd serves route queries over HTTP against a road network
// loaded at startup from a JSON file or a Neo4j graph.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dkresling/roadway/internal/config"
	"github.com/dkresling/roadway/internal/logging"
	"github.com/dkresling/roadway/internal/server"
	"github.com/dkresling/roadway/internal/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	source, err := buildSource(ctx, cfg.Network)
	if err != nil {
		logger.Error("failed to create network source", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := source.Close(context.Background()); err != nil {
			logger.Warn("closing network source failed", "error", err)
		}
	}()

	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	net, err := source.Load(loadCtx)
	cancel()
	if err != nil {
		logger.Error("failed to load network", "error", err, "source", cfg.Network.Source)
		os.Exit(1)
	}
	logger.Info("network loaded",
		"source", cfg.Network.Source,
		"nodes", net.NodeCount(),
		"edges", net.EdgeCount(),
		"capacity", net.Capacity(),
	)

	handlers := server.NewHandlers(logger, net, cfg.Query)
	router := server.NewRouter(logger, handlers)
	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func buildSource(ctx context.Context, cfg config.NetworkConfig) (store.Source, error) {
	switch cfg.Source {
	case "file":
		return store.NewFileSource(cfg.File)
	case "neo4j":
		return store.NewNeo4jSource(ctx, store.Options{
			URI:            cfg.URI,
			Database:       cfg.Database,
			Username:       cfg.Username,
			Password:       cfg.Password,
			MaxConnections: cfg.MaxConnections,
			Capacity:       cfg.Capacity,
		})
	default:
		return nil, fmt.Errorf("unknown NETWORK_SOURCE %q (want file or neo4j)", cfg.Source)
	}
}
