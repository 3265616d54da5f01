// Command sociographd runs the sociograph API server: a Postgres-backed
// follow store with an in-memory graph replica serving traversal,
// recommendation, and analytics queries.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sociograph/sociograph/internal/api"
	"github.com/sociograph/sociograph/internal/config"
	"github.com/sociograph/sociograph/internal/db"
	"github.com/sociograph/sociograph/internal/dbpool"
	"github.com/sociograph/sociograph/internal/graph"
	"github.com/sociograph/sociograph/internal/service"
	"github.com/sociograph/sociograph/internal/store"
	"github.com/sociograph/sociograph/internal/ws"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}

	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	} else {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
	}

	if err := run(log, cfg); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(log *logrus.Logger, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	followStore := store.NewFollowStore(store.Base{Pool: pool, Log: log})

	g := graph.New()

	followSvc := service.NewFollowService(followStore, g, log)
	graphSvc := service.NewGraphService(g, cfg.MaxPathDepth, cfg.CommunityDepth, log)
	recommendSvc := service.NewRecommendService(g, log)
	analyticsSvc := service.NewAnalyticsService(g, cfg.CommunityDepth, log)
	syncSvc := service.NewSyncService(followStore, g, log)

	// Load the full follows table into memory before accepting traffic.
	follows, err := syncSvc.Bootstrap(ctx)
	if err != nil {
		return fmt.Errorf("bootstrapping graph: %w", err)
	}
	log.WithField("follows", follows).Info("graph bootstrapped")

	hub := ws.NewHub(log)
	go hub.Run(ctx)

	// The bridge re-applies committed mutations from every replica and
	// feeds the WebSocket stream.
	bridge := db.NewNotifyBridge(log, pool, syncSvc, hub)
	if err := bridge.Start(ctx); err != nil {
		return fmt.Errorf("starting notify bridge: %w", err)
	}

	router := api.NewRouter(ctx, &api.RouterDeps{
		Log:          log,
		Pool:         pool,
		Hub:          hub,
		Graph:        g,
		Follows:      followSvc,
		Recommend:    recommendSvc,
		GraphQueries: graphSvc,
		Analytics:    analyticsSvc,
		Admin:        syncSvc,
		CORSOrigins:  cfg.CORSOrigins,
		Version:      config.Version,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		log.WithFields(logrus.Fields{
			"addr":    cfg.Addr(),
			"version": config.Version,
		}).Info("server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listening on %s: %w", cfg.Addr(), err)
	case <-ctx.Done():
	}

	log.Info("shutdown signal received")

	// Stop accepting requests and let in-flight ones finish. WebSocket
	// pumps observe the cancelled context and unwind on their own.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("http server shutdown")
	}

	hub.Shutdown()

	log.Info("server stopped")

	return nil
}
