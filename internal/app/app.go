// Package app wires the service together and owns its lifecycle. The
// shared mutable pieces (query history, trending source, stats counters)
// are created here and injected explicitly; nothing hangs off package-level
// state.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dealradar/dealradar/internal/catalog"
	"github.com/dealradar/dealradar/internal/config"
	"github.com/dealradar/dealradar/internal/engine"
	"github.com/dealradar/dealradar/internal/event"
	handler "github.com/dealradar/dealradar/internal/handler/http"
	"github.com/dealradar/dealradar/internal/history"
	"github.com/dealradar/dealradar/internal/service"
	"github.com/dealradar/dealradar/internal/stats"
	"github.com/dealradar/dealradar/internal/trending"
	"github.com/dealradar/dealradar/pkg/health"
	pkgkafka "github.com/dealradar/dealradar/pkg/kafka"
)

// App wires together all dependencies and runs the service.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	consumers  []*pkgkafka.Consumer
	httpServer *http.Server
	redis      *redis.Client
}

// NewApp creates the application with all dependencies wired.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Catalog snapshot: from file when configured, built-in demo otherwise.
	var store *catalog.Store
	if cfg.CatalogPath != "" {
		var err error
		store, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		logger.Info("catalog loaded from file",
			slog.String("path", cfg.CatalogPath),
			slog.Int("products", store.Len()),
		)
	} else {
		store = catalog.NewStore(catalog.Seed())
		logger.Info("built-in demo catalog loaded", slog.Int("products", store.Len()))
	}

	// Trending terms: Redis list when configured, static list otherwise.
	var trendSource trending.Source
	var redisClient *redis.Client
	var redisSource *trending.RedisSource
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisSource = trending.NewRedisSource(redisClient, cfg.TrendingTerms)
		trendSource = redisSource
		logger.Info("redis trending source initialized", slog.String("addr", cfg.RedisAddr))
	} else {
		trendSource = trending.NewStatic(cfg.TrendingTerms)
		logger.Info("static trending source initialized",
			slog.Int("terms", len(cfg.TrendingTerms)),
		)
	}

	searchService := service.NewSearchService(
		store,
		engine.New(),
		history.New(cfg.HistoryCapacity),
		trendSource,
		stats.NewTracker(),
		cfg.TrendingSampleSize,
		cfg.TrendingSampleSeed,
		logger,
	)

	// Catalog event consumers, only when brokers are configured.
	var consumers []*pkgkafka.Consumer
	if len(cfg.KafkaBrokers) > 0 {
		eventConsumer := event.NewConsumer(store, logger)
		topics := []string{
			event.TopicProductCreated,
			event.TopicProductUpdated,
			event.TopicProductDeleted,
		}
		for _, topic := range topics {
			consumerCfg := pkgkafka.ConsumerConfig{
				Brokers:  cfg.KafkaBrokers,
				GroupID:  "dealradar",
				Topic:    topic,
				MinBytes: 1,
				MaxBytes: 10e6, // 10 MB
			}
			consumers = append(consumers, pkgkafka.NewConsumer(consumerCfg, eventConsumer.Handle, logger))
		}
		logger.Info("kafka consumers initialized",
			slog.Any("brokers", cfg.KafkaBrokers),
			slog.Int("topic_count", len(topics)),
		)
	}

	// Health checks.
	healthHandler := health.NewHandler()
	if redisSource != nil {
		healthHandler.Register("redis", redisSource.Ping)
	}
	if len(cfg.KafkaBrokers) > 0 {
		healthHandler.Register("kafka", func(ctx context.Context) error {
			return pkgkafka.PingBrokers(ctx, cfg.KafkaBrokers)
		})
	}

	router := handler.NewRouter(searchService, store, healthHandler, handler.RouterConfig{
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		consumers:  consumers,
		httpServer: httpServer,
		redis:      redisClient,
	}, nil
}

// Run starts the HTTP server and any consumers, blocking until the context
// is canceled or a component fails.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1+len(a.consumers))

	for _, c := range a.consumers {
		c := c
		go func() {
			if err := c.Start(ctx); err != nil {
				errCh <- fmt.Errorf("kafka consumer: %w", err)
			}
		}()
	}

	go func() {
		a.logger.Info("starting HTTP server", slog.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			a.logger.Error("kafka consumer close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
