package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"flowfinance/config"
	httpLayer "flowfinance/http"
	"flowfinance/metrics"
	"flowfinance/repository"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			return serve(cmd.Context(), a.cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")
	return cmd
}

// newCache returns the result cache selected by cfg and a function releasing it.
func newCache(ctx context.Context, cfg config.CacheConfig) (repository.CacheRepository, func()) {
	if cfg.Driver != config.CacheRedis {
		return repository.NewMockCache(), func() {}
	}

	cache := repository.NewRedisCache(cfg.Redis)
	if err := cache.Ping(ctx); err != nil {
		// El circuit breaker degrada a cache misses mientras Redis no responda
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis not reachable, continuing without warm cache")
	}
	return cache, func() {
		if err := cache.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing redis client")
		}
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache, closeCache := newCache(ctx, cfg.Cache)
	defer closeCache()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewRegistry(reg)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()

	server := httpLayer.NewServer(buildServices(cfg, cache, m), rateLimiter, m, reg)
	httpServer := httpLayer.NewHTTPServer(cfg.Server, server)

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Str("cache", string(cfg.Cache.Driver)).Msg("API listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("server exited")
	return nil
}
