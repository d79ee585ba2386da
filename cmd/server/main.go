package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sweettreats/storefront/internal/api"
	"github.com/sweettreats/storefront/internal/core/domain"
	"github.com/sweettreats/storefront/internal/core/ports"
	"github.com/sweettreats/storefront/internal/core/service"
	"github.com/sweettreats/storefront/internal/infrastructure/db/redis"
	"github.com/sweettreats/storefront/internal/infrastructure/memory"
	"github.com/sweettreats/storefront/internal/infrastructure/queue"
	"github.com/sweettreats/storefront/internal/pkg/config"
	"github.com/sweettreats/storefront/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "storefront",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := service.NewStorefront(
		memory.NewIdentityStore(),
		memory.NewCatalog(memory.WithItems(domain.DefaultCatalogItems()...)),
		log.With().Str("component", "storefront").Logger(),
	)

	// The event loop outlives the signal context so in-flight requests can
	// finish during shutdown.
	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()
	exec := queue.NewSerializer(cfg.Queue.Buffer, log)
	exec.Start(loopCtx)

	var (
		rdb      *goredis.Client
		notifier ports.OrderNotifier
	)
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer client.Close()
		rdb = client
		notifier = redis.NewOrderPublisher(client, cfg.Redis.Channel)
		log.Info().Str("channel", cfg.Redis.Channel).Msg("publishing order confirmations")
	} else {
		log.Info().Msg("REDIS_ADDR not set, order confirmations are not published")
	}

	e := api.NewRouter(api.Deps{
		Store:     store,
		Exec:      exec,
		Tokens:    service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL),
		JWTSecret: cfg.JWTSecret,
		Notifier:  notifier,
		Redis:     rdb,
		Log:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("storefront listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
