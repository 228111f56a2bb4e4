package components

import (
	"context"
	"fmt"
	"os"
	"time"

	"log/slog"

	"github.com/godiehurtado/nearsy-app-sub000/internal/api"
	"github.com/godiehurtado/nearsy-app-sub000/internal/config"
	"github.com/godiehurtado/nearsy-app-sub000/internal/redis"
	"github.com/godiehurtado/nearsy-app-sub000/internal/service"
	"github.com/godiehurtado/nearsy-app-sub000/internal/storage/postgres"
	"github.com/godiehurtado/nearsy-app-sub000/internal/workers"
	"github.com/godiehurtado/nearsy-app-sub000/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	AlertQ     *redis.AlertQueue
	Snapshot   *workers.SnapshotRefresher
	PushSender *service.PushSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("initializing postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("initializing redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	candidateCache := redis.NewCandidateCache(redisClient)
	alertQueue := redis.NewAlertQueue(redisClient.Client, "alerts:queue")

	nearbySvc := service.NewNearbyService(storage.Records(), candidateCache, storage.Stats(), alertQueue, logger, cfg.Matching)
	profileSvc := service.NewProfileService(storage.Records(), logger)
	adminSvc := service.NewAdminAccountService(storage.Accounts(), logger)
	statsSvc := service.NewStatsService(storage.Stats())

	srv := service.NewService(nearbySvc, profileSvc, adminSvc, statsSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("initialized server")

	snapshot := workers.NewSnapshotRefresher(
		storage.Records(),
		candidateCache,
		logger,
		cfg.Matching.RefreshInterval,
		cfg.Matching.SnapshotTTL,
		cfg.Matching.CandidateCap,
	)

	var pushSender *service.PushSender
	if !cfg.Push.Disabled {
		pushSender = service.NewPushSender(logger, cfg.Push, alertQueue)
	}

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		AlertQ:     alertQueue,
		Snapshot:   snapshot,
		PushSender: pushSender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
