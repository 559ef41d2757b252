// Command app serves the raid read API and runs the daily sync schedule
// in-process.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/baedalhero/RaidSync_Go/internal/config"
	"github.com/baedalhero/RaidSync_Go/internal/database"
	"github.com/baedalhero/RaidSync_Go/internal/database/postgres"
	"github.com/baedalhero/RaidSync_Go/internal/handler"
	"github.com/baedalhero/RaidSync_Go/internal/ingest"
	"github.com/baedalhero/RaidSync_Go/internal/logger"
	"github.com/baedalhero/RaidSync_Go/internal/notify"
	"github.com/baedalhero/RaidSync_Go/internal/raid"
	"github.com/baedalhero/RaidSync_Go/internal/ranking"
	"github.com/baedalhero/RaidSync_Go/internal/reward"
	"github.com/baedalhero/RaidSync_Go/internal/server"
	"github.com/baedalhero/RaidSync_Go/internal/source"
	syncsvc "github.com/baedalhero/RaidSync_Go/internal/sync"
	"github.com/baedalhero/RaidSync_Go/internal/worker"
	"github.com/baedalhero/RaidSync_Go/migrations"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "app failed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false))

	if err := config.ValidateEnv(); err != nil {
		return err
	}
	handler.InitValidator()

	ctx := context.Background()
	log := logger.FromContext(ctx)

	if err := applyMigrations(cfg.GetDBConnString()); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	logRepo := postgres.NewDeliveryLogRepository(pool)
	raidRepo := postgres.NewRaidRepository(pool)
	participantRepo := postgres.NewParticipantRepository(pool)
	damageRepo := postgres.NewDamageRepository(pool)
	rankingRepo := postgres.NewRankingRepository(pool)
	rewardRepo := postgres.NewRewardRepository(pool)

	rankingCache := ranking.NewCachedReader(rankingRepo, ranking.DefaultCacheSize, ranking.DefaultCacheTTL)

	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.NotifierEnabled() {
		notifier, err = notify.NewDiscordNotifier(cfg.DiscordToken, cfg.DiscordChannelID)
		if err != nil {
			return fmt.Errorf("create discord notifier: %w", err)
		}
	}

	syncService := syncsvc.NewService(
		source.NewCSVSource(cfg.DeliveryLogPath),
		ingest.NewService(logRepo),
		raidRepo,
		rankingRepo,
		raid.NewService(raidRepo, participantRepo, logRepo, damageRepo),
		ranking.NewService(damageRepo, rankingRepo),
		reward.NewService(rankingRepo, participantRepo, rewardRepo),
		rankingCache,
		notifier,
	)

	syncWorker := worker.NewDailySyncWorker(syncService, cfg.SyncHourKST)
	if cfg.DeliveryLogPath != "" {
		syncWorker.Start()
	} else {
		log.Warn("DELIVERY_LOG_PATH not set, daily sync disabled")
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, server.Deps{
		DBPool:          pool,
		RaidRepo:        raidRepo,
		ParticipantRepo: participantRepo,
		DamageRepo:      damageRepo,
		RewardRepo:      rewardRepo,
		Rankings:        rankingCache,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		log.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := syncWorker.Shutdown(shutdownCtx); err != nil {
		log.Error("Sync worker shutdown failed", "error", err)
	}
	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info("Shutdown complete")
	return nil
}

// applyMigrations brings the schema up to date via the embedded goose files.
func applyMigrations(connString string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
