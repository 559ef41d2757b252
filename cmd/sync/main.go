// Command sync runs one full delivery-to-raid scoring run and exits.
// Meant for cron or manual reconciliation; the app binary runs the same
// pipeline on its own daily schedule.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/baedalhero/RaidSync_Go/internal/config"
	"github.com/baedalhero/RaidSync_Go/internal/database"
	"github.com/baedalhero/RaidSync_Go/internal/database/postgres"
	"github.com/baedalhero/RaidSync_Go/internal/ingest"
	"github.com/baedalhero/RaidSync_Go/internal/logger"
	"github.com/baedalhero/RaidSync_Go/internal/notify"
	"github.com/baedalhero/RaidSync_Go/internal/raid"
	"github.com/baedalhero/RaidSync_Go/internal/ranking"
	"github.com/baedalhero/RaidSync_Go/internal/reward"
	"github.com/baedalhero/RaidSync_Go/internal/source"
	syncsvc "github.com/baedalhero/RaidSync_Go/internal/sync"
	"github.com/baedalhero/RaidSync_Go/migrations"
)

const runTimeout = 10 * time.Minute

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sync failed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName+"-sync", cfg.Version, cfg.Environment, false))

	if err := config.ValidateSyncEnv(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

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
		nil, // no leaderboard cache in one-shot mode
		notifier,
	)

	summary, err := syncService.Run(ctx)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Info("Sync run finished",
		"run_id", summary.RunID,
		"duration", summary.FinishedAt.Sub(summary.StartedAt).String(),
		"logs_synced", summary.LogsSynced,
		"logs_skipped", summary.LogsSkipped,
		"logs_failed", summary.LogsFailed,
		"raids_processed", len(summary.Raids),
		"raids_completed", len(summary.CompletedRaids()))

	// Per-raid failures are reported but do not fail the run as a whole.
	for _, outcome := range summary.Raids {
		if outcome.Err != nil {
			log.Error("Raid processing failed",
				"raid_id", outcome.RaidID,
				"district", outcome.District,
				"error", outcome.Err)
		}
	}

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
