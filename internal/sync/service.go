// Package sync orchestrates a full delivery-to-raid scoring run.
package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/ingest"
	"github.com/baedalhero/RaidSync_Go/internal/logger"
	"github.com/baedalhero/RaidSync_Go/internal/metrics"
	"github.com/baedalhero/RaidSync_Go/internal/notify"
	"github.com/baedalhero/RaidSync_Go/internal/raid"
	"github.com/baedalhero/RaidSync_Go/internal/ranking"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
	"github.com/baedalhero/RaidSync_Go/internal/reward"
	"github.com/baedalhero/RaidSync_Go/internal/source"
)

// Service defines the sync orchestration
type Service interface {
	// Run executes one full run: ingest the feed, then score every active
	// raid. A failure inside one raid is isolated to that raid's outcome;
	// feed-level and store-setup failures abort the run.
	Run(ctx context.Context) (*domain.RunSummary, error)
}

type service struct {
	src         source.Source
	ingestSvc   ingest.Service
	raidRepo    repository.Raid
	rankingRepo repository.Ranking
	raidSvc     raid.Service
	rankingSvc  ranking.Service
	rewardSvc   reward.Service
	cache       *ranking.CachedReader
	notifier    notify.Notifier
}

// NewService creates a new sync orchestrator
func NewService(
	src source.Source,
	ingestSvc ingest.Service,
	raidRepo repository.Raid,
	rankingRepo repository.Ranking,
	raidSvc raid.Service,
	rankingSvc ranking.Service,
	rewardSvc reward.Service,
	cache *ranking.CachedReader,
	notifier notify.Notifier,
) Service {
	return &service{
		src:         src,
		ingestSvc:   ingestSvc,
		raidRepo:    raidRepo,
		rankingRepo: rankingRepo,
		raidSvc:     raidSvc,
		rankingSvc:  rankingSvc,
		rewardSvc:   rewardSvc,
		cache:       cache,
		notifier:    notifier,
	}
}

// Run executes one full sync run.
func (s *service) Run(ctx context.Context) (*domain.RunSummary, error) {
	runID := logger.GenerateRunID()
	ctx = logger.WithRunID(ctx, runID)
	log := logger.FromContext(ctx)

	summary := &domain.RunSummary{RunID: runID, StartedAt: time.Now()}
	defer func() {
		summary.FinishedAt = time.Now()
		metrics.SyncDuration.Observe(summary.FinishedAt.Sub(summary.StartedAt).Seconds())
	}()

	log.Info("Sync run started")

	records, err := s.src.Fetch(ctx)
	if err != nil {
		metrics.SyncRuns.WithLabelValues(metrics.ResultError).Inc()
		return summary, fmt.Errorf("failed to fetch delivery log feed: %w", err)
	}

	ingested, err := s.ingestSvc.IngestAll(ctx, records)
	if err != nil {
		metrics.SyncRuns.WithLabelValues(metrics.ResultError).Inc()
		return summary, fmt.Errorf("failed to ingest delivery logs: %w", err)
	}
	summary.LogsSynced = ingested.Synced
	summary.LogsSkipped = ingested.Skipped
	summary.LogsFailed = ingested.Failed
	metrics.LogsSynced.Add(float64(ingested.Synced))
	metrics.LogsFailed.Add(float64(ingested.Failed))

	// Completed raids ride along so their rankings keep getting rebuilt;
	// a rebuild that failed in the run that felled the boss heals here.
	raids, err := s.raidRepo.GetRaidsByStatus(ctx, domain.RaidStatusActive, domain.RaidStatusCompleted)
	if err != nil {
		metrics.SyncRuns.WithLabelValues(metrics.ResultError).Inc()
		return summary, fmt.Errorf("failed to load raids: %w", err)
	}

	for _, r := range raids {
		summary.Raids = append(summary.Raids, s.processRaid(ctx, r))
	}

	if s.cache != nil {
		s.cache.Invalidate()
	}

	log.Info("Sync run finished",
		"logsSynced", summary.LogsSynced,
		"logsSkipped", summary.LogsSkipped,
		"logsFailed", summary.LogsFailed,
		"raids", len(summary.Raids),
		"completed", len(summary.CompletedRaids()))
	metrics.SyncRuns.WithLabelValues(metrics.ResultOK).Inc()
	return summary, nil
}

// processRaid runs accumulate, ranking rebuild, and reward allocation for
// one raid. Any failure lands in the outcome and leaves other raids alone.
// Already-completed raids skip accumulation and rewards but still get their
// rankings rebuilt every run, so a correction or an earlier rebuild failure
// is never frozen in place.
func (s *service) processRaid(ctx context.Context, r domain.BossRaid) domain.RaidOutcome {
	log := logger.FromContext(ctx).With("raidID", r.ID, "district", r.District)
	outcome := domain.RaidOutcome{RaidID: r.ID, District: r.District, BossName: r.BossName, NewHP: r.CurrentHP}

	if r.Status == domain.RaidStatusActive {
		accumulated, err := s.raidSvc.Accumulate(ctx, r)
		if err != nil {
			log.Error("Raid accumulation failed", "error", err)
			outcome.Err = err
			return outcome
		}
		outcome.TotalDamageDealt = accumulated.TotalDamageDealt
		outcome.NewHP = accumulated.NewHP
		outcome.Completed = accumulated.Completed

		if accumulated.TotalDamageDealt > 0 {
			metrics.DamageDealt.WithLabelValues(r.District).Add(float64(accumulated.TotalDamageDealt))
		}
	}

	rebuilt, err := s.rankingSvc.Rebuild(ctx, r.ID)
	if err != nil {
		log.Error("Ranking rebuild failed", "error", err)
		outcome.Err = err
		return outcome
	}
	outcome.RankedRiders = rebuilt.RankedRiders
	outcome.StaleRankings = rebuilt.StaleRiders

	// Rewards and the announcement fire only on the run that felled the
	// boss; raids already completed before this run never re-enter here.
	if !outcome.Completed {
		return outcome
	}

	metrics.RaidsCompleted.WithLabelValues(r.District).Inc()

	allocated, err := s.rewardSvc.Allocate(ctx, r.ID)
	if err != nil {
		log.Error("Reward allocation failed", "error", err)
		outcome.Err = err
		return outcome
	}
	outcome.RewardsIssued = allocated.RewardsIssued

	s.announce(ctx, r)
	return outcome
}

func (s *service) announce(ctx context.Context, r domain.BossRaid) {
	if s.notifier == nil {
		return
	}

	topRiders, err := s.rankingRepo.GetByRaid(ctx, r.ID, reward.TopRewardRanks)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to load top riders for announcement", "raidID", r.ID, "error", err)
		topRiders = nil
	}
	s.notifier.AnnounceCompletion(ctx, r, topRiders)
}
