// Package ranking rebuilds per-raid standings from the damage ledger.
package ranking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/logger"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
)

// Outcome reports one ranking rebuild.
type Outcome struct {
	RankedRiders int
	// StaleRiders are riders present in the stored rankings but absent from
	// the ledger. Their rows are kept, not deleted, and surfaced here for
	// the run report.
	StaleRiders []string
}

// Service defines the ranking rebuild business logic
type Service interface {
	// Rebuild recomputes the full standings of a raid from its ledger.
	// Deterministic: damage descending, rider id ascending on ties,
	// contiguous 1-based ranks.
	Rebuild(ctx context.Context, raidID int64) (*Outcome, error)
}

type service struct {
	damageRepo  repository.Damage
	rankingRepo repository.Ranking
}

// NewService creates a new ranking service
func NewService(damageRepo repository.Damage, rankingRepo repository.Ranking) Service {
	return &service{damageRepo: damageRepo, rankingRepo: rankingRepo}
}

// Rebuild recomputes and upserts the standings of one raid.
func (s *service) Rebuild(ctx context.Context, raidID int64) (*Outcome, error) {
	log := logger.FromContext(ctx).With("raidID", raidID)

	ledger, err := s.damageRepo.GetLedger(ctx, raidID)
	if err != nil {
		return nil, fmt.Errorf("failed to load damage ledger: %w", err)
	}

	totals := make(map[string]int)
	for _, d := range ledger {
		totals[d.RiderID] += d.TotalDamage
	}

	riders := make([]string, 0, len(totals))
	for rider := range totals {
		riders = append(riders, rider)
	}
	sort.Slice(riders, func(i, j int) bool {
		if totals[riders[i]] != totals[riders[j]] {
			return totals[riders[i]] > totals[riders[j]]
		}
		return riders[i] < riders[j]
	})

	now := time.Now().UTC().Truncate(24 * time.Hour)
	rankings := make([]domain.RaidRanking, len(riders))
	for i, rider := range riders {
		rankings[i] = domain.RaidRanking{
			RaidID:      raidID,
			RiderID:     rider,
			TotalDamage: totals[rider],
			Rank:        i + 1,
			LastUpdated: now,
		}
	}

	if err := s.rankingRepo.UpsertAll(ctx, rankings); err != nil {
		return nil, fmt.Errorf("failed to upsert rankings: %w", err)
	}

	stale, err := s.findStale(ctx, raidID, totals)
	if err != nil {
		return nil, err
	}
	if len(stale) > 0 {
		log.Warn("Stale ranking rows detected", "riders", stale)
	}

	log.Info("Rankings rebuilt", "rankedRiders", len(rankings), "stale", len(stale))
	return &Outcome{RankedRiders: len(rankings), StaleRiders: stale}, nil
}

// findStale compares stored ranking rows against the riders present in the
// ledger aggregation.
func (s *service) findStale(ctx context.Context, raidID int64, totals map[string]int) ([]string, error) {
	stored, err := s.rankingRepo.GetByRaid(ctx, raidID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored rankings: %w", err)
	}

	var stale []string
	for _, row := range stored {
		if _, ok := totals[row.RiderID]; !ok {
			stale = append(stale, row.RiderID)
		}
	}
	return stale, nil
}
