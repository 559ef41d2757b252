package repository

import (
	"context"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
)

// Ranking defines the interface for raid-ranking persistence
type Ranking interface {
	// UpsertAll rewrites the given ranking rows keyed by (raid_id, rider_id).
	// Rows for riders absent from the slice are left in place.
	UpsertAll(ctx context.Context, rankings []domain.RaidRanking) error

	// GetByRaid returns ranking rows ordered by rank ascending.
	// limit <= 0 returns all rows.
	GetByRaid(ctx context.Context, raidID int64, limit int) ([]domain.RaidRanking, error)
}
