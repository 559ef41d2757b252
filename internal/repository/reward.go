package repository

import (
	"context"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
)

// Reward defines the interface for raid-reward persistence
type Reward interface {
	// Insert appends one issuance record. Returns false without error when
	// a reward already exists for (raid_id, rider_id); the unique
	// constraint makes double-issuance impossible across reruns.
	Insert(ctx context.Context, reward *domain.RaidReward) (bool, error)

	// GetByRaid returns issued rewards ordered by rank ascending, with
	// participation badges (nil rank) last.
	GetByRaid(ctx context.Context, raidID int64) ([]domain.RaidReward, error)
}
