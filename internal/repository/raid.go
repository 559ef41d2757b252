package repository

import (
	"context"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
)

// DamageApplied is the outcome of one atomic damage pass against a raid.
type DamageApplied struct {
	// Applied is false when the raid was no longer active, in which case
	// nothing was written.
	Applied bool
	// NewHP is the boss HP after the delta was deducted.
	NewHP int
	// Completed is true only when this pass drove HP to zero and flipped
	// the raid status. The caller uses it to gate reward issuance.
	Completed bool
}

// Raid defines the interface for boss-raid persistence
type Raid interface {
	GetRaidsByStatus(ctx context.Context, statuses ...domain.RaidStatus) ([]domain.BossRaid, error)
	GetRaidByID(ctx context.Context, raidID int64) (*domain.BossRaid, error)

	// CreateRaid inserts a new raid with full HP and active status,
	// populating raid.ID.
	CreateRaid(ctx context.Context, raid *domain.BossRaid) error

	// ApplyDamage stages the ledger upserts and the HP deduction in a
	// single transaction. When hpDelta is zero the raid row is left
	// untouched (no updated_at bump) and only the ledger is rewritten.
	ApplyDamage(ctx context.Context, raidID int64, entries []domain.RaidDamage, hpDelta int) (*DamageApplied, error)
}
