package repository

import (
	"context"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
)

// Damage defines the read interface over the damage ledger.
// Writes go through Raid.ApplyDamage so they share the raid transaction.
type Damage interface {
	// GetLedger returns every ledger row for a raid.
	GetLedger(ctx context.Context, raidID int64) ([]domain.RaidDamage, error)

	// TotalDamage returns the ledger-wide damage sum for a raid.
	TotalDamage(ctx context.Context, raidID int64) (int, error)

	// DamageHistory returns per-day damage totals for a raid, date ascending.
	DamageHistory(ctx context.Context, raidID int64) ([]domain.DailyDamage, error)
}
