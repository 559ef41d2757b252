package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
)

type damageRepository struct {
	db *pgxpool.Pool
}

// NewDamageRepository creates a new PostgreSQL damage ledger repository
func NewDamageRepository(db *pgxpool.Pool) repository.Damage {
	return &damageRepository{db: db}
}

// GetLedger retrieves every ledger row for a raid.
func (r *damageRepository) GetLedger(ctx context.Context, raidID int64) ([]domain.RaidDamage, error) {
	query := `
		SELECT raid_id, rider_id, damage_date, base_damage, bonus_multiplier, total_damage
		FROM raid_damages
		WHERE raid_id = $1
		ORDER BY damage_date, rider_id
	`

	rows, err := r.db.Query(ctx, query, raidID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryDamageLedger, err)
	}
	defer rows.Close()

	var ledger []domain.RaidDamage
	for rows.Next() {
		var d domain.RaidDamage
		if err := rows.Scan(&d.RaidID, &d.RiderID, &d.DamageDate, &d.BaseDamage, &d.BonusMultiplier, &d.TotalDamage); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryDamageLedger, err)
		}
		ledger = append(ledger, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryDamageLedger, err)
	}

	return ledger, nil
}

// TotalDamage returns the sum of all ledger damage for a raid.
func (r *damageRepository) TotalDamage(ctx context.Context, raidID int64) (int, error) {
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_damage), 0) FROM raid_damages WHERE raid_id = $1`,
		raidID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToSumDamage, err)
	}
	return total, nil
}

// DamageHistory returns per-day damage totals for a raid, date ascending.
func (r *damageRepository) DamageHistory(ctx context.Context, raidID int64) ([]domain.DailyDamage, error) {
	query := `
		SELECT damage_date, SUM(total_damage)
		FROM raid_damages
		WHERE raid_id = $1
		GROUP BY damage_date
		ORDER BY damage_date
	`

	rows, err := r.db.Query(ctx, query, raidID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryDamageHistory, err)
	}
	defer rows.Close()

	var history []domain.DailyDamage
	for rows.Next() {
		var d domain.DailyDamage
		if err := rows.Scan(&d.Date, &d.TotalDamage); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryDamageHistory, err)
		}
		history = append(history, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryDamageHistory, err)
	}

	return history, nil
}
