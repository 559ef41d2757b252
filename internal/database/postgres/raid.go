package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
)

type raidRepository struct {
	db *pgxpool.Pool
}

// NewRaidRepository creates a new PostgreSQL boss raid repository
func NewRaidRepository(db *pgxpool.Pool) repository.Raid {
	return &raidRepository{db: db}
}

const raidColumns = `id, district, boss_name, boss_type, max_hp, current_hp,
	start_date, end_date, status, buff_multiplier, created_at, updated_at`

func scanRaid(row pgx.Row) (*domain.BossRaid, error) {
	var raid domain.BossRaid
	err := row.Scan(
		&raid.ID,
		&raid.District,
		&raid.BossName,
		&raid.BossType,
		&raid.MaxHP,
		&raid.CurrentHP,
		&raid.StartDate,
		&raid.EndDate,
		&raid.Status,
		&raid.BuffMultiplier,
		&raid.CreatedAt,
		&raid.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &raid, nil
}

// GetRaidsByStatus retrieves raids matching any of the given statuses,
// newest first.
func (r *raidRepository) GetRaidsByStatus(ctx context.Context, statuses ...domain.RaidStatus) ([]domain.BossRaid, error) {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM boss_raids
		WHERE status = ANY($1)
		ORDER BY created_at DESC, id DESC
	`, raidColumns)

	rows, err := r.db.Query(ctx, query, values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRaids, err)
	}
	defer rows.Close()

	var raids []domain.BossRaid
	for rows.Next() {
		raid, err := scanRaid(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRaids, err)
		}
		raids = append(raids, *raid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRaids, err)
	}

	return raids, nil
}

// GetRaidByID retrieves a single raid. Returns domain.ErrRaidNotFound when
// no row exists.
func (r *raidRepository) GetRaidByID(ctx context.Context, raidID int64) (*domain.BossRaid, error) {
	query := fmt.Sprintf(`SELECT %s FROM boss_raids WHERE id = $1`, raidColumns)

	raid, err := scanRaid(r.db.QueryRow(ctx, query, raidID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRaidNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRaid, err)
	}
	return raid, nil
}

// CreateRaid inserts a new active raid at full HP and populates raid.ID and
// its timestamps.
func (r *raidRepository) CreateRaid(ctx context.Context, raid *domain.BossRaid) error {
	query := `
		INSERT INTO boss_raids (district, boss_name, boss_type, max_hp, current_hp, start_date, end_date, status, buff_multiplier)
		VALUES ($1, $2, $3, $4, $4, $5, $6, $7, $8)
		RETURNING id, current_hp, status, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		raid.District, raid.BossName, raid.BossType, raid.MaxHP,
		raid.StartDate, raid.EndDate, domain.RaidStatusActive, raid.BuffMultiplier,
	).Scan(&raid.ID, &raid.CurrentHP, &raid.Status, &raid.CreatedAt, &raid.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRaid, err)
	}
	return nil
}

// ApplyDamage stages the ledger rows and deducts HP in one transaction.
// The raid row is re-checked under lock so a raid completed by a concurrent
// run is left untouched. HP never goes below zero, and the status flip to
// completed happens in the same statement that drains the last HP.
func (r *raidRepository) ApplyDamage(ctx context.Context, raidID int64, entries []domain.RaidDamage, hpDelta int) (*repository.DamageApplied, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var currentHP int
	var status domain.RaidStatus
	err = tx.QueryRow(ctx,
		`SELECT current_hp, status FROM boss_raids WHERE id = $1 FOR UPDATE`,
		raidID,
	).Scan(&currentHP, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRaidNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockRaid, err)
	}

	if status != domain.RaidStatusActive {
		return &repository.DamageApplied{Applied: false, NewHP: currentHP}, nil
	}

	upsert := `
		INSERT INTO raid_damages (raid_id, rider_id, damage_date, base_damage, bonus_multiplier, total_damage)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (raid_id, rider_id, damage_date) DO UPDATE SET
			base_damage = EXCLUDED.base_damage,
			bonus_multiplier = EXCLUDED.bonus_multiplier,
			total_damage = EXCLUDED.total_damage
	`
	for _, e := range entries {
		_, err := tx.Exec(ctx, upsert,
			raidID, e.RiderID, e.DamageDate, e.BaseDamage, e.BonusMultiplier, e.TotalDamage)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToStageDamageRow, err)
		}
	}

	result := &repository.DamageApplied{Applied: true, NewHP: currentHP}
	if hpDelta > 0 {
		err = tx.QueryRow(ctx, `
			UPDATE boss_raids
			SET current_hp = GREATEST(0, current_hp - $2),
			    status = CASE WHEN current_hp - $2 <= 0 THEN 'completed' ELSE status END,
			    updated_at = NOW()
			WHERE id = $1 AND status = 'active'
			RETURNING current_hp, status
		`, raidID, hpDelta).Scan(&result.NewHP, &status)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRaidHP, err)
		}
		result.Completed = status == domain.RaidStatusCompleted
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return result, nil
}
