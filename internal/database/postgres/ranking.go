package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
)

type rankingRepository struct {
	db *pgxpool.Pool
}

// NewRankingRepository creates a new PostgreSQL raid ranking repository
func NewRankingRepository(db *pgxpool.Pool) repository.Ranking {
	return &rankingRepository{db: db}
}

// UpsertAll rewrites ranking rows keyed by (raid_id, rider_id). Rows for
// riders not in the slice are left in place; the builder reports those as
// stale instead of deleting history.
func (r *rankingRepository) UpsertAll(ctx context.Context, rankings []domain.RaidRanking) error {
	if len(rankings) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO raid_rankings (raid_id, rider_id, total_damage, rank, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (raid_id, rider_id) DO UPDATE SET
			total_damage = EXCLUDED.total_damage,
			rank = EXCLUDED.rank,
			last_updated = EXCLUDED.last_updated
	`
	for _, ranking := range rankings {
		_, err := tx.Exec(ctx, query,
			ranking.RaidID, ranking.RiderID, ranking.TotalDamage, ranking.Rank, ranking.LastUpdated)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertRanking, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// GetByRaid retrieves ranking rows ordered by rank ascending. limit <= 0
// returns all rows.
func (r *rankingRepository) GetByRaid(ctx context.Context, raidID int64, limit int) ([]domain.RaidRanking, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT raid_id, rider_id, total_damage, rank, last_updated
		FROM raid_rankings
		WHERE raid_id = $1
		ORDER BY rank`)

	args := []interface{}{raidID}
	if limit > 0 {
		queryBuilder.WriteString(" LIMIT $2")
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRankings, err)
	}
	defer rows.Close()

	var rankings []domain.RaidRanking
	for rows.Next() {
		var ranking domain.RaidRanking
		if err := rows.Scan(&ranking.RaidID, &ranking.RiderID, &ranking.TotalDamage, &ranking.Rank, &ranking.LastUpdated); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRankings, err)
		}
		rankings = append(rankings, ranking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRankings, err)
	}

	return rankings, nil
}
