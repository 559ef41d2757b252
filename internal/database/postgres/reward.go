package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
)

type rewardRepository struct {
	db *pgxpool.Pool
}

// NewRewardRepository creates a new PostgreSQL raid reward repository
func NewRewardRepository(db *pgxpool.Pool) repository.Reward {
	return &rewardRepository{db: db}
}

// Insert appends one issuance record. The unique constraint on
// (raid_id, rider_id) turns a duplicate into a no-op, so a rerun over an
// already-rewarded raid issues nothing.
func (r *rewardRepository) Insert(ctx context.Context, reward *domain.RaidReward) (bool, error) {
	query := `
		INSERT INTO raid_rewards (raid_id, rider_id, rank, reward_type, reward_description)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (raid_id, rider_id) DO NOTHING
	`

	tag, err := r.db.Exec(ctx, query,
		reward.RaidID, reward.RiderID, reward.Rank, reward.RewardType, reward.RewardDescription)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToInsertReward, err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByRaid retrieves issued rewards, ranked entries first.
func (r *rewardRepository) GetByRaid(ctx context.Context, raidID int64) ([]domain.RaidReward, error) {
	query := `
		SELECT id, raid_id, rider_id, rank, reward_type, reward_description, created_at
		FROM raid_rewards
		WHERE raid_id = $1
		ORDER BY rank NULLS LAST, rider_id
	`

	rows, err := r.db.Query(ctx, query, raidID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRewards, err)
	}
	defer rows.Close()

	var rewards []domain.RaidReward
	for rows.Next() {
		var reward domain.RaidReward
		if err := rows.Scan(&reward.ID, &reward.RaidID, &reward.RiderID, &reward.Rank, &reward.RewardType, &reward.RewardDescription, &reward.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRewards, err)
		}
		rewards = append(rewards, reward)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRewards, err)
	}

	return rewards, nil
}
