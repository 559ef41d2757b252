// Package reward issues prizes when a boss raid completes.
package reward

import (
	"context"
	"fmt"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/logger"
	"github.com/baedalhero/RaidSync_Go/internal/metrics"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
)

// TopRewardRanks is how many leading ranks receive ranked (non-participation)
// rewards.
const TopRewardRanks = 3

// Outcome reports one allocation pass.
type Outcome struct {
	RewardsIssued int
}

// Service defines the reward allocation business logic
type Service interface {
	// Allocate issues rewards for a raid that completed this run: rank 1
	// gets the physical prize, ranks 2-3 achievement badges, every other
	// participant a participation badge. Idempotent per rider.
	Allocate(ctx context.Context, raidID int64) (*Outcome, error)
}

type service struct {
	rankingRepo     repository.Ranking
	participantRepo repository.Participant
	rewardRepo      repository.Reward
}

// NewService creates a new reward service
func NewService(rankingRepo repository.Ranking, participantRepo repository.Participant, rewardRepo repository.Reward) Service {
	return &service{
		rankingRepo:     rankingRepo,
		participantRepo: participantRepo,
		rewardRepo:      rewardRepo,
	}
}

// Allocate runs one allocation pass against the current standings.
func (s *service) Allocate(ctx context.Context, raidID int64) (*Outcome, error) {
	log := logger.FromContext(ctx).With("raidID", raidID)

	rankings, err := s.rankingRepo.GetByRaid(ctx, raidID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load rankings: %w", err)
	}

	participants, err := s.participantRepo.GetByRaid(ctx, raidID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}

	// The ranked set is fixed at this moment; participation badges go to
	// everyone outside it even if standings shift later.
	ranked := make(map[string]bool, TopRewardRanks)

	var rewards []domain.RaidReward
	for _, r := range rankings {
		if r.Rank > TopRewardRanks {
			break
		}
		ranked[r.RiderID] = true

		rank := r.Rank
		reward := domain.RaidReward{RaidID: raidID, RiderID: r.RiderID, Rank: &rank}
		if r.Rank == 1 {
			reward.RewardType = domain.RewardTypeReal
			reward.RewardDescription = domain.FirstPlaceRewardDescription
		} else {
			reward.RewardType = domain.RewardTypeVirtual
			reward.RewardDescription = domain.TierBadgeDescription(r.Rank)
		}
		rewards = append(rewards, reward)
	}

	for _, p := range participants {
		if ranked[p.RiderID] {
			continue
		}
		rewards = append(rewards, domain.RaidReward{
			RaidID:            raidID,
			RiderID:           p.RiderID,
			RewardType:        domain.RewardTypeBadge,
			RewardDescription: domain.ParticipationBadgeDescription,
		})
	}

	outcome := &Outcome{}
	for i := range rewards {
		inserted, err := s.rewardRepo.Insert(ctx, &rewards[i])
		if err != nil {
			return nil, fmt.Errorf("failed to insert reward for %s: %w", rewards[i].RiderID, err)
		}
		if inserted {
			outcome.RewardsIssued++
			metrics.RewardsIssued.WithLabelValues(string(rewards[i].RewardType)).Inc()
		}
	}

	log.Info("Rewards allocated", "issued", outcome.RewardsIssued, "candidates", len(rewards))
	return outcome, nil
}
