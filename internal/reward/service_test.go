package reward

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
)

func standings(riders ...string) []domain.RaidRanking {
	out := make([]domain.RaidRanking, len(riders))
	for i, rider := range riders {
		out[i] = domain.RaidRanking{RaidID: 1, RiderID: rider, Rank: i + 1}
	}
	return out
}

func joined(riders ...string) []domain.RaidParticipant {
	out := make([]domain.RaidParticipant, len(riders))
	for i, rider := range riders {
		out[i] = domain.RaidParticipant{RaidID: 1, RiderID: rider}
	}
	return out
}

func TestAllocate_TierAssignment(t *testing.T) {
	rankingRepo := new(MockRankingRepo)
	participantRepo := new(MockParticipantRepo)
	rewardRepo := new(MockRewardRepo)

	rankingRepo.On("GetByRaid", mock.Anything, int64(1), 0).
		Return(standings("BC111111", "BC222222", "BC333333", "BC444444"), nil)
	participantRepo.On("GetByRaid", mock.Anything, int64(1)).
		Return(joined("BC111111", "BC222222", "BC333333", "BC444444", "BC555555"), nil)

	var issued []domain.RaidReward
	rewardRepo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		issued = append(issued, *args.Get(1).(*domain.RaidReward))
	}).Return(true, nil)

	svc := NewService(rankingRepo, participantRepo, rewardRepo)
	outcome, err := svc.Allocate(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 5, outcome.RewardsIssued)
	require.Len(t, issued, 5)

	first := issued[0]
	assert.Equal(t, "BC111111", first.RiderID)
	assert.Equal(t, domain.RewardTypeReal, first.RewardType)
	assert.Equal(t, domain.FirstPlaceRewardDescription, first.RewardDescription)
	require.NotNil(t, first.Rank)
	assert.Equal(t, 1, *first.Rank)

	second := issued[1]
	assert.Equal(t, domain.RewardTypeVirtual, second.RewardType)
	assert.Equal(t, "2등 달성 배지", second.RewardDescription)

	third := issued[2]
	assert.Equal(t, domain.RewardTypeVirtual, third.RewardType)
	assert.Equal(t, "3등 달성 배지", third.RewardDescription)

	// Rank 4 and the unranked joiner both get participation badges.
	for _, r := range issued[3:] {
		assert.Equal(t, domain.RewardTypeBadge, r.RewardType)
		assert.Equal(t, domain.ParticipationBadgeDescription, r.RewardDescription)
		assert.Nil(t, r.Rank)
	}
}

func TestAllocate_RerunIssuesNothing(t *testing.T) {
	rankingRepo := new(MockRankingRepo)
	participantRepo := new(MockParticipantRepo)
	rewardRepo := new(MockRewardRepo)

	rankingRepo.On("GetByRaid", mock.Anything, int64(1), 0).Return(standings("BC111111"), nil)
	participantRepo.On("GetByRaid", mock.Anything, int64(1)).Return(joined("BC111111"), nil)
	// Constraint already holds the rows; every insert is a no-op.
	rewardRepo.On("Insert", mock.Anything, mock.Anything).Return(false, nil)

	svc := NewService(rankingRepo, participantRepo, rewardRepo)
	outcome, err := svc.Allocate(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 0, outcome.RewardsIssued)
}

func TestAllocate_FewerThanThreeRanked(t *testing.T) {
	rankingRepo := new(MockRankingRepo)
	participantRepo := new(MockParticipantRepo)
	rewardRepo := new(MockRewardRepo)

	rankingRepo.On("GetByRaid", mock.Anything, int64(1), 0).Return(standings("BC111111"), nil)
	participantRepo.On("GetByRaid", mock.Anything, int64(1)).Return(joined("BC111111", "BC222222"), nil)

	var issued []domain.RaidReward
	rewardRepo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		issued = append(issued, *args.Get(1).(*domain.RaidReward))
	}).Return(true, nil)

	svc := NewService(rankingRepo, participantRepo, rewardRepo)
	outcome, err := svc.Allocate(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 2, outcome.RewardsIssued)
	assert.Equal(t, domain.RewardTypeReal, issued[0].RewardType)
	assert.Equal(t, domain.RewardTypeBadge, issued[1].RewardType)
}

func TestAllocate_InsertFailureAborts(t *testing.T) {
	rankingRepo := new(MockRankingRepo)
	participantRepo := new(MockParticipantRepo)
	rewardRepo := new(MockRewardRepo)

	rankingRepo.On("GetByRaid", mock.Anything, int64(1), 0).Return(standings("BC111111"), nil)
	participantRepo.On("GetByRaid", mock.Anything, int64(1)).Return(joined("BC111111"), nil)
	rewardRepo.On("Insert", mock.Anything, mock.Anything).Return(false, errors.New("connection lost"))

	svc := NewService(rankingRepo, participantRepo, rewardRepo)
	_, err := svc.Allocate(context.Background(), 1)

	assert.Error(t, err)
}
