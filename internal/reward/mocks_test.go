package reward

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
)

// MockRankingRepo is a mock implementation of repository.Ranking
type MockRankingRepo struct {
	mock.Mock
}

func (m *MockRankingRepo) UpsertAll(ctx context.Context, rankings []domain.RaidRanking) error {
	args := m.Called(ctx, rankings)
	return args.Error(0)
}

func (m *MockRankingRepo) GetByRaid(ctx context.Context, raidID int64, limit int) ([]domain.RaidRanking, error) {
	args := m.Called(ctx, raidID, limit)
	return args.Get(0).([]domain.RaidRanking), args.Error(1)
}

// MockParticipantRepo is a mock implementation of repository.Participant
type MockParticipantRepo struct {
	mock.Mock
}

func (m *MockParticipantRepo) GetByRaid(ctx context.Context, raidID int64) ([]domain.RaidParticipant, error) {
	args := m.Called(ctx, raidID)
	return args.Get(0).([]domain.RaidParticipant), args.Error(1)
}

func (m *MockParticipantRepo) CountByRaid(ctx context.Context, raidID int64) (int, error) {
	args := m.Called(ctx, raidID)
	return args.Int(0), args.Error(1)
}

func (m *MockParticipantRepo) Create(ctx context.Context, participant *domain.RaidParticipant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

// MockRewardRepo is a mock implementation of repository.Reward
type MockRewardRepo struct {
	mock.Mock
}

func (m *MockRewardRepo) Insert(ctx context.Context, reward *domain.RaidReward) (bool, error) {
	args := m.Called(ctx, reward)
	return args.Bool(0), args.Error(1)
}

func (m *MockRewardRepo) GetByRaid(ctx context.Context, raidID int64) ([]domain.RaidReward, error) {
	args := m.Called(ctx, raidID)
	return args.Get(0).([]domain.RaidReward), args.Error(1)
}
