package ranking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
)

// MockDamageRepo is a mock implementation of repository.Damage
type MockDamageRepo struct {
	mock.Mock
}

func (m *MockDamageRepo) GetLedger(ctx context.Context, raidID int64) ([]domain.RaidDamage, error) {
	args := m.Called(ctx, raidID)
	return args.Get(0).([]domain.RaidDamage), args.Error(1)
}

func (m *MockDamageRepo) TotalDamage(ctx context.Context, raidID int64) (int, error) {
	args := m.Called(ctx, raidID)
	return args.Int(0), args.Error(1)
}

func (m *MockDamageRepo) DamageHistory(ctx context.Context, raidID int64) ([]domain.DailyDamage, error) {
	args := m.Called(ctx, raidID)
	return args.Get(0).([]domain.DailyDamage), args.Error(1)
}

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
