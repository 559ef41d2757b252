package sync

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/ingest"
	"github.com/baedalhero/RaidSync_Go/internal/raid"
	"github.com/baedalhero/RaidSync_Go/internal/ranking"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
	"github.com/baedalhero/RaidSync_Go/internal/reward"
	"github.com/baedalhero/RaidSync_Go/internal/source"
)

// MockSource is a mock implementation of source.Source
type MockSource struct {
	mock.Mock
}

func (m *MockSource) Fetch(ctx context.Context) ([]source.Record, error) {
	args := m.Called(ctx)
	return args.Get(0).([]source.Record), args.Error(1)
}

// MockIngestService is a mock implementation of ingest.Service
type MockIngestService struct {
	mock.Mock
}

func (m *MockIngestService) IngestAll(ctx context.Context, records []source.Record) (ingest.Result, error) {
	args := m.Called(ctx, records)
	return args.Get(0).(ingest.Result), args.Error(1)
}

// MockRaidService is a mock implementation of raid.Service
type MockRaidService struct {
	mock.Mock
}

func (m *MockRaidService) Accumulate(ctx context.Context, r domain.BossRaid) (*raid.Outcome, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*raid.Outcome), args.Error(1)
}

// MockRankingService is a mock implementation of ranking.Service
type MockRankingService struct {
	mock.Mock
}

func (m *MockRankingService) Rebuild(ctx context.Context, raidID int64) (*ranking.Outcome, error) {
	args := m.Called(ctx, raidID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ranking.Outcome), args.Error(1)
}

// MockRewardService is a mock implementation of reward.Service
type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) Allocate(ctx context.Context, raidID int64) (*reward.Outcome, error) {
	args := m.Called(ctx, raidID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reward.Outcome), args.Error(1)
}

// MockRaidRepo is a mock implementation of repository.Raid
type MockRaidRepo struct {
	mock.Mock
}

func (m *MockRaidRepo) GetRaidsByStatus(ctx context.Context, statuses ...domain.RaidStatus) ([]domain.BossRaid, error) {
	callArgs := []interface{}{ctx}
	for _, s := range statuses {
		callArgs = append(callArgs, s)
	}
	args := m.Called(callArgs...)
	return args.Get(0).([]domain.BossRaid), args.Error(1)
}

func (m *MockRaidRepo) GetRaidByID(ctx context.Context, raidID int64) (*domain.BossRaid, error) {
	args := m.Called(ctx, raidID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BossRaid), args.Error(1)
}

func (m *MockRaidRepo) CreateRaid(ctx context.Context, r *domain.BossRaid) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRaidRepo) ApplyDamage(ctx context.Context, raidID int64, entries []domain.RaidDamage, hpDelta int) (*repository.DamageApplied, error) {
	args := m.Called(ctx, raidID, entries, hpDelta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DamageApplied), args.Error(1)
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

// MockNotifier is a mock implementation of notify.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) AnnounceCompletion(ctx context.Context, r domain.BossRaid, topRiders []domain.RaidRanking) {
	m.Called(ctx, r, topRiders)
}
