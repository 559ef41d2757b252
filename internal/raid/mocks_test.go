package raid

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
)

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

func (m *MockRaidRepo) CreateRaid(ctx context.Context, raid *domain.BossRaid) error {
	args := m.Called(ctx, raid)
	return args.Error(0)
}

func (m *MockRaidRepo) ApplyDamage(ctx context.Context, raidID int64, entries []domain.RaidDamage, hpDelta int) (*repository.DamageApplied, error) {
	args := m.Called(ctx, raidID, entries, hpDelta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DamageApplied), args.Error(1)
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

// MockDeliveryLogRepo is a mock implementation of repository.DeliveryLog
type MockDeliveryLogRepo struct {
	mock.Mock
}

func (m *MockDeliveryLogRepo) Upsert(ctx context.Context, log *domain.DeliveryLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockDeliveryLogRepo) GetForRaidWindow(ctx context.Context, riderIDs []string, district string, start, end time.Time) ([]domain.DeliveryLog, error) {
	args := m.Called(ctx, riderIDs, district, start, end)
	return args.Get(0).([]domain.DeliveryLog), args.Error(1)
}

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
