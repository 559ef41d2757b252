package ingest

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
)

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
