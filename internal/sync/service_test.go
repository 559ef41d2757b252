package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/ingest"
	"github.com/baedalhero/RaidSync_Go/internal/raid"
	"github.com/baedalhero/RaidSync_Go/internal/ranking"
	"github.com/baedalhero/RaidSync_Go/internal/reward"
	"github.com/baedalhero/RaidSync_Go/internal/source"
)

type fixture struct {
	src         *MockSource
	ingestSvc   *MockIngestService
	raidRepo    *MockRaidRepo
	rankingRepo *MockRankingRepo
	raidSvc     *MockRaidService
	rankingSvc  *MockRankingService
	rewardSvc   *MockRewardService
	notifier    *MockNotifier
	svc         Service
}

func newFixture() *fixture {
	f := &fixture{
		src:         new(MockSource),
		ingestSvc:   new(MockIngestService),
		raidRepo:    new(MockRaidRepo),
		rankingRepo: new(MockRankingRepo),
		raidSvc:     new(MockRaidService),
		rankingSvc:  new(MockRankingService),
		rewardSvc:   new(MockRewardService),
		notifier:    new(MockNotifier),
	}
	f.svc = NewService(f.src, f.ingestSvc, f.raidRepo, f.rankingRepo,
		f.raidSvc, f.rankingSvc, f.rewardSvc, nil, f.notifier)
	return f
}

func activeRaid(id int64, district string) domain.BossRaid {
	return domain.BossRaid{
		ID:        id,
		District:  district,
		BossName:  "Flame Tyrant",
		BossType:  domain.BossTypeFire,
		MaxHP:     1000,
		CurrentHP: 800,
		Status:    domain.RaidStatusActive,
	}
}

func completedRaid(id int64, district string) domain.BossRaid {
	r := activeRaid(id, district)
	r.CurrentHP = 0
	r.Status = domain.RaidStatusCompleted
	return r
}

func TestRun_HappyPathNoCompletion(t *testing.T) {
	f := newFixture()

	feed := []source.Record{{RiderID: "BC123456", Date: "2026-08-10", Count: "5", Row: 2}}
	f.src.On("Fetch", mock.Anything).Return(feed, nil)
	f.ingestSvc.On("IngestAll", mock.Anything, feed).Return(ingest.Result{Synced: 1}, nil)
	f.raidRepo.On("GetRaidsByStatus", mock.Anything, domain.RaidStatusActive, domain.RaidStatusCompleted).
		Return([]domain.BossRaid{activeRaid(1, "Gangnam")}, nil)
	f.raidSvc.On("Accumulate", mock.Anything, mock.Anything).
		Return(&raid.Outcome{Participants: 1, TotalDamageDealt: 100, NewHP: 700}, nil)
	f.rankingSvc.On("Rebuild", mock.Anything, int64(1)).
		Return(&ranking.Outcome{RankedRiders: 1}, nil)

	summary, err := f.svc.Run(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 1, summary.LogsSynced)
	require.Len(t, summary.Raids, 1)
	assert.Equal(t, 100, summary.Raids[0].TotalDamageDealt)
	assert.Equal(t, 700, summary.Raids[0].NewHP)
	assert.False(t, summary.Raids[0].Completed)
	assert.Empty(t, summary.CompletedRaids())
	f.rewardSvc.AssertNotCalled(t, "Allocate", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "AnnounceCompletion", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_CompletionTriggersRewardsAndAnnouncement(t *testing.T) {
	f := newFixture()

	f.src.On("Fetch", mock.Anything).Return([]source.Record{}, nil)
	f.ingestSvc.On("IngestAll", mock.Anything, mock.Anything).Return(ingest.Result{}, nil)
	f.raidRepo.On("GetRaidsByStatus", mock.Anything, domain.RaidStatusActive, domain.RaidStatusCompleted).
		Return([]domain.BossRaid{activeRaid(1, "Gangnam")}, nil)
	f.raidSvc.On("Accumulate", mock.Anything, mock.Anything).
		Return(&raid.Outcome{Participants: 2, TotalDamageDealt: 800, NewHP: 0, Completed: true}, nil)
	f.rankingSvc.On("Rebuild", mock.Anything, int64(1)).
		Return(&ranking.Outcome{RankedRiders: 2}, nil)
	f.rewardSvc.On("Allocate", mock.Anything, int64(1)).
		Return(&reward.Outcome{RewardsIssued: 2}, nil)

	top := []domain.RaidRanking{{RaidID: 1, RiderID: "BC123456", Rank: 1}}
	f.rankingRepo.On("GetByRaid", mock.Anything, int64(1), reward.TopRewardRanks).Return(top, nil)
	f.notifier.On("AnnounceCompletion", mock.Anything, mock.Anything, top).Return()

	summary, err := f.svc.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, summary.Raids, 1)
	assert.True(t, summary.Raids[0].Completed)
	assert.Equal(t, 2, summary.Raids[0].RewardsIssued)
	require.Len(t, summary.CompletedRaids(), 1)
	f.notifier.AssertExpectations(t)
}

func TestRun_CompletedRaidStillGetsReRanked(t *testing.T) {
	f := newFixture()

	f.src.On("Fetch", mock.Anything).Return([]source.Record{}, nil)
	f.ingestSvc.On("IngestAll", mock.Anything, mock.Anything).Return(ingest.Result{}, nil)
	f.raidRepo.On("GetRaidsByStatus", mock.Anything, domain.RaidStatusActive, domain.RaidStatusCompleted).
		Return([]domain.BossRaid{completedRaid(1, "Gangnam")}, nil)
	f.rankingSvc.On("Rebuild", mock.Anything, int64(1)).
		Return(&ranking.Outcome{RankedRiders: 3}, nil)

	summary, err := f.svc.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, summary.Raids, 1)
	assert.Equal(t, 3, summary.Raids[0].RankedRiders)
	assert.False(t, summary.Raids[0].Completed)
	f.rankingSvc.AssertExpectations(t)
	f.raidSvc.AssertNotCalled(t, "Accumulate", mock.Anything, mock.Anything)
	f.rewardSvc.AssertNotCalled(t, "Allocate", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "AnnounceCompletion", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_FeedFailureAbortsRun(t *testing.T) {
	f := newFixture()
	f.src.On("Fetch", mock.Anything).Return([]source.Record(nil), errors.New("sheet export missing"))

	_, err := f.svc.Run(context.Background())

	assert.Error(t, err)
	f.ingestSvc.AssertNotCalled(t, "IngestAll", mock.Anything, mock.Anything)
}

func TestRun_RaidFailureIsIsolated(t *testing.T) {
	f := newFixture()

	f.src.On("Fetch", mock.Anything).Return([]source.Record{}, nil)
	f.ingestSvc.On("IngestAll", mock.Anything, mock.Anything).Return(ingest.Result{}, nil)
	f.raidRepo.On("GetRaidsByStatus", mock.Anything, domain.RaidStatusActive, domain.RaidStatusCompleted).
		Return([]domain.BossRaid{activeRaid(1, "Gangnam"), activeRaid(2, "Mapo")}, nil)

	f.raidSvc.On("Accumulate", mock.Anything, mock.MatchedBy(func(r domain.BossRaid) bool { return r.ID == 1 })).
		Return(nil, errors.New("connection lost"))
	f.raidSvc.On("Accumulate", mock.Anything, mock.MatchedBy(func(r domain.BossRaid) bool { return r.ID == 2 })).
		Return(&raid.Outcome{Participants: 1, TotalDamageDealt: 50, NewHP: 750}, nil)
	f.rankingSvc.On("Rebuild", mock.Anything, int64(2)).Return(&ranking.Outcome{RankedRiders: 1}, nil)

	summary, err := f.svc.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, summary.Raids, 2)
	assert.Error(t, summary.Raids[0].Err)
	assert.NoError(t, summary.Raids[1].Err)
	assert.Equal(t, 50, summary.Raids[1].TotalDamageDealt)
}

func TestRun_RankingFailureSkipsRewards(t *testing.T) {
	f := newFixture()

	f.src.On("Fetch", mock.Anything).Return([]source.Record{}, nil)
	f.ingestSvc.On("IngestAll", mock.Anything, mock.Anything).Return(ingest.Result{}, nil)
	f.raidRepo.On("GetRaidsByStatus", mock.Anything, domain.RaidStatusActive, domain.RaidStatusCompleted).
		Return([]domain.BossRaid{activeRaid(1, "Gangnam")}, nil)
	f.raidSvc.On("Accumulate", mock.Anything, mock.Anything).
		Return(&raid.Outcome{TotalDamageDealt: 800, NewHP: 0, Completed: true}, nil)
	f.rankingSvc.On("Rebuild", mock.Anything, int64(1)).Return(nil, errors.New("connection lost"))

	summary, err := f.svc.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, summary.Raids, 1)
	assert.Error(t, summary.Raids[0].Err)
	f.rewardSvc.AssertNotCalled(t, "Allocate", mock.Anything, mock.Anything)
}

func TestRun_NoActiveRaids(t *testing.T) {
	f := newFixture()

	f.src.On("Fetch", mock.Anything).Return([]source.Record{}, nil)
	f.ingestSvc.On("IngestAll", mock.Anything, mock.Anything).Return(ingest.Result{Skipped: 3}, nil)
	f.raidRepo.On("GetRaidsByStatus", mock.Anything, domain.RaidStatusActive, domain.RaidStatusCompleted).
		Return([]domain.BossRaid{}, nil)

	summary, err := f.svc.Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, summary.Raids)
	assert.Equal(t, 3, summary.LogsSkipped)
}
