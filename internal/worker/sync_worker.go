package worker

import (
	"context"
	"sync"
	"time"

	"github.com/baedalhero/RaidSync_Go/internal/logger"
	syncsvc "github.com/baedalhero/RaidSync_Go/internal/sync"
)

// kst is the zone raid windows and the sync schedule are defined in.
var kst = time.FixedZone("KST", 9*60*60)

// DailySyncWorker fires one sync run per day at a fixed hour KST.
type DailySyncWorker struct {
	syncService syncsvc.Service
	hour        int
	timer       *time.Timer
	shutdown    chan struct{}
	wg          sync.WaitGroup
	mu          sync.Mutex
}

// NewDailySyncWorker creates a new DailySyncWorker firing at hour (0-23) KST
func NewDailySyncWorker(syncService syncsvc.Service, hour int) *DailySyncWorker {
	return &DailySyncWorker{
		syncService: syncService,
		hour:        hour,
		shutdown:    make(chan struct{}),
	}
}

// Start schedules the first sync
func (w *DailySyncWorker) Start() {
	w.scheduleNext()
}

// scheduleNext calculates the time until the next sync hour and arms the timer
func (w *DailySyncWorker) scheduleNext() {
	duration := timeUntilNextSync(w.hour)
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	// Two-stage scheduling to prevent tight-loop rescheduling on early triggers
	if duration > 1*time.Hour {
		waitDuration := duration - 45*time.Minute
		w.timer = time.AfterFunc(waitDuration, func() {
			w.scheduleNext()
		})
		w.mu.Unlock()

		log.Info(LogMsgSyncStandby, "next_check_at", time.Now().UTC().Add(waitDuration))
		return
	}

	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Jitter protection: if the timer triggered early, reschedule for
		// the remaining time instead of running ahead of the sync hour.
		rem := timeUntilNextSync(w.hour)
		if rem > 10*time.Second && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeSync()
		w.scheduleNext()
	})
	w.mu.Unlock()

	log.Info(LogMsgSyncApproach, "next_sync_at", time.Now().UTC().Add(duration))
}

// executeSync performs the sync run in a tracked goroutine
func (w *DailySyncWorker) executeSync() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgSyncStarting)

		summary, err := w.syncService.Run(ctx)
		if err != nil {
			log.Error(LogMsgSyncFailed, "error", err)
			return
		}

		log.Info(LogMsgSyncCompleted,
			"run_id", summary.RunID,
			"logs_synced", summary.LogsSynced,
			"logs_skipped", summary.LogsSkipped,
			"logs_failed", summary.LogsFailed,
			"raids_processed", len(summary.Raids))
	}()
}

// Shutdown cancels the pending timer and waits for any in-flight sync run
func (w *DailySyncWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down daily sync worker")

	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		log.Info("Cancelled pending daily sync")
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Daily sync worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Daily sync worker shutdown timeout, a sync run may still be in flight")
		return ctx.Err()
	}
}

// timeUntilNextSync calculates the duration until the next sync hour in KST
func timeUntilNextSync(hour int) time.Duration {
	now := time.Now().In(kst)
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, kst)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
