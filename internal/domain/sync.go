package domain

import "time"

// RaidOutcome is the per-raid result of one sync run.
type RaidOutcome struct {
	RaidID           int64
	District         string
	BossName         string
	TotalDamageDealt int  // HP delta applied this run, not the ledger total
	NewHP            int
	Completed        bool // true only when THIS run drove HP to zero
	RankedRiders     int
	RewardsIssued    int
	StaleRankings    []string // riders ranked but absent from the ledger (advisory)
	Err              error
}

// RunSummary is the human-reconcilable report of one full sync run.
type RunSummary struct {
	RunID       string
	StartedAt   time.Time
	FinishedAt  time.Time
	LogsSynced  int
	LogsSkipped int
	LogsFailed  int
	Raids       []RaidOutcome
}

// CompletedRaids returns the raids whose boss fell during this run.
func (s RunSummary) CompletedRaids() []RaidOutcome {
	var done []RaidOutcome
	for _, r := range s.Raids {
		if r.Completed {
			done = append(done, r)
		}
	}
	return done
}
