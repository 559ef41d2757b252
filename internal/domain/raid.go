package domain

import (
	"math"
	"time"
)

// RaidStatus is the lifecycle state of a boss raid.
// Raids move active -> completed when the boss HP reaches zero.
// The failed state is a recognized terminal value but is never set by the
// sync core (an expired raid is closed out manually).
type RaidStatus string

const (
	RaidStatusActive    RaidStatus = "active"
	RaidStatusCompleted RaidStatus = "completed"
	RaidStatusFailed    RaidStatus = "failed"
)

// BossType is the elemental flavor of a district boss.
type BossType string

const (
	BossTypeFire  BossType = "fire"
	BossTypeWater BossType = "water"
	BossTypeEarth BossType = "earth"
	BossTypeWind  BossType = "wind"
)

// Valid reports whether t is a known boss type.
func (t BossType) Valid() bool {
	switch t {
	case BossTypeFire, BossTypeWater, BossTypeEarth, BossTypeWind:
		return true
	}
	return false
}

// BossRaid is a time-boxed contest over a district.
// CurrentHP is exclusively mutated by the damage accumulator and is
// monotonically non-increasing while the raid is active. MaxHP is immutable
// after creation.
type BossRaid struct {
	ID             int64
	District       string
	BossName       string
	BossType       BossType
	MaxHP          int
	CurrentHP      int
	StartDate      time.Time
	EndDate        time.Time
	Status         RaidStatus
	BuffMultiplier float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HPPercentage returns the remaining HP as a 0-100 value.
func (r BossRaid) HPPercentage() float64 {
	if r.MaxHP == 0 {
		return 0
	}
	return math.Max(0, math.Min(100, float64(r.CurrentHP)/float64(r.MaxHP)*100))
}

// ProgressPercentage returns how much of the boss HP has been depleted, 0-100.
func (r BossRaid) ProgressPercentage() float64 {
	return 100 - r.HPPercentage()
}

// DaysRemaining returns the number of whole days until the raid end date.
// Negative values mean the raid window has passed.
func (r BossRaid) DaysRemaining(now time.Time) int {
	return int(math.Ceil(r.EndDate.Sub(now).Hours() / 24))
}

// RaidParticipant is an opt-in join record. Created only via the explicit
// join action; the sync core treats it as read-only.
type RaidParticipant struct {
	ID        int64
	RaidID    int64
	RiderID   string
	RiderName *string
	JoinedAt  time.Time
}

// RaidDamage is one ledger entry: the damage one rider dealt on one day.
// Unique per (RaidID, RiderID, DamageDate) - the idempotency key. Reruns
// overwrite the row rather than double-counting.
type RaidDamage struct {
	RaidID          int64
	RiderID         string
	DamageDate      time.Time
	BaseDamage      int
	BonusMultiplier float64
	TotalDamage     int
}

// DailyDamage is an aggregated view of ledger damage for a single day.
type DailyDamage struct {
	Date        time.Time
	TotalDamage int
}

// RaidRanking is the derived standing of one rider within a raid.
// Fully recomputed from the damage ledger each run; ties break by rider id
// ascending so rank assignment is deterministic across runs.
type RaidRanking struct {
	RaidID      int64
	RiderID     string
	TotalDamage int
	Rank        int
	LastUpdated time.Time
}
