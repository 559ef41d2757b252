// Package damage implements the pure scoring formula that converts delivery
// activity into boss damage. It performs no I/O and never errors; input
// validation is the ingestor's job.
package damage

import "math"

// BaseDamagePerDelivery is the damage dealt by a single completed delivery
// before any multiplier applies.
const BaseDamagePerDelivery = 10

// WeatherBonusMultiplier applies when the day was rainy or surged. Rain and
// surge do not stack; either condition alone gives the same 2x as both.
const WeatherBonusMultiplier = 2.0

// Result is the breakdown of one day's damage for one rider.
// BonusMultiplier is the effective multiplier (weather x raid buff), which is
// what gets persisted alongside the ledger row.
type Result struct {
	BaseDamage      int
	BonusMultiplier float64
	TotalDamage     int
}

// Compute derives damage from a day's delivery count, the day's weather
// conditions, and the raid-wide buff multiplier.
//
// total = floor(count * 10 * weather * buff), always a non-negative integer.
// Deterministic and monotonically non-decreasing in deliveryCount.
func Compute(deliveryCount int, isRainy, hasSurge bool, buffMultiplier float64) Result {
	baseDamage := deliveryCount * BaseDamagePerDelivery

	bonusMultiplier := 1.0
	if isRainy || hasSurge {
		bonusMultiplier = WeatherBonusMultiplier
	}

	effectiveMultiplier := bonusMultiplier * buffMultiplier

	return Result{
		BaseDamage:      baseDamage,
		BonusMultiplier: effectiveMultiplier,
		TotalDamage:     int(math.Floor(float64(baseDamage) * effectiveMultiplier)),
	}
}
