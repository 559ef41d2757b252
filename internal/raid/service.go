// Package raid accumulates delivery damage against active boss raids.
package raid

import (
	"context"
	"fmt"

	"github.com/baedalhero/RaidSync_Go/internal/damage"
	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/logger"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
)

// Outcome is the result of accumulating one raid.
type Outcome struct {
	Participants     int
	TotalDamageDealt int
	NewHP            int
	// Completed is set only when this accumulation drove HP to zero.
	Completed bool
}

// Service defines the damage accumulation business logic
type Service interface {
	// Accumulate scores all delivery logs inside the raid window against
	// the boss and deducts HP. Safe to rerun: already-scored damage never
	// deducts twice.
	Accumulate(ctx context.Context, raid domain.BossRaid) (*Outcome, error)
}

type service struct {
	raidRepo        repository.Raid
	participantRepo repository.Participant
	logRepo         repository.DeliveryLog
	damageRepo      repository.Damage
}

// NewService creates a new accumulator service
func NewService(raidRepo repository.Raid, participantRepo repository.Participant, logRepo repository.DeliveryLog, damageRepo repository.Damage) Service {
	return &service{
		raidRepo:        raidRepo,
		participantRepo: participantRepo,
		logRepo:         logRepo,
		damageRepo:      damageRepo,
	}
}

func ledgerKey(riderID string, date string) string {
	return riderID + ":" + date
}

// Accumulate processes one raid.
func (s *service) Accumulate(ctx context.Context, raid domain.BossRaid) (*Outcome, error) {
	log := logger.FromContext(ctx).With("raidID", raid.ID, "district", raid.District)

	participants, err := s.participantRepo.GetByRaid(ctx, raid.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	if len(participants) == 0 {
		log.Info("Raid has no participants, skipping")
		return &Outcome{NewHP: raid.CurrentHP}, nil
	}

	riderIDs := make([]string, len(participants))
	for i, p := range participants {
		riderIDs[i] = p.RiderID
	}

	logs, err := s.logRepo.GetForRaidWindow(ctx, riderIDs, raid.District, raid.StartDate, raid.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load delivery logs: %w", err)
	}

	ledger, err := s.damageRepo.GetLedger(ctx, raid.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load damage ledger: %w", err)
	}
	scored := make(map[string]int, len(ledger))
	for _, d := range ledger {
		scored[ledgerKey(d.RiderID, d.DamageDate.Format(domain.DateLayout))] = d.TotalDamage
	}

	outcome := &Outcome{Participants: len(participants), NewHP: raid.CurrentHP}
	if len(logs) == 0 {
		log.Info("No delivery logs in raid window")
		return outcome, nil
	}

	entries := make([]domain.RaidDamage, 0, len(logs))
	hpDelta := 0
	for _, l := range logs {
		result := damage.Compute(l.DeliveryCount, l.IsRainy, l.HasSurge, raid.BuffMultiplier)
		entries = append(entries, domain.RaidDamage{
			RaidID:          raid.ID,
			RiderID:         l.RiderID,
			DamageDate:      l.DeliveryDate,
			BaseDamage:      result.BaseDamage,
			BonusMultiplier: result.BonusMultiplier,
			TotalDamage:     result.TotalDamage,
		})

		// One-way ratchet: a corrected log overwrites its ledger row but a
		// lowered total never refunds boss HP.
		old := scored[ledgerKey(l.RiderID, l.DeliveryDate.Format(domain.DateLayout))]
		if result.TotalDamage > old {
			hpDelta += result.TotalDamage - old
		}
	}

	applied, err := s.raidRepo.ApplyDamage(ctx, raid.ID, entries, hpDelta)
	if err != nil {
		return nil, fmt.Errorf("failed to apply damage: %w", err)
	}
	if !applied.Applied {
		log.Info("Raid no longer active, damage pass skipped")
		return outcome, nil
	}

	outcome.TotalDamageDealt = hpDelta
	outcome.NewHP = applied.NewHP
	outcome.Completed = applied.Completed

	log.Info("Damage accumulated",
		"entries", len(entries), "damageDealt", hpDelta, "newHP", applied.NewHP, "completed", applied.Completed)
	return outcome, nil
}
