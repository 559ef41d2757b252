package repository

import (
	"context"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
)

// Participant defines the interface for raid-participant persistence.
// The sync core only reads participants; creation happens through the
// explicit join endpoint.
type Participant interface {
	GetByRaid(ctx context.Context, raidID int64) ([]domain.RaidParticipant, error)
	CountByRaid(ctx context.Context, raidID int64) (int, error)

	// Create registers a join. Returns domain.ErrAlreadyJoined when the
	// rider is already in the raid.
	Create(ctx context.Context, participant *domain.RaidParticipant) error
}
