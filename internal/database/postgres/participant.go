package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
)

type participantRepository struct {
	db *pgxpool.Pool
}

// NewParticipantRepository creates a new PostgreSQL raid participant repository
func NewParticipantRepository(db *pgxpool.Pool) repository.Participant {
	return &participantRepository{db: db}
}

// GetByRaid retrieves all participants of a raid in join order.
func (r *participantRepository) GetByRaid(ctx context.Context, raidID int64) ([]domain.RaidParticipant, error) {
	query := `
		SELECT id, raid_id, rider_id, rider_name, joined_at
		FROM raid_participants
		WHERE raid_id = $1
		ORDER BY joined_at, id
	`

	rows, err := r.db.Query(ctx, query, raidID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryParticipants, err)
	}
	defer rows.Close()

	var participants []domain.RaidParticipant
	for rows.Next() {
		var p domain.RaidParticipant
		if err := rows.Scan(&p.ID, &p.RaidID, &p.RiderID, &p.RiderName, &p.JoinedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryParticipants, err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryParticipants, err)
	}

	return participants, nil
}

// CountByRaid returns the number of riders who joined a raid.
func (r *participantRepository) CountByRaid(ctx context.Context, raidID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM raid_participants WHERE raid_id = $1`,
		raidID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountParticipants, err)
	}
	return count, nil
}

// Create registers a rider's join, populating participant.ID and JoinedAt.
// The unique constraint on (raid_id, rider_id) surfaces as ErrAlreadyJoined.
func (r *participantRepository) Create(ctx context.Context, participant *domain.RaidParticipant) error {
	query := `
		INSERT INTO raid_participants (raid_id, rider_id, rider_name)
		VALUES ($1, $2, $3)
		RETURNING id, joined_at
	`

	err := r.db.QueryRow(ctx, query,
		participant.RaidID, participant.RiderID, participant.RiderName,
	).Scan(&participant.ID, &participant.JoinedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyJoined
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertParticipant, err)
	}
	return nil
}
