package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
)

type deliveryLogRepository struct {
	db *pgxpool.Pool
}

// NewDeliveryLogRepository creates a new PostgreSQL delivery log repository
func NewDeliveryLogRepository(db *pgxpool.Pool) repository.DeliveryLog {
	return &deliveryLogRepository{db: db}
}

// Upsert writes one delivery log keyed by (rider_id, delivery_date).
// A rerun with corrected figures replaces the previous row wholesale.
func (r *deliveryLogRepository) Upsert(ctx context.Context, log *domain.DeliveryLog) error {
	query := `
		INSERT INTO delivery_logs (rider_id, delivery_date, delivery_count, is_rainy, has_surge, district)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (rider_id, delivery_date) DO UPDATE SET
			delivery_count = EXCLUDED.delivery_count,
			is_rainy = EXCLUDED.is_rainy,
			has_surge = EXCLUDED.has_surge,
			district = EXCLUDED.district,
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query,
		log.RiderID, log.DeliveryDate, log.DeliveryCount, log.IsRainy, log.HasSurge, log.District)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertDeliveryLog, err)
	}
	return nil
}

// GetForRaidWindow retrieves logs for the given riders inside a district and
// an inclusive date range. An empty rider set returns no rows.
func (r *deliveryLogRepository) GetForRaidWindow(ctx context.Context, riderIDs []string, district string, start, end time.Time) ([]domain.DeliveryLog, error) {
	if len(riderIDs) == 0 {
		return []domain.DeliveryLog{}, nil
	}

	query := `
		SELECT id, rider_id, delivery_date, delivery_count, is_rainy, has_surge, district
		FROM delivery_logs
		WHERE rider_id = ANY($1)
		  AND district = $2
		  AND delivery_date >= $3
		  AND delivery_date <= $4
		ORDER BY delivery_date, rider_id
	`

	rows, err := r.db.Query(ctx, query, riderIDs, district, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryDeliveryLogs, err)
	}
	defer rows.Close()

	var logs []domain.DeliveryLog
	for rows.Next() {
		var l domain.DeliveryLog
		if err := rows.Scan(&l.ID, &l.RiderID, &l.DeliveryDate, &l.DeliveryCount, &l.IsRainy, &l.HasSurge, &l.District); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryDeliveryLogs, err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryDeliveryLogs, err)
	}

	return logs, nil
}
