package repository

import (
	"context"
	"time"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
)

// DeliveryLog defines the interface for delivery-log persistence
type DeliveryLog interface {
	// Upsert writes one log keyed by (rider_id, delivery_date), fully
	// replacing any prior row for that key.
	Upsert(ctx context.Context, log *domain.DeliveryLog) error

	// GetForRaidWindow returns logs for the given riders within a district
	// and an inclusive date range.
	GetForRaidWindow(ctx context.Context, riderIDs []string, district string, start, end time.Time) ([]domain.DeliveryLog, error)
}
