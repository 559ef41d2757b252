// Package ingest validates raw delivery-log rows and lands them in the store.
package ingest

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/logger"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
	"github.com/baedalhero/RaidSync_Go/internal/source"
)

// Result reports how a feed ingestion went. Failed rows are logged and
// counted; they never stop the run.
type Result struct {
	Synced  int
	Skipped int
	Failed  int
}

// Service defines delivery-log ingestion
type Service interface {
	// IngestAll validates and upserts every record in the feed.
	IngestAll(ctx context.Context, records []source.Record) (Result, error)
}

type service struct {
	logRepo repository.DeliveryLog
}

// NewService creates a new ingest service
func NewService(logRepo repository.DeliveryLog) Service {
	return &service{logRepo: logRepo}
}

// IngestAll processes records one by one in feed order.
func (s *service) IngestAll(ctx context.Context, records []source.Record) (Result, error) {
	log := logger.FromContext(ctx)

	var result Result
	for _, record := range records {
		// Trailing spreadsheet rows come through empty; not an error.
		if record.RiderID == "" && record.Date == "" {
			result.Skipped++
			continue
		}

		entry, err := parseRecord(record)
		if err != nil {
			log.Warn("Skipping invalid delivery log row",
				"row", record.Row, "riderID", record.RiderID, "date", record.Date, "error", err)
			result.Failed++
			continue
		}

		if err := s.logRepo.Upsert(ctx, entry); err != nil {
			log.Error("Failed to upsert delivery log",
				"row", record.Row, "riderID", entry.RiderID, "date", record.Date, "error", err)
			result.Failed++
			continue
		}
		result.Synced++
	}

	log.Info("Delivery log ingestion finished",
		"synced", result.Synced, "skipped", result.Skipped, "failed", result.Failed)
	return result, nil
}

// parseRecord validates a raw row and coerces it into a DeliveryLog.
// Validation order: rider id, date, count. Booleans are lenient and never fail.
func parseRecord(record source.Record) (*domain.DeliveryLog, error) {
	if !domain.ValidRiderID(record.RiderID) {
		return nil, domain.ErrInvalidRiderID
	}

	date, err := parseDate(record.Date)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	count, err := strconv.Atoi(record.Count)
	if err != nil || count < 0 {
		return nil, domain.ErrInvalidCount
	}

	return &domain.DeliveryLog{
		RiderID:       record.RiderID,
		DeliveryDate:  date,
		DeliveryCount: count,
		IsRainy:       parseBool(record.IsRainy),
		HasSurge:      parseBool(record.HasSurge),
		District:      record.District,
	}, nil
}

// parseDate accepts the canonical ISO date, or any RFC3339 timestamp which
// is then truncated to its date.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(domain.DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// parseBool treats true/yes/1/o (case-insensitive) as true and anything
// else, including the empty string, as false.
func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1", "o":
		return true
	}
	return false
}
