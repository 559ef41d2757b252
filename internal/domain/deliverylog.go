package domain

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the canonical ISO date format used across the sync pipeline.
const DateLayout = "2006-01-02"

var riderIDPattern = regexp.MustCompile(`^BC\d{6}$`)

// ValidRiderID reports whether id matches the rider identifier format
// (BC followed by exactly 6 digits).
func ValidRiderID(id string) bool {
	return riderIDPattern.MatchString(id)
}

// MaskRiderID hides the tail of a rider id for public display (BC123456 -> BC12****).
func MaskRiderID(riderID string) string {
	if len(riderID) < 6 {
		return riderID
	}
	return riderID[:4] + strings.Repeat("*", len(riderID)-4)
}

// DeliveryLog is one rider's delivery activity for one calendar day in one district.
// Unique per (RiderID, DeliveryDate); ingestion overwrites in place.
type DeliveryLog struct {
	ID            int64
	RiderID       string
	DeliveryDate  time.Time // date component only, UTC midnight
	DeliveryCount int
	IsRainy       bool
	HasSurge      bool
	District      string
}

// Key returns the natural upsert key of the log.
func (l DeliveryLog) Key() string {
	return l.RiderID + ":" + l.DeliveryDate.Format(DateLayout)
}
