// Package source provides delivery-log row feeds for the sync engine.
// Rows come out as raw strings; validation and type coercion belong to the
// ingestor.
package source

import "context"

// Record is one raw delivery-log row as exported from the ops spreadsheet.
// All fields are uninterpreted strings; Row is the 1-based position in the
// feed (header included) for error reporting.
type Record struct {
	RiderID  string
	Date     string
	Count    string
	IsRainy  string
	HasSurge string
	District string
	Row      int
}

// Source yields raw delivery-log records.
type Source interface {
	// Fetch reads the full feed. A fetch failure aborts the sync run;
	// malformed individual rows are the ingestor's concern, not the source's.
	Fetch(ctx context.Context) ([]Record, error)
}
