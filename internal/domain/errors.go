package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Ingestion errors (row-level, recovered)
	ErrMsgInvalidRiderID = "invalid rider id"
	ErrMsgInvalidDate    = "invalid delivery date"
	ErrMsgInvalidCount   = "invalid delivery count"

	// Raid errors
	ErrMsgRaidNotFound  = "raid not found"
	ErrMsgRaidNotActive = "raid is not active"
	ErrMsgAlreadyJoined = "rider already joined this raid"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Ingestion errors
	ErrInvalidRiderID = errors.New(ErrMsgInvalidRiderID)
	ErrInvalidDate    = errors.New(ErrMsgInvalidDate)
	ErrInvalidCount   = errors.New(ErrMsgInvalidCount)

	// Raid errors
	ErrRaidNotFound  = errors.New(ErrMsgRaidNotFound)
	ErrRaidNotActive = errors.New(ErrMsgRaidNotActive)
	ErrAlreadyJoined = errors.New(ErrMsgAlreadyJoined)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
