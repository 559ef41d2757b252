package database

import "time"

// Pool defaults. The nightly sync holds at most a handful of connections
// (one per raid transaction plus the feed upserts) and the read API is
// cache-fronted, so ten connections is plenty.
const (
	DefaultMinConnections = 2
	DefaultMaxConnections = 10

	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = 30 * time.Minute

	// connectTimeout bounds the startup ping so a wrong DB host fails
	// fast instead of hanging the binary.
	connectTimeout = 5 * time.Second
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
)
