package worker

// Log messages
const (
	LogMsgSyncStandby   = "Daily sync in standby"
	LogMsgSyncApproach  = "Daily sync scheduled"
	LogMsgSyncStarting  = "Starting scheduled daily sync"
	LogMsgSyncCompleted = "Scheduled daily sync completed"
	LogMsgSyncFailed    = "Scheduled daily sync failed"
)
