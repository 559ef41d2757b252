package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Delivery Log Operations
const (
	ErrMsgFailedToUpsertDeliveryLog = "failed to upsert delivery log"
	ErrMsgFailedToQueryDeliveryLogs = "failed to query delivery logs"
)

// Error Messages - Raid Operations
const (
	ErrMsgFailedToQueryRaids     = "failed to query raids"
	ErrMsgFailedToGetRaid        = "failed to get raid"
	ErrMsgFailedToInsertRaid     = "failed to insert raid"
	ErrMsgFailedToUpdateRaidHP   = "failed to update raid hp"
	ErrMsgFailedToLockRaid       = "failed to lock raid row"
	ErrMsgFailedToStageDamageRow = "failed to stage damage row"
)

// Error Messages - Participant Operations
const (
	ErrMsgFailedToQueryParticipants = "failed to query participants"
	ErrMsgFailedToCountParticipants = "failed to count participants"
	ErrMsgFailedToInsertParticipant = "failed to insert participant"
)

// Error Messages - Damage Ledger Operations
const (
	ErrMsgFailedToQueryDamageLedger  = "failed to query damage ledger"
	ErrMsgFailedToSumDamage          = "failed to sum damage"
	ErrMsgFailedToQueryDamageHistory = "failed to query damage history"
)

// Error Messages - Ranking Operations
const (
	ErrMsgFailedToUpsertRanking = "failed to upsert ranking"
	ErrMsgFailedToQueryRankings = "failed to query rankings"
)

// Error Messages - Reward Operations
const (
	ErrMsgFailedToInsertReward = "failed to insert reward"
	ErrMsgFailedToQueryRewards = "failed to query rewards"
)
