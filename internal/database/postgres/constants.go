package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced player does not exist
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Player Operations
const (
	ErrMsgFailedToInsertPlayer      = "failed to insert player"
	ErrMsgFailedToGetPlayer         = "failed to get player"
	ErrMsgFailedToUpdateBalance     = "failed to update balance"
	ErrMsgFailedToRecordCollected   = "failed to record collected items"
	ErrMsgFailedToAdvanceProduction = "failed to advance production clock"
)

// Error Messages - Holding Operations
const (
	ErrMsgFailedToGetInventory   = "failed to get inventory"
	ErrMsgFailedToCreditHolding  = "failed to credit holding"
	ErrMsgFailedToDebitHolding   = "failed to debit holding"
	ErrMsgFailedToPurgeEmptyItem = "failed to delete empty holding"
)

// Error Messages - Marketplace Operations
const (
	ErrMsgFailedToInsertListing = "failed to insert listing"
	ErrMsgFailedToDeleteListing = "failed to delete listing"
	ErrMsgFailedToQueryListings = "failed to query listings"
)

// Error Messages - Trade Operations
const (
	ErrMsgFailedToInsertTrade  = "failed to insert trade offer"
	ErrMsgFailedToGetTrade     = "failed to get trade offer"
	ErrMsgFailedToResolveTrade = "failed to resolve trade offer"
	ErrMsgFailedToQueryTrades  = "failed to query trade offers"
)

// Error Messages - Autoclicker Operations
const (
	ErrMsgFailedToCreditAutoclicker  = "failed to credit autoclicker"
	ErrMsgFailedToQueryAutoclickers  = "failed to query autoclickers"
	ErrMsgFailedToQueryClickerOwners = "failed to query autoclicker owners"
)
