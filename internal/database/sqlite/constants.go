package sqlite

// Driver and connection settings
const (
	driverName = "sqlite3"

	// dsnParams makes BEGIN take the write lock up front, so two processes
	// sharing the file wait on busy_timeout instead of failing on lock upgrade.
	// Foreign keys are also set here so a reconnected handle keeps them.
	dsnParams = "_txlock=immediate&_foreign_keys=on"
)

// Schema version tracking:
// 1 - Initial ledger schema
// 2 - players.last_produced_at
const currentSchemaVersion = 2

// schemaUpgrades[v] moves a version v file to v+1
var schemaUpgrades = map[int]string{
	1: `ALTER TABLE players ADD COLUMN last_produced_at INTEGER`,
}

// Error Messages
const (
	ErrMsgFailedToOpen              = "failed to open database"
	ErrMsgFailedToConnect           = "failed to connect to database"
	ErrMsgFailedToApplyPragmas      = "failed to apply pragmas"
	ErrMsgFailedToApplySchema       = "failed to apply schema"
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToInsertPlayer      = "failed to insert player"
	ErrMsgFailedToGetPlayer         = "failed to get player"
	ErrMsgFailedToUpdateBalance     = "failed to update balance"
	ErrMsgFailedToRecordCollected   = "failed to record collected items"
	ErrMsgFailedToAdvanceProduction = "failed to advance production clock"
	ErrMsgFailedToGetInventory      = "failed to get inventory"
	ErrMsgFailedToCreditHolding     = "failed to credit holding"
	ErrMsgFailedToDebitHolding      = "failed to debit holding"
	ErrMsgFailedToPurgeEmptyItem    = "failed to delete empty holding"
	ErrMsgFailedToInsertListing     = "failed to insert listing"
	ErrMsgFailedToDeleteListing     = "failed to delete listing"
	ErrMsgFailedToQueryListings     = "failed to query listings"
	ErrMsgFailedToInsertTrade       = "failed to insert trade offer"
	ErrMsgFailedToGetTrade          = "failed to get trade offer"
	ErrMsgFailedToResolveTrade      = "failed to resolve trade offer"
	ErrMsgFailedToQueryTrades       = "failed to query trade offers"
	ErrMsgFailedToCreditAutoclicker = "failed to credit autoclicker"
	ErrMsgFailedToQueryAutoclickers = "failed to query autoclickers"
	ErrMsgFailedToQueryOwners       = "failed to query autoclicker owners"
	ErrMsgFailedToExport            = "failed to export player"
	ErrMsgFailedToImport            = "failed to import player"
	ErrMsgFailedToReset             = "failed to reset player"
)
