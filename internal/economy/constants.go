package economy

// Wrapped store failure messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetPlayerFailed         = "failed to get player: %w"
	ErrMsgCreditHoldingFailed     = "failed to credit holding: %w"
	ErrMsgDebitHoldingFailed      = "failed to debit holding: %w"
	ErrMsgCreditBalanceFailed     = "failed to credit balance: %w"
	ErrMsgDebitBalanceFailed      = "failed to debit balance: %w"
	ErrMsgRecordCollectedFailed   = "failed to record collected items: %w"
	ErrMsgInsertListingFailed     = "failed to insert listing: %w"
	ErrMsgDeleteListingFailed     = "failed to claim listing: %w"
	ErrMsgInsertTradeFailed       = "failed to insert trade offer: %w"
	ErrMsgGetTradeFailed          = "failed to get trade offer: %w"
	ErrMsgResolveTradeFailed      = "failed to resolve trade offer: %w"
	ErrMsgCreditAutoclickerFailed = "failed to credit autoclicker: %w"
	ErrMsgGetAutoclickersFailed   = "failed to get autoclickers: %w"
	ErrMsgAdvanceProductionFailed = "failed to advance production clock: %w"
	ErrMsgReadModelFailed         = "failed to read %s: %w"
)

// Formatted validation messages
const (
	ErrMsgInvalidQuantityFmt    = "invalid quantity %d: %w"
	ErrMsgQuantityExceedsMaxFmt = "quantity %d exceeds maximum allowed (%d): %w"
	ErrMsgInvalidPriceFmt       = "invalid price %d: %w"
	ErrMsgPriceExceedsMaxFmt    = "price %d exceeds maximum allowed (%d): %w"
	ErrMsgUnknownItemFmt        = "unknown item %q: %w"
	ErrMsgUnknownAutoclickerFmt = "unknown autoclicker %q: %w"
	ErrMsgMissingIDFmt          = "%s is required: %w"
)

// Wrapped domain failures
const (
	ErrMsgSelfTradeFmt       = "%s: %w"
	ErrMsgSelfPurchaseFmt    = "%s: %w"
	ErrMsgNotSellerFmt       = "%s: %w"
	ErrMsgNotReceiverFmt     = "%s: %w"
	ErrMsgNotSenderFmt       = "%s: %w"
	ErrMsgTradeSideShortFmt  = "%s: %w"
	ErrMsgSellShortFmt       = "cannot sell %d %s: %w"
	ErrMsgListShortFmt       = "cannot list %d %s: %w"
	ErrMsgBuyListingShortFmt = "listing costs %d: %w"
	ErrMsgAutoclickerCostFmt = "autoclicker costs %d: %w"
)

// Service operation log messages
const (
	LogMsgCreditItemCalled          = "CreditItem called"
	LogMsgCollectCalled             = "Collect called"
	LogMsgItemCollected             = "Item collected"
	LogMsgProcessAutoclickersCalled = "ProcessAutoclickers called"
	LogMsgAutoclickersProduced      = "Autoclickers produced items"
	LogMsgClicksCapped              = "Autoclicker clicks capped for tick"
	LogMsgBacklogForfeited          = "Autoclicker backlog beyond limit forfeited"
	LogMsgProductionClaimed         = "Production interval already claimed"
	LogMsgSellItemCalled            = "SellItem called"
	LogMsgItemSold                  = "Item sold"
	LogMsgCreateListingCalled       = "CreateListing called"
	LogMsgListingCreated            = "Listing created"
	LogMsgCancelListingCalled       = "CancelListing called"
	LogMsgListingCancelled          = "Listing cancelled"
	LogMsgBuyListingCalled          = "BuyListing called"
	LogMsgListingBought             = "Listing bought"
	LogMsgPurchaseAutoclickerCalled = "PurchaseAutoclicker called"
	LogMsgAutoclickerPurchased      = "Autoclicker purchased"
	LogMsgCreateTradeCalled         = "CreateTradeOffer called"
	LogMsgTradeCreated              = "Trade offer created"
	LogMsgRespondTradeCalled        = "Trade response called"
	LogMsgTradeResolved             = "Trade offer resolved"
	LogMsgPublishFailed             = "Failed to publish event"
	LogMsgStoreFailure              = "Ledger store failure"
)

// Collection sources
const (
	SourceClick       = "click"
	SourceAutoclicker = "autoclicker"
)
