package handler

// Generic HTTP error messages for client responses.
// They never carry identifiers or internal error text.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPlayerID       = "Missing X-Player-ID header"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// Operation names used in service failure logs
const (
	OpRegisterPlayer   = "Register player"
	OpGetPlayer        = "Get player"
	OpGetInventory     = "Get inventory"
	OpClick            = "Click"
	OpAutoclickerTick  = "Autoclicker tick"
	OpSellItem         = "Sell item"
	OpListListings     = "List listings"
	OpCreateListing    = "Create listing"
	OpBuyListing       = "Buy listing"
	OpCancelListing    = "Cancel listing"
	OpListAutoclickers = "List autoclickers"
	OpBuyAutoclicker   = "Buy autoclicker"
	OpListTrades       = "List trades"
	OpCreateTrade      = "Create trade"
	OpAcceptTrade      = "Accept trade"
	OpRejectTrade      = "Reject trade"
	OpCancelTrade      = "Cancel trade"
)

// Success messages
const (
	MsgListingCancelled = "Listing cancelled"
	MsgTradeAccepted    = "Trade accepted"
	MsgTradeRejected    = "Trade rejected"
	MsgTradeCancelled   = "Trade cancelled"
)

// Request headers and path parameters
const (
	HeaderPlayerID = "X-Player-ID"
	ParamID        = "id"
)

// Log messages
const (
	LogMsgDecodeFailedFmt  = "Failed to decode %s request"
	LogMsgDecodedFmt       = "%s request decoded"
	LogMsgValidationFailed = "Request validation failed"
	LogMsgMissingPlayerID  = "Missing player id header"
	LogMsgServiceFailedFmt = "%s failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgReadinessFailed  = "Readiness check failed"
)
