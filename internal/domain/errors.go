package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound  = "player not found"
	ErrMsgUsernameTaken   = "username already taken"
	ErrMsgInvalidUsername = "username must be between 1 and 32 characters"

	// Catalog errors
	ErrMsgItemNotFound        = "item not found"
	ErrMsgAutoclickerNotFound = "autoclicker not found"

	// Marketplace errors
	ErrMsgListingNotFound   = "listing not found or already sold"
	ErrMsgSelfPurchase      = "cannot buy your own listing"
	ErrMsgNotListingSeller  = "only the seller can cancel a listing"
	ErrMsgInsufficientStock = "insufficient inventory to create listing"

	// Trade errors
	ErrMsgTradeNotFound      = "trade offer not found"
	ErrMsgTradeResolved      = "trade offer already resolved"
	ErrMsgSelfTrade          = "cannot trade with yourself"
	ErrMsgNotTradeReceiver   = "only the receiver can respond to a trade offer"
	ErrMsgNotTradeSender     = "only the sender can cancel a trade offer"
	ErrMsgSenderInsufficient = "sender does not have enough items"
	ErrMsgReceiverShort      = "receiver does not have enough items"

	// Economy errors
	ErrMsgInsufficientFunds    = "insufficient coins"
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Authorization errors
	ErrMsgForbidden = "forbidden"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgInternal = "internal error"
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Not found family. All of them satisfy errors.Is(err, ErrNotFound).
	ErrNotFound            = errors.New("not found")
	ErrPlayerNotFound      = notFound(ErrMsgPlayerNotFound)
	ErrItemNotFound        = notFound(ErrMsgItemNotFound)
	ErrAutoclickerNotFound = notFound(ErrMsgAutoclickerNotFound)
	ErrListingNotFound     = notFound(ErrMsgListingNotFound)
	ErrTradeNotFound       = notFound(ErrMsgTradeNotFound)

	// Authorization errors
	ErrForbidden = errors.New(ErrMsgForbidden)

	// Resource availability errors
	ErrInsufficientFunds     = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientQuantity  = errors.New(ErrMsgInsufficientQuantity)
	ErrInsufficientInventory = errors.New(ErrMsgInsufficientStock)

	// Race outcome errors
	ErrAlreadyResolved = errors.New(ErrMsgTradeResolved)
	ErrUsernameTaken   = errors.New(ErrMsgUsernameTaken)

	// Store failures that are not part of the domain taxonomy
	ErrInternal = errors.New(ErrMsgInternal)
	ErrTxClosed = errors.New(ErrMsgTxClosed)
)

// kindError is a named error that also matches a broader kind via errors.Is.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

func notFound(msg string) error {
	return &kindError{msg: msg, kind: ErrNotFound}
}
