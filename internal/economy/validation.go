package economy

import (
	"errors"
	"fmt"

	"github.com/osse101/FruitClicker_Go/internal/domain"
)

// domainErrors are passed through unchanged. Anything else from the store is internal.
var domainErrors = []error{
	domain.ErrInvalidInput,
	domain.ErrNotFound,
	domain.ErrForbidden,
	domain.ErrInsufficientFunds,
	domain.ErrInsufficientQuantity,
	domain.ErrInsufficientInventory,
	domain.ErrAlreadyResolved,
}

// wrapStore wraps a store error, tagging it ErrInternal unless it already carries a domain kind
func wrapStore(format string, err error) error {
	return fmt.Errorf(format, classify(err))
}

func classify(err error) error {
	for _, known := range domainErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	return errors.Join(domain.ErrInternal, err)
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, domain.ErrInvalidInput)
	}
	if quantity > domain.MaxTransactionQuantity {
		return fmt.Errorf(ErrMsgQuantityExceedsMaxFmt, quantity, domain.MaxTransactionQuantity, domain.ErrInvalidInput)
	}
	return nil
}

func validatePrice(price int) error {
	if price <= 0 {
		return fmt.Errorf(ErrMsgInvalidPriceFmt, price, domain.ErrInvalidInput)
	}
	if price > domain.MaxPricePerUnit {
		return fmt.Errorf(ErrMsgPriceExceedsMaxFmt, price, domain.MaxPricePerUnit, domain.ErrInvalidInput)
	}
	return nil
}

func requireID(name, id string) error {
	if id == "" {
		return fmt.Errorf(ErrMsgMissingIDFmt, name, domain.ErrInvalidInput)
	}
	return nil
}

// lookupItem resolves a catalog item or fails with ErrItemNotFound
func (s *service) lookupItem(itemID string) (domain.CatalogItem, error) {
	item, ok := s.catalog.Item(itemID)
	if !ok {
		return domain.CatalogItem{}, fmt.Errorf(ErrMsgUnknownItemFmt, itemID, domain.ErrItemNotFound)
	}
	return item, nil
}
