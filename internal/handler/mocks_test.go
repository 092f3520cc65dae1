package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/economy"
)

// MockEconomyService mocks economy.Service
type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) CreditItem(ctx context.Context, playerID, itemID string) (*domain.ItemHolding, error) {
	args := m.Called(ctx, playerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemHolding), args.Error(1)
}

func (m *MockEconomyService) Collect(ctx context.Context, playerID string) (*economy.CollectResult, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.CollectResult), args.Error(1)
}

func (m *MockEconomyService) ProcessAutoclickers(ctx context.Context, playerID string) (*economy.ProductionResult, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.ProductionResult), args.Error(1)
}

func (m *MockEconomyService) SellItem(ctx context.Context, playerID, itemID string, quantity int) (*economy.SellResult, error) {
	args := m.Called(ctx, playerID, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.SellResult), args.Error(1)
}

func (m *MockEconomyService) CreateListing(ctx context.Context, sellerID, itemID string, quantity, pricePerUnit int) (*domain.Listing, error) {
	args := m.Called(ctx, sellerID, itemID, quantity, pricePerUnit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockEconomyService) CancelListing(ctx context.Context, listingID, requesterID string) error {
	return m.Called(ctx, listingID, requesterID).Error(0)
}

func (m *MockEconomyService) BuyListing(ctx context.Context, buyerID, listingID string) (*economy.PurchaseResult, error) {
	args := m.Called(ctx, buyerID, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.PurchaseResult), args.Error(1)
}

func (m *MockEconomyService) PurchaseAutoclicker(ctx context.Context, playerID, autoclickerID string) (*domain.PlayerAutoclicker, error) {
	args := m.Called(ctx, playerID, autoclickerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerAutoclicker), args.Error(1)
}

func (m *MockEconomyService) CreateTradeOffer(ctx context.Context, senderID, receiverID string, terms domain.TradeTerms) (*domain.TradeOffer, error) {
	args := m.Called(ctx, senderID, receiverID, terms)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TradeOffer), args.Error(1)
}

func (m *MockEconomyService) AcceptTradeOffer(ctx context.Context, tradeID, receiverID string) error {
	return m.Called(ctx, tradeID, receiverID).Error(0)
}

func (m *MockEconomyService) RejectTradeOffer(ctx context.Context, tradeID, receiverID string) error {
	return m.Called(ctx, tradeID, receiverID).Error(0)
}

func (m *MockEconomyService) CancelTradeOffer(ctx context.Context, tradeID, senderID string) error {
	return m.Called(ctx, tradeID, senderID).Error(0)
}

func (m *MockEconomyService) ListInventory(ctx context.Context, playerID string) ([]domain.ItemHolding, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemHolding), args.Error(1)
}

func (m *MockEconomyService) ListListings(ctx context.Context) ([]domain.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockEconomyService) ListTradeOffers(ctx context.Context, playerID string) ([]domain.TradeOffer, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TradeOffer), args.Error(1)
}

func (m *MockEconomyService) ListPlayerAutoclickers(ctx context.Context, playerID string) ([]domain.PlayerAutoclicker, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlayerAutoclicker), args.Error(1)
}

func (m *MockEconomyService) AutoclickerOwners(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockEconomyService) CatalogItems() []domain.CatalogItem {
	return m.Called().Get(0).([]domain.CatalogItem)
}

func (m *MockEconomyService) CatalogAutoclickers() []domain.Autoclicker {
	return m.Called().Get(0).([]domain.Autoclicker)
}

func (m *MockEconomyService) DropChance(itemID string) float64 {
	return m.Called(itemID).Get(0).(float64)
}

// MockPlayerService mocks player.Service
type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) RegisterPlayer(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) Invalidate(playerID string) {
	m.Called(playerID)
}

// newRequest builds a request carrying the player header when playerID is set
func newRequest(method, path, playerID, body string) *http.Request {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if playerID != "" {
		req.Header.Set(HeaderPlayerID, playerID)
	}
	return req
}

// withRouteID attaches a chi {id} route parameter as the router would
func withRouteID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(ParamID, id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
