package player

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FruitClicker_Go/internal/domain"
	"github.com/osse101/FruitClicker_Go/internal/event"
)

// MockRepository implements repository.Player for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreatePlayer(ctx context.Context, p *domain.Player) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func TestRegisterPlayer_Success(t *testing.T) {
	// ARRANGE
	repo := &MockRepository{}
	repo.On("CreatePlayer", mock.Anything, mock.MatchedBy(func(p *domain.Player) bool {
		return p.Username == "alice" && p.Balance == 0 && p.TotalItemsCollected == 0 && p.ID != ""
	})).Return(nil)
	svc := NewService(repo, 10, time.Minute)

	// ACT
	p, err := svc.RegisterPlayer(context.Background(), "  alice ")

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	repo.AssertExpectations(t)

	// Served from cache afterwards
	cached, err := svc.GetPlayer(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, cached.ID)
	repo.AssertNotCalled(t, "GetPlayer", mock.Anything, mock.Anything)
}

func TestRegisterPlayer_InvalidUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"too long", strings.Repeat("x", domain.MaxUsernameLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockRepository{}
			svc := NewService(repo, 10, time.Minute)

			_, err := svc.RegisterPlayer(context.Background(), tt.username)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), domain.ErrMsgInvalidUsername)
			repo.AssertNotCalled(t, "CreatePlayer", mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterPlayer_MultibyteLengthCountsRunes(t *testing.T) {
	repo := &MockRepository{}
	repo.On("CreatePlayer", mock.Anything, mock.Anything).Return(nil)
	svc := NewService(repo, 10, time.Minute)

	_, err := svc.RegisterPlayer(context.Background(), strings.Repeat("🍎", domain.MaxUsernameLength))

	assert.NoError(t, err)
}

func TestRegisterPlayer_UsernameTaken(t *testing.T) {
	repo := &MockRepository{}
	repo.On("CreatePlayer", mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)
	svc := NewService(repo, 10, time.Minute)

	_, err := svc.RegisterPlayer(context.Background(), "alice")

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegisterPlayer_StoreFailureIsInternal(t *testing.T) {
	repo := &MockRepository{}
	repo.On("CreatePlayer", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	svc := NewService(repo, 10, time.Minute)

	_, err := svc.RegisterPlayer(context.Background(), "alice")

	assert.ErrorIs(t, err, domain.ErrInternal)
}

func TestGetPlayer_CachesAndInvalidates(t *testing.T) {
	repo := &MockRepository{}
	repo.On("GetPlayer", mock.Anything, "p1").Return(&domain.Player{ID: "p1", Balance: 10}, nil).Twice()
	svc := NewService(repo, 10, time.Minute)
	ctx := context.Background()

	_, err := svc.GetPlayer(ctx, "p1")
	require.NoError(t, err)
	_, err = svc.GetPlayer(ctx, "p1")
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "GetPlayer", 1)

	svc.Invalidate("p1")
	_, err = svc.GetPlayer(ctx, "p1")
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "GetPlayer", 2)
}

func TestGetPlayer_NotFound(t *testing.T) {
	repo := &MockRepository{}
	repo.On("GetPlayer", mock.Anything, "ghost").Return(nil, domain.ErrPlayerNotFound)
	svc := NewService(repo, 0, 0)

	_, err := svc.GetPlayer(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	assert.NotErrorIs(t, err, domain.ErrInternal)
}

func TestGetPlayerByUsername(t *testing.T) {
	repo := &MockRepository{}
	repo.On("GetPlayerByUsername", mock.Anything, "alice").Return(&domain.Player{ID: "p1", Username: "alice"}, nil)
	svc := NewService(repo, 10, time.Minute)

	p, err := svc.GetPlayerByUsername(context.Background(), " alice")

	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
}

func TestCacheInvalidator_ListingSoldDropsBothSides(t *testing.T) {
	// ARRANGE
	repo := &MockRepository{}
	repo.On("GetPlayer", mock.Anything, "seller").Return(&domain.Player{ID: "seller"}, nil)
	repo.On("GetPlayer", mock.Anything, "buyer").Return(&domain.Player{ID: "buyer"}, nil)
	svc := NewService(repo, 10, time.Minute)
	ctx := context.Background()
	_, _ = svc.GetPlayer(ctx, "seller")
	_, _ = svc.GetPlayer(ctx, "buyer")

	bus := event.NewMemoryBus()
	NewCacheInvalidator(svc).Register(bus)

	// ACT
	err := bus.Publish(ctx, event.New(event.ListingSold, event.ListingPayloadV1{SellerID: "seller", BuyerID: "buyer"}))

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 0, svc.(*service).cache.Len())
}

func TestCacheInvalidator_BadPayload(t *testing.T) {
	inv := NewCacheInvalidator(NewService(&MockRepository{}, 10, time.Minute))

	err := inv.HandleEvent(context.Background(), event.New(event.ItemSold, 42))

	assert.Error(t, err)
}

func TestGetPlayer_InvalidationDuringReadIsNotOverwritten(t *testing.T) {
	// ARRANGE: a committed change invalidates p1 while the stale read is in flight
	repo := &MockRepository{}
	svc := NewService(repo, 10, time.Minute)
	stale := &domain.Player{ID: "p1", Balance: 10}
	fresh := &domain.Player{ID: "p1", Balance: 20}
	repo.On("GetPlayer", mock.Anything, "p1").
		Run(func(mock.Arguments) { svc.Invalidate("p1") }).
		Return(stale, nil).Once()
	repo.On("GetPlayer", mock.Anything, "p1").Return(fresh, nil).Once()

	// ACT
	first, err := svc.GetPlayer(context.Background(), "p1")
	require.NoError(t, err)
	second, err := svc.GetPlayer(context.Background(), "p1")
	require.NoError(t, err)
	third, err := svc.GetPlayer(context.Background(), "p1")
	require.NoError(t, err)

	// ASSERT
	assert.Equal(t, 10, first.Balance)
	assert.Equal(t, 20, second.Balance)
	assert.Equal(t, 20, third.Balance)
	repo.AssertNumberOfCalls(t, "GetPlayer", 2)
}
