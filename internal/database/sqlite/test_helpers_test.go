package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FruitClicker_Go/internal/domain"
)

// createTestStore opens a fresh database file in a temp dir
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var testClock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func createTestPlayer(t *testing.T, s *Store, username string, balance int) *domain.Player {
	t.Helper()
	p := &domain.Player{
		ID:        uuid.NewString(),
		Username:  username,
		Balance:   balance,
		CreatedAt: testClock,
	}
	require.NoError(t, s.CreatePlayer(context.Background(), p))
	return p
}

// withTx runs fn in a transaction and commits it
func withTx(t *testing.T, s *Store, fn func(tx *LedgerTx)) {
	t.Helper()
	ctx := context.Background()
	etx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	tx := etx.(*LedgerTx)
	fn(tx)
	require.NoError(t, tx.Commit(ctx))
}

func giveItem(t *testing.T, s *Store, playerID, itemID string, qty int) {
	t.Helper()
	withTx(t, s, func(tx *LedgerTx) {
		_, err := tx.CreditHolding(context.Background(), playerID, itemID, qty, testClock)
		require.NoError(t, err)
	})
}
