package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"expensed/internal/core"
	"expensed/internal/store"
	"expensed/internal/store/storetest"
)

func testPayload() core.CreatePayload {
	return core.CreatePayload{Amount: 9.99, Type: "lunch"}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "expenses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreContract(t *testing.T) {
	suite.Run(t, &storetest.Suite{
		NewStore: func(t *testing.T) store.Store { return newTestStore(t) },
	})
}

func seed(t *testing.T, s *Store, id int64, at time.Time) {
	t.Helper()
	_, err := s.db.Exec(
		`INSERT INTO expenses (id, amount, type, remarks, created_at) VALUES (?, ?, ?, NULL, ?)`,
		id, 1.0, "others", at.UnixMilli())
	require.NoError(t, err)
}

func TestMonthBoundariesInclusive(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, 1, time.Date(2024, 1, 31, 23, 59, 59, 999e6, time.UTC))
	seed(t, s, 2, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	seed(t, s, 3, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	got, err := s.GetExpensesByMonth(context.Background(), 2024, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, int64(1), got[0].ID)
	require.Equal(t, int64(3), got[1].ID)
}

func TestLeapYearFebruary(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, 1, time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC))

	got, err := s.GetExpensesByMonth(context.Background(), 2024, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = s.GetExpensesByMonth(context.Background(), 2023, 1)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCounterSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "expenses.db")

	s, err := New(path)
	require.NoError(t, err)
	first, err := s.CreateExpense(context.Background(), testPayload())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = New(path)
	require.NoError(t, err)
	defer s.Close()
	second, err := s.CreateExpense(context.Background(), testPayload())
	require.NoError(t, err)
	require.Equal(t, first.ID+1, second.ID, "ids must keep climbing across restarts")
}
