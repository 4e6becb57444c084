package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"expensed/internal/core"
	"expensed/internal/store"
	"expensed/internal/store/storetest"
)

func TestMemoryStoreContract(t *testing.T) {
	suite.Run(t, &storetest.Suite{
		NewStore: func(t *testing.T) store.Store { return New() },
	})
}

// seed inserts a record with a fixed timestamp, bypassing CreateExpense so
// boundary instants can be pinned exactly.
func seed(s *Store, id int64, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses[id] = core.Expense{ID: id, Amount: 1, Type: "others", CreatedAt: at}
	if id > s.lastID {
		s.lastID = id
	}
}

func TestMonthBoundariesInclusive(t *testing.T) {
	s := New()
	lastInstant := time.Date(2024, 1, 31, 23, 59, 59, 999e6, time.UTC)
	nextMonth := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	firstInstant := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	seed(s, 1, lastInstant)
	seed(s, 2, nextMonth)
	seed(s, 3, firstInstant)

	got, err := s.GetExpensesByMonth(context.Background(), 2024, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, int64(1), got[0].ID, "23:59:59.999 on the last day is part of the month")
	require.Equal(t, int64(3), got[1].ID, "the first instant of the month is included")
}

func TestLeapYearFebruary(t *testing.T) {
	s := New()
	seed(s, 1, time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC))

	got, err := s.GetExpensesByMonth(context.Background(), 2024, 1)
	require.NoError(t, err)
	require.Len(t, got, 1, "Feb 29 of a leap year belongs to February")

	got, err = s.GetExpensesByMonth(context.Background(), 2023, 1)
	require.NoError(t, err)
	require.Empty(t, got, "non-leap February has no such record and must not error")
}

func TestIDsNotReusedAfterSeeding(t *testing.T) {
	s := New()
	seed(s, 7, time.Now().UTC())

	e, err := s.CreateExpense(context.Background(), core.CreatePayload{Amount: 2, Type: "lunch"})
	require.NoError(t, err)
	require.Equal(t, int64(8), e.ID)
}
