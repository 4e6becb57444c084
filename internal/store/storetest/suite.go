// Package storetest holds the store contract suite. The contract tests are
// written once against the Store interface and each in-process variant runs
// them from its own package.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"expensed/internal/core"
	"expensed/internal/store"
)

// Suite exercises the Store contract. Implementations set NewStore to a
// factory producing a fresh, empty store per test.
type Suite struct {
	suite.Suite
	NewStore func(t *testing.T) store.Store

	s store.Store
}

func (s *Suite) SetupTest() {
	s.s = s.NewStore(s.T())
}

func strptr(v string) *string { return &v }

func (s *Suite) create(p core.CreatePayload) core.Expense {
	e, err := s.s.CreateExpense(context.Background(), p)
	require.NoError(s.T(), err)
	return e
}

func (s *Suite) TestCreateAssignsSequentialUniqueIDs() {
	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		e := s.create(core.CreatePayload{Amount: 10, Type: "lunch"})
		assert.False(s.T(), seen[e.ID], "id %d issued twice", e.ID)
		seen[e.ID] = true
	}
	// A fresh store starts counting at 1.
	assert.True(s.T(), seen[1], "fresh store did not issue id 1")
	assert.Len(s.T(), seen, 5)
}

func (s *Suite) TestCreateStampsCreatedAt() {
	before := time.Now().UTC().Add(-time.Second)
	e := s.create(core.CreatePayload{Amount: 12.5, Type: "lunch"})
	after := time.Now().UTC().Add(time.Second)

	assert.False(s.T(), e.CreatedAt.Before(before), "createdAt %v too early", e.CreatedAt)
	assert.False(s.T(), e.CreatedAt.After(after), "createdAt %v too late", e.CreatedAt)
}

func (s *Suite) TestCreateNormalizesRemarks() {
	e := s.create(core.CreatePayload{Amount: 3, Type: "breakfast", Remarks: strptr("  ")})
	assert.Nil(s.T(), e.Remarks, "blank remarks must persist as null")

	e = s.create(core.CreatePayload{Amount: 3, Type: "breakfast", Remarks: strptr("coffee")})
	require.NotNil(s.T(), e.Remarks)
	assert.Equal(s.T(), "coffee", *e.Remarks)
}

func (s *Suite) TestCreateRejectsInvalidPayload() {
	ctx := context.Background()
	bads := []core.CreatePayload{
		{Amount: 0, Type: "lunch"},
		{Amount: -5, Type: "lunch"},
		{Amount: 10, Type: "groceries"},
	}
	for _, p := range bads {
		_, err := s.s.CreateExpense(ctx, p)
		require.Error(s.T(), err)
		assert.True(s.T(), core.IsKind(err, core.KindValidation), "expected validation error, got %v", err)
	}

	// Nothing may have been persisted by the rejected payloads.
	all, err := s.s.GetAllExpenses(ctx)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), all)
}

func (s *Suite) TestGetExpenseByIDRoundTrip() {
	created := s.create(core.CreatePayload{Amount: 42.75, Type: "medical", Remarks: strptr("checkup")})

	got, err := s.s.GetExpenseByID(context.Background(), created.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)

	assert.Equal(s.T(), created.ID, got.ID)
	assert.Equal(s.T(), created.Amount, got.Amount)
	assert.Equal(s.T(), created.Type, got.Type)
	require.NotNil(s.T(), got.Remarks)
	assert.Equal(s.T(), "checkup", *got.Remarks)
	// Backends may truncate sub-millisecond precision.
	assert.WithinDuration(s.T(), created.CreatedAt, got.CreatedAt, time.Millisecond)
}

func (s *Suite) TestGetExpenseByIDMissing() {
	got, err := s.s.GetExpenseByID(context.Background(), 999999)
	assert.Nil(s.T(), got)
	require.Error(s.T(), err)
	assert.True(s.T(), core.IsKind(err, core.KindNotFound), "expected not-found, got %v", err)
}

func (s *Suite) TestGetAllExpensesEmptyStore() {
	all, err := s.s.GetAllExpenses(context.Background())
	require.NoError(s.T(), err)
	assert.NotNil(s.T(), all)
	assert.Empty(s.T(), all)
}

func (s *Suite) TestGetAllExpensesNewestFirst() {
	var ids []int64
	for i := 0; i < 3; i++ {
		ids = append(ids, s.create(core.CreatePayload{Amount: float64(i + 1), Type: "others"}).ID)
	}

	all, err := s.s.GetAllExpenses(context.Background())
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 3)
	for i := 1; i < len(all); i++ {
		assert.False(s.T(), all[i-1].CreatedAt.Before(all[i].CreatedAt),
			"listing not ordered newest first at index %d", i)
	}
	// Records created later never sort below earlier ones, even on equal
	// timestamps.
	assert.Equal(s.T(), ids[2], all[0].ID)
}

func (s *Suite) TestGetExpensesByMonthCurrentMonth() {
	created := s.create(core.CreatePayload{Amount: 7, Type: "transport"})

	now := time.Now().UTC()
	got, err := s.s.GetExpensesByMonth(context.Background(), now.Year(), int(now.Month())-1)
	require.NoError(s.T(), err)
	require.Len(s.T(), got, 1)
	assert.Equal(s.T(), created.ID, got[0].ID)

	// A month with no records yields an empty slice, not an error.
	empty, err := s.s.GetExpensesByMonth(context.Background(), 1999, 0)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), empty)
}

func (s *Suite) TestGetExpensesByMonthNonLeapFebruary() {
	// February 2023 has no 29th; the query must still resolve cleanly.
	got, err := s.s.GetExpensesByMonth(context.Background(), 2023, 1)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), got)
}

func (s *Suite) TestGetExpensesByDateRangeInclusive() {
	created := s.create(core.CreatePayload{Amount: 5, Type: "dinner"})

	// A degenerate range pinned to the record's own timestamp must include it.
	got, err := s.s.GetExpensesByDateRange(context.Background(), created.CreatedAt, created.CreatedAt)
	require.NoError(s.T(), err)
	require.Len(s.T(), got, 1)
	assert.Equal(s.T(), created.ID, got[0].ID)

	// A range ending just before the record excludes it.
	got, err = s.s.GetExpensesByDateRange(context.Background(),
		created.CreatedAt.Add(-time.Hour), created.CreatedAt.Add(-time.Millisecond))
	require.NoError(s.T(), err)
	assert.Empty(s.T(), got)
}
