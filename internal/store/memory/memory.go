// Package memory holds the process-local store variant. It keeps records in
// a mutex-guarded map and allocates ids from a local counter, so uniqueness
// holds only within one process lifetime and nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"expensed/internal/core"
	"expensed/internal/store"
)

type Store struct {
	mu       sync.Mutex
	expenses map[int64]core.Expense
	lastID   int64
}

func New() *Store {
	return &Store{expenses: make(map[int64]core.Expense)}
}

func (s *Store) CreateExpense(_ context.Context, p core.CreatePayload) (core.Expense, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return core.Expense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	e := core.Expense{
		ID:        s.lastID,
		Amount:    p.Amount,
		Type:      p.Type,
		Remarks:   p.Remarks,
		CreatedAt: time.Now().UTC(),
	}
	s.expenses[e.ID] = e
	return e, nil
}

func (s *Store) GetAllExpenses(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		out = append(out, e)
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *Store) GetExpenseByID(_ context.Context, id int64) (*core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.expenses[id]
	if !ok {
		return nil, core.NotFoundf("expense %d not found", id)
	}
	return &e, nil
}

func (s *Store) GetExpensesByDateRange(_ context.Context, start, end time.Time) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []core.Expense
	for _, e := range s.expenses {
		if !e.CreatedAt.Before(start) && !e.CreatedAt.After(end) {
			out = append(out, e)
		}
	}
	sortNewestFirst(out)
	if out == nil {
		out = []core.Expense{}
	}
	return out, nil
}

func (s *Store) GetExpensesByMonth(ctx context.Context, year, month int) ([]core.Expense, error) {
	start, end := store.MonthRange(year, month)
	return s.GetExpensesByDateRange(ctx, start, end)
}

// sortNewestFirst orders by CreatedAt descending; equal timestamps fall back
// to id descending so listings stay deterministic.
func sortNewestFirst(expenses []core.Expense) {
	sort.Slice(expenses, func(i, j int) bool {
		if expenses[i].CreatedAt.Equal(expenses[j].CreatedAt) {
			return expenses[i].ID > expenses[j].ID
		}
		return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
	})
}
