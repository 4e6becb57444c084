// Package services wires the store contract to the optional event stream.
package services

import (
	"context"
	"log/slog"
	"time"

	"expensed/internal/core"
	"expensed/internal/events"
	"expensed/internal/store"
)

// Publisher is the slice of the events client the service needs.
type Publisher interface {
	PublishExpenseCreated(ctx context.Context, msg *events.ExpenseCreatedMessage) error
}

// ExpenseService satisfies the store contract itself, so handlers stay
// agnostic of both the backend variant and the event stream. Reads delegate;
// creation additionally announces the new record.
type ExpenseService struct {
	store     store.Store
	publisher Publisher
}

var _ store.Store = (*ExpenseService)(nil)

func NewExpenseService(s store.Store, publisher Publisher) *ExpenseService {
	return &ExpenseService{store: s, publisher: publisher}
}

// CreateExpense persists the record, then announces it. A publish failure is
// logged and never fails the request; the record is already durable.
func (s *ExpenseService) CreateExpense(ctx context.Context, p core.CreatePayload) (core.Expense, error) {
	e, err := s.store.CreateExpense(ctx, p)
	if err != nil {
		return core.Expense{}, err
	}

	if s.publisher != nil {
		msg := events.NewExpenseCreatedMessage(e.ID, e.Amount, e.Type, e.CreatedAt)
		if err := s.publisher.PublishExpenseCreated(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "Failed to publish expense created event",
				"id", e.ID, "error", err)
		}
	}

	return e, nil
}

func (s *ExpenseService) GetAllExpenses(ctx context.Context) ([]core.Expense, error) {
	return s.store.GetAllExpenses(ctx)
}

func (s *ExpenseService) GetExpenseByID(ctx context.Context, id int64) (*core.Expense, error) {
	return s.store.GetExpenseByID(ctx, id)
}

func (s *ExpenseService) GetExpensesByDateRange(ctx context.Context, start, end time.Time) ([]core.Expense, error) {
	return s.store.GetExpensesByDateRange(ctx, start, end)
}

func (s *ExpenseService) GetExpensesByMonth(ctx context.Context, year, month int) ([]core.Expense, error) {
	return s.store.GetExpensesByMonth(ctx, year, month)
}
