// Package store defines the persistence contract for expense records.
// Concrete implementations live in the subpackages (firestore, sqlite,
// memory); callers depend on the Store interface only and receive one
// implementation from the backend factory at startup.
package store

import (
	"context"
	"time"

	"expensed/internal/core"
)

// Store is the CRUD and range-query contract over persisted expenses.
type Store interface {
	// CreateExpense allocates the next id, stamps CreatedAt with the current
	// UTC time, persists the record and returns it in full.
	CreateExpense(ctx context.Context, p core.CreatePayload) (core.Expense, error)

	// GetAllExpenses returns every record ordered by CreatedAt descending.
	// An empty store yields an empty slice, not an error.
	GetAllExpenses(ctx context.Context) ([]core.Expense, error)

	// GetExpenseByID returns the matching record, or an error of kind
	// NotFound when the id has no record. Absence is not a backend fault.
	GetExpenseByID(ctx context.Context, id int64) (*core.Expense, error)

	// GetExpensesByDateRange returns records with start <= CreatedAt <= end,
	// inclusive on both ends, ordered by CreatedAt descending.
	GetExpensesByDateRange(ctx context.Context, start, end time.Time) ([]core.Expense, error)

	// GetExpensesByMonth returns the records of one calendar month. month is
	// zero-based (0 = January) to match the wire format.
	GetExpensesByMonth(ctx context.Context, year, month int) ([]core.Expense, error)
}

// CounterKey is the entity kind of the id allocator counter shared by the
// durable implementations.
const CounterKey = "expenses"
