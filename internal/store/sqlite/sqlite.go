// Package sqlite holds the local durable store variant, backed by a single
// SQLite file. Identifier allocation runs an upsert on the counters table in
// the same transaction as the record insert, so concurrent creators never
// observe the same value.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"expensed/internal/core"
	"expensed/internal/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

const selectColumns = "id, amount, type, remarks, created_at"

func (s *Store) CreateExpense(ctx context.Context, p core.CreatePayload) (core.Expense, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return core.Expense{}, err
	}

	createdAt := time.Now().UTC().Truncate(time.Millisecond)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return core.Expense{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO counters (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = value + 1
		 RETURNING value`,
		store.CounterKey,
	).Scan(&id)
	if err != nil {
		return core.Expense{}, fmt.Errorf("allocate expense id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, amount, type, remarks, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, p.Amount, p.Type, p.Remarks, createdAt.UnixMilli(),
	)
	if err != nil {
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return core.Expense{}, fmt.Errorf("commit expense: %w", err)
	}

	e := core.Expense{
		ID:        id,
		Amount:    p.Amount,
		Type:      p.Type,
		Remarks:   p.Remarks,
		CreatedAt: createdAt,
	}
	slog.InfoContext(ctx, "Expense saved to SQLite", "id", e.ID, "type", e.Type, "amount", e.Amount)
	return e, nil
}

func (s *Store) GetAllExpenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM expenses ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()
	return scanExpenses(rows)
}

func (s *Store) GetExpenseByID(ctx context.Context, id int64) (*core.Expense, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM expenses WHERE id = ?`, id)

	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NotFoundf("expense %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query expense %d: %w", id, err)
	}
	return &e, nil
}

func (s *Store) GetExpensesByDateRange(ctx context.Context, start, end time.Time) ([]core.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM expenses
		 WHERE created_at >= ? AND created_at <= ?
		 ORDER BY created_at DESC, id DESC`,
		start.UnixMilli(), end.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("query expenses by range: %w", err)
	}
	defer rows.Close()
	return scanExpenses(rows)
}

func (s *Store) GetExpensesByMonth(ctx context.Context, year, month int) ([]core.Expense, error) {
	start, end := store.MonthRange(year, month)
	return s.GetExpensesByDateRange(ctx, start, end)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (core.Expense, error) {
	var (
		e         core.Expense
		remarks   sql.NullString
		createdAt int64
	)
	if err := row.Scan(&e.ID, &e.Amount, &e.Type, &remarks, &createdAt); err != nil {
		return core.Expense{}, err
	}
	if remarks.Valid {
		e.Remarks = &remarks.String
	}
	e.CreatedAt = time.UnixMilli(createdAt).UTC()
	return e, nil
}

func scanExpenses(rows *sql.Rows) ([]core.Expense, error) {
	out := []core.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return out, nil
}
