// Package firestore holds the hosted durable store variant. Expense records
// live in the "expenses" collection keyed by their decimal id; the id
// allocator counter lives in "counters". The health endpoint reports this
// variant as "firebase".
package firestore

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"expensed/internal/core"
	"expensed/internal/store"
)

const (
	expensesCollection = "expenses"
	countersCollection = "counters"
)

type Store struct {
	client *fs.Client
}

// Options configures the Firestore client. One of CredentialsFile or
// CredentialsJSON may be set; with neither, application default credentials
// apply.
type Options struct {
	ProjectID       string
	CredentialsFile string
	CredentialsJSON string
}

func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.ProjectID == "" {
		return nil, fmt.Errorf("firestore project id is required")
	}

	var clientOpts []option.ClientOption
	switch {
	case opts.CredentialsJSON != "":
		clientOpts = append(clientOpts, option.WithCredentialsJSON([]byte(opts.CredentialsJSON)))
	case opts.CredentialsFile != "":
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}

	client, err := fs.NewClient(ctx, opts.ProjectID, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}

	slog.InfoContext(ctx, "Initialized Firestore client", "project", opts.ProjectID)
	return &Store{client: client}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) expenses() *fs.CollectionRef {
	return s.client.Collection(expensesCollection)
}

func (s *Store) CreateExpense(ctx context.Context, p core.CreatePayload) (core.Expense, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return core.Expense{}, err
	}

	id, err := s.nextID(ctx)
	if err != nil {
		return core.Expense{}, err
	}

	e := core.Expense{
		ID:        id,
		Amount:    p.Amount,
		Type:      p.Type,
		Remarks:   p.Remarks,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	docRef := s.expenses().Doc(strconv.FormatInt(id, 10))
	if _, err := docRef.Set(ctx, encodeExpense(e)); err != nil {
		return core.Expense{}, mapStatusErr("create expense", err)
	}

	slog.InfoContext(ctx, "Expense saved to Firestore", "id", e.ID, "type", e.Type, "amount", e.Amount)
	return e, nil
}

func (s *Store) GetAllExpenses(ctx context.Context) ([]core.Expense, error) {
	q := s.expenses().OrderBy("createdAt", fs.Desc)
	return s.collect(ctx, q, "list expenses")
}

func (s *Store) GetExpenseByID(ctx context.Context, id int64) (*core.Expense, error) {
	doc, err := s.expenses().Doc(strconv.FormatInt(id, 10)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, core.NotFoundf("expense %d not found", id)
		}
		return nil, mapStatusErr("get expense", err)
	}

	e, err := decodeExpense(doc.Ref.ID, doc.Data())
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) GetExpensesByDateRange(ctx context.Context, start, end time.Time) ([]core.Expense, error) {
	q := s.expenses().
		Where("createdAt", ">=", start).
		Where("createdAt", "<=", end).
		OrderBy("createdAt", fs.Desc)
	return s.collect(ctx, q, "list expenses by range")
}

func (s *Store) GetExpensesByMonth(ctx context.Context, year, month int) ([]core.Expense, error) {
	start, end := store.MonthRange(year, month)
	return s.GetExpensesByDateRange(ctx, start, end)
}

// collect runs a query and decodes every document. Documents that fail to
// decode are skipped with a warning so one corrupt record cannot take down a
// whole listing.
func (s *Store) collect(ctx context.Context, q fs.Query, op string) ([]core.Expense, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	out := []core.Expense{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStatusErr(op, err)
		}

		e, err := decodeExpense(doc.Ref.ID, doc.Data())
		if err != nil {
			slog.WarnContext(ctx, "Skipping undecodable expense document",
				"doc_id", doc.Ref.ID, "error", err)
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
