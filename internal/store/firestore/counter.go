package firestore

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"expensed/internal/core"
	"expensed/internal/store"
)

// nextID allocates the next expense identifier from the counters/expenses
// document. The read-modify-write runs inside a Firestore transaction; the
// SDK retries write conflicts internally, so two concurrent callers never
// receive the same value. Exhausted retries surface as StorageUnavailable.
func (s *Store) nextID(ctx context.Context) (int64, error) {
	ref := s.client.Collection(countersCollection).Doc(store.CounterKey)

	var next int64
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		doc, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			next = 1
			return tx.Set(ref, map[string]any{"value": int64(1)})
		}
		if err != nil {
			return err
		}

		next = counterValue(doc) + 1
		return tx.Update(ref, []fs.Update{{Path: "value", Value: next}})
	})
	if err != nil {
		return 0, core.NewError(core.KindStorageUnavailable, "allocate expense id", err)
	}
	return next, nil
}

func counterValue(doc *fs.DocumentSnapshot) int64 {
	v, err := doc.DataAt("value")
	if err != nil {
		return 0
	}
	n, _ := v.(int64)
	return n
}
