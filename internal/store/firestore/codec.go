package firestore

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"expensed/internal/core"
)

// decodeExpense converts a stored document plus its key into an expense
// record. The document key is the record id; a key that does not parse as an
// integer marks the record corrupt. createdAt tolerates every encoding the
// collection has accumulated over time (see resolveCreatedAt).
func decodeExpense(docID string, data map[string]any) (core.Expense, error) {
	id, err := strconv.ParseInt(docID, 10, 64)
	if err != nil {
		return core.Expense{}, core.NewError(core.KindCorruptRecord,
			fmt.Sprintf("expense document %q has a non-integer id", docID), err)
	}

	createdAt, ok := resolveCreatedAt(data["createdAt"])
	if !ok {
		// Historical documents occasionally carry unparseable dates; keep them
		// readable rather than failing the decode.
		slog.Warn("Expense document has unparseable createdAt, using current time", "doc_id", docID)
		createdAt = time.Now().UTC()
	}

	return core.Expense{
		ID:        id,
		Amount:    toFloat(data["amount"]),
		Type:      toString(data["type"]),
		Remarks:   toRemarks(data["remarks"]),
		CreatedAt: createdAt.UTC(),
	}, nil
}

// encodeExpense produces the document fields. The id is the document key and
// never a field of the document itself.
func encodeExpense(e core.Expense) map[string]any {
	var remarks any
	if e.Remarks != nil {
		remarks = *e.Remarks
	}
	return map[string]any{
		"amount":    e.Amount,
		"type":      e.Type,
		"remarks":   remarks,
		"createdAt": e.CreatedAt,
	}
}

// resolveCreatedAt maps the known historical createdAt representations to a
// timestamp: a native timestamp, an encoded string, or a value exposing a
// to-time capability. Anything else reports false and the caller decides the
// fallback.
func resolveCreatedAt(v any) (time.Time, bool) {
	switch ts := v.(type) {
	case time.Time:
		return ts, true
	case string:
		return parseTimeString(ts)
	case interface{ AsTime() time.Time }:
		return ts.AsTime(), true
	case interface{ ToTime() time.Time }:
		return ts.ToTime(), true
	default:
		return time.Time{}, false
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimeString(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func toRemarks(v any) *string {
	if s, ok := v.(string); ok && s != "" {
		return &s
	}
	return nil
}
