package firestore

import (
	"testing"
	"time"

	"expensed/internal/core"
)

type convertible struct{ t time.Time }

func (c convertible) ToTime() time.Time { return c.t }

func TestDecodeExpense(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	e, err := decodeExpense("12", map[string]any{
		"amount":    12.5,
		"type":      "lunch",
		"remarks":   "canteen",
		"createdAt": ts,
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.ID != 12 || e.Amount != 12.5 || e.Type != "lunch" {
		t.Fatalf("unexpected record: %+v", e)
	}
	if e.Remarks == nil || *e.Remarks != "canteen" {
		t.Fatalf("unexpected remarks: %v", e.Remarks)
	}
	if !e.CreatedAt.Equal(ts) {
		t.Fatalf("unexpected createdAt: %v", e.CreatedAt)
	}
}

func TestDecodeExpenseCorruptID(t *testing.T) {
	_, err := decodeExpense("not-a-number", map[string]any{"amount": 1.0, "type": "lunch"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !core.IsKind(err, core.KindCorruptRecord) {
		t.Fatalf("expected corrupt-record kind, got %v", core.KindOf(err))
	}
}

func TestDecodeExpenseRemarksNormalization(t *testing.T) {
	for _, raw := range []any{nil, ""} {
		e, err := decodeExpense("1", map[string]any{"amount": 1.0, "type": "lunch", "remarks": raw, "createdAt": time.Now()})
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if e.Remarks != nil {
			t.Fatalf("remarks %v should decode to nil", raw)
		}
	}
}

func TestResolveCreatedAt(t *testing.T) {
	want := time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   any
		ok   bool
	}{
		{"native timestamp", want, true},
		{"rfc3339 string", "2023-07-01T12:00:00Z", true},
		{"legacy datetime string", "2023-07-01 12:00:00", true},
		{"convertible object", convertible{want}, true},
		{"garbage string", "yesterday-ish", false},
		{"wrong type", 42, false},
		{"missing", nil, false},
	}
	for _, tc := range cases {
		got, ok := resolveCreatedAt(tc.in)
		if ok != tc.ok {
			t.Fatalf("%s: ok = %v, want %v", tc.name, ok, tc.ok)
		}
		if ok && !got.Equal(want) {
			t.Fatalf("%s: got %v, want %v", tc.name, got, want)
		}
	}
}

func TestDecodeUnparseableCreatedAtFallsBackToNow(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	e, err := decodeExpense("3", map[string]any{"amount": 2.0, "type": "dinner", "createdAt": "???"})
	if err != nil {
		t.Fatalf("decode must not fail on a bad date: %v", err)
	}
	if e.CreatedAt.Before(before) {
		t.Fatalf("expected fallback to current time, got %v", e.CreatedAt)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	remarks := "train ticket"
	in := core.Expense{
		ID:        7,
		Amount:    31.2,
		Type:      "transport",
		Remarks:   &remarks,
		CreatedAt: time.Date(2024, 11, 30, 23, 59, 59, 999e6, time.UTC),
	}

	out, err := decodeExpense("7", encodeExpense(in))
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if out.ID != in.ID || out.Amount != in.Amount || out.Type != in.Type {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if out.Remarks == nil || *out.Remarks != remarks {
		t.Fatalf("remarks mismatch: %v", out.Remarks)
	}
	if !out.CreatedAt.Equal(in.CreatedAt) {
		t.Fatalf("createdAt mismatch: %v != %v", out.CreatedAt, in.CreatedAt)
	}

	// The id lives in the document key, never inside the document.
	if _, ok := encodeExpense(in)["id"]; ok {
		t.Fatal("encoded document must not contain an id field")
	}
}
