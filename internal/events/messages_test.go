package events

import (
	"testing"
	"time"
)

func TestExpenseCreatedMessageJSON(t *testing.T) {
	createdAt := time.Date(2024, 5, 2, 8, 15, 0, 0, time.UTC)
	msg := NewExpenseCreatedMessage(42, 12.5, "lunch", createdAt)

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := ExpenseCreatedMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != 42 || got.Amount != 12.5 || got.Type != "lunch" {
		t.Fatalf("unexpected message: %+v", got)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Fatalf("createdAt mismatch: %v", got.CreatedAt)
	}
	if got.Timestamp.IsZero() {
		t.Fatal("expected a publish timestamp")
	}
}

func TestExpenseCreatedMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := ExpenseCreatedMessageFromJSON([]byte("{not json")); err == nil {
		t.Fatal("expected error")
	}
}
