package events

import (
	"encoding/json"
	"time"
)

// RoutingKeyExpenseCreated is the routing key for creation announcements.
const RoutingKeyExpenseCreated = "expense.created"

// ExpenseCreatedMessage announces a newly persisted expense to downstream
// consumers. It carries the fields consumers aggregate on, not the full
// record; anyone needing more reads the store.
type ExpenseCreatedMessage struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	Timestamp time.Time `json:"timestamp"`
}

func NewExpenseCreatedMessage(id int64, amount float64, expenseType string, createdAt time.Time) *ExpenseCreatedMessage {
	return &ExpenseCreatedMessage{
		ID:        id,
		Amount:    amount,
		Type:      expenseType,
		CreatedAt: createdAt,
		Timestamp: time.Now().UTC(),
	}
}

func (m *ExpenseCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ExpenseCreatedMessageFromJSON(data []byte) (*ExpenseCreatedMessage, error) {
	var msg ExpenseCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
