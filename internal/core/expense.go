package core

import (
	"strings"
	"time"
)

type (
	// Expense is a single persisted expense record. IDs are assigned by the
	// store at creation and never reused; CreatedAt is stamped server-side.
	Expense struct {
		ID        int64     `json:"id"`
		Amount    float64   `json:"amount"`
		Type      string    `json:"type"`
		Remarks   *string   `json:"remarks"`
		CreatedAt time.Time `json:"createdAt"`
	}

	// CreatePayload is the caller-supplied part of a new expense. The store
	// fills in ID and CreatedAt.
	CreatePayload struct {
		Amount  float64 `json:"amount"`
		Type    string  `json:"type"`
		Remarks *string `json:"remarks"`
	}
)

// ExpenseTypes is the fixed set of category codes accepted at creation.
// Order matters for presentation; validation is membership only.
var ExpenseTypes = []string{
	"breakfast",
	"lunch",
	"dinner",
	"entertainment",
	"transport",
	"medical",
	"personal_care",
	"shopping",
	"fitness",
	"hobby",
	"travel",
	"gifts",
	"repairs",
	"emergency",
	"others",
}

var expenseTypeLabels = map[string]string{
	"breakfast":     "Breakfast",
	"lunch":         "Lunch",
	"dinner":        "Dinner",
	"entertainment": "Entertainment",
	"transport":     "Transport",
	"medical":       "Medical",
	"personal_care": "Personal Care",
	"shopping":      "Shopping",
	"fitness":       "Fitness/Wellness",
	"hobby":         "Hobby",
	"travel":        "Travel",
	"gifts":         "Gifts",
	"repairs":       "Repairs/Maintenance",
	"emergency":     "Emergency",
	"others":        "Others",
}

// ValidExpenseType reports whether code is one of the enumerated categories.
func ValidExpenseType(code string) bool {
	_, ok := expenseTypeLabels[code]
	return ok
}

// ExpenseTypeLabel returns the display label for a category code. Codes
// outside the enumerated set come back unchanged; historical records may
// carry types that were valid when written.
func ExpenseTypeLabel(code string) string {
	if label, ok := expenseTypeLabels[code]; ok {
		return label
	}
	return code
}

// Validate checks the payload against the record schema. It performs no I/O.
func (p CreatePayload) Validate() error {
	if p.Amount <= 0 {
		return Validationf("amount must be greater than 0")
	}
	if !ValidExpenseType(p.Type) {
		return Validationf("type must be one of the known expense categories, got %q", p.Type)
	}
	return nil
}

// Normalize returns the payload reduced to exactly the fields a store may
// persist: empty remarks collapse to nil so stored documents always hold
// string-or-null, never empty string.
func (p CreatePayload) Normalize() CreatePayload {
	out := CreatePayload{Amount: p.Amount, Type: p.Type}
	if p.Remarks != nil {
		if r := strings.TrimSpace(*p.Remarks); r != "" {
			out.Remarks = &r
		}
	}
	return out
}
