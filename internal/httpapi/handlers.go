package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"expensed/internal/core"
)

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.store.GetAllExpenses(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch expenses")
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleListExpensesByMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		validationError(w, "Invalid year or month")
		return
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || month < 0 || month > 11 {
		validationError(w, "Invalid year or month")
		return
	}

	expenses, err := s.store.GetExpensesByMonth(r.Context(), year, month)
	if err != nil {
		writeError(w, r, err, "Failed to fetch expenses for the specified month")
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		validationError(w, "Invalid expense ID")
		return
	}

	expense, err := s.store.GetExpenseByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to fetch expense")
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

// createRequest separates "absent" from "zero" for amount so the two cases
// get distinct validation messages.
type createRequest struct {
	Amount  *float64 `json:"amount"`
	Type    string   `json:"type"`
	Remarks *string  `json:"remarks"`
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var body createRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&body); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "amount" {
			validationError(w, "amount must be a number")
			return
		}
		validationError(w, "Invalid JSON payload")
		return
	}
	if body.Amount == nil {
		validationError(w, "amount is required and must be a number")
		return
	}

	payload := core.CreatePayload{
		Amount:  *body.Amount,
		Type:    body.Type,
		Remarks: body.Remarks,
	}.Normalize()
	if err := payload.Validate(); err != nil {
		writeError(w, r, err, "Invalid expense payload")
		return
	}

	expense, err := s.store.CreateExpense(r.Context(), payload)
	if err != nil {
		writeError(w, r, err, "Failed to create expense")
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Storage   string `json:"storage"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Storage:   s.storageKind,
	})
}
