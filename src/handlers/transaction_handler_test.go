package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack-server/src/config"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	// Populate the chi route context the router would normally provide, so
	// handlers can read the {id} URL param for targets like /api/budgets/1.
	rctx := chi.NewRouteContext()
	if parts := strings.Split(strings.Trim(req.URL.Path, "/"), "/"); len(parts) >= 3 {
		rctx.URLParams.Add("id", parts[2])
	}
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	handler(rec, req)

	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return rec, env
}

func TestCreateTransaction_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "missing amount",
			body:    `{"description":"Lunch","date":"2024-01-15"}`,
			message: "Amount is required and cannot be zero.",
		},
		{
			name:    "zero amount",
			body:    `{"amount":0,"description":"Lunch","date":"2024-01-15"}`,
			message: "Amount is required and cannot be zero.",
		},
		{
			name:    "missing description",
			body:    `{"amount":-50,"date":"2024-01-15"}`,
			message: "Description is required.",
		},
		{
			name:    "blank description",
			body:    `{"amount":-50,"description":"   ","date":"2024-01-15"}`,
			message: "Description is required.",
		},
		{
			name:    "description too long",
			body:    `{"amount":-50,"description":"` + strings.Repeat("a", 201) + `","date":"2024-01-15"}`,
			message: "Description too long",
		},
		{
			name:    "missing date",
			body:    `{"amount":-50,"description":"Lunch"}`,
			message: "Date is required.",
		},
		{
			name:    "bad date format",
			body:    `{"amount":-50,"description":"Lunch","date":"15/01/2024"}`,
			message: "Invalid date format. Please use YYYY-MM-DD format.",
		},
		{
			name:    "future date",
			body:    `{"amount":-50,"description":"Lunch","date":"2999-01-15"}`,
			message: "Transaction date cannot be in the future.",
		},
		{
			name:    "unknown type",
			body:    `{"amount":-50,"description":"Lunch","date":"2024-01-15","type":"transfer"}`,
			message: "Type must be either 'income' or 'expense'.",
		},
		{
			name:    "income with negative amount",
			body:    `{"amount":-50,"description":"Lunch","date":"2024-01-15","type":"income"}`,
			message: "Income transactions must have positive amounts.",
		},
		{
			name:    "expense with positive amount",
			body:    `{"amount":50,"description":"Lunch","date":"2024-01-15","type":"expense"}`,
			message: "Expense transactions should have negative amounts.",
		},
		{
			name:    "invalid category",
			body:    `{"amount":-50,"description":"Lunch","date":"2024-01-15","category":"Groceries"}`,
			message: "Invalid category. Please choose from: ",
		},
		{
			name:    "malformed body",
			body:    `{"amount":`,
			message: "Invalid request body",
		},
	}

	handler := CreateTransaction(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doJSON(t, handler, http.MethodPost, "/api/transactions", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
			assert.Contains(t, env.Message, tt.message)
		})
	}
}

func TestUpdateTransaction_InvalidID(t *testing.T) {
	rec, env := doJSON(t, UpdateTransaction(nil), http.MethodPut, "/api/transactions/abc", `{"amount":10}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid transaction ID.", env.Message)
}

func TestDeleteTransaction_InvalidID(t *testing.T) {
	rec, env := doJSON(t, DeleteTransaction(nil), http.MethodDelete, "/api/transactions/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid transaction ID.", env.Message)
}

func TestSeedTransactions_ForbiddenInProduction(t *testing.T) {
	cfg := config.Config{Environment: "production"}
	rec, env := doJSON(t, SeedTransactions(nil, cfg), http.MethodPost, "/api/transactions/seed", `{"count":10}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Seeding is not allowed in production", env.Message)
}

func TestSeedTransactions_CountCap(t *testing.T) {
	cfg := config.Config{Environment: "development"}
	rec, env := doJSON(t, SeedTransactions(nil, cfg), http.MethodPost, "/api/transactions/seed", `{"count":500}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Maximum 100 transactions allowed per request", env.Message)
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&limit=abc&zero=0&neg=-2", nil)

	assert.Equal(t, 3, queryInt(req, "page", 1))
	assert.Equal(t, 10, queryInt(req, "limit", 10))
	assert.Equal(t, 10, queryInt(req, "zero", 10))
	assert.Equal(t, 10, queryInt(req, "neg", 10))
	assert.Equal(t, 1, queryInt(req, "missing", 1))
}

func TestQueryString(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?sortBy=amount", nil)

	assert.Equal(t, "amount", queryString(req, "sortBy", "date"))
	assert.Equal(t, "desc", queryString(req, "sortOrder", "desc"))
}
