package handlers

import (
	"net/http"
	"time"

	"fintrack-server/src/models"
)

const apiVersion = "2.0.0"

// APIRoot describes the service and its endpoints.
func APIRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success":     true,
			"message":     "Personal Finance Tracker API",
			"version":     apiVersion,
			"description": "A comprehensive API for personal finance tracking, budgeting, and analytics",
			"endpoints": map[string]string{
				"GET /":                                        "API documentation and overview",
				"GET /health":                                  "Server health check",
				"GET /api/status":                              "API operational status",
				"GET /api/transactions":                        "Get all transactions with financial insights",
				"GET /api/transactions/dashboard":              "Get dashboard summary with charts",
				"GET /api/transactions/charts/monthly-expenses": "Get monthly expenses chart data",
				"GET /api/transactions/charts/category-pie":    "Get category pie chart data",
				"POST /api/transactions":                       "Create new transaction",
				"PUT /api/transactions/{id}":                   "Update transaction",
				"DELETE /api/transactions/{id}":                "Delete transaction",
				"GET /api/budgets":                             "Get all budgets for a month",
				"GET /api/budgets/comparison":                  "Get budget vs actual comparison",
				"POST /api/budgets":                            "Create new budget",
				"PUT /api/budgets/{id}":                        "Update budget",
				"DELETE /api/budgets/{id}":                     "Delete budget",
			},
			"categories": models.TransactionCategories,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// APIStatus reports that the service is operational.
func APIStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"message":   "API is operational",
			"version":   apiVersion,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// NotFound is the JSON 404 fallback.
func NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "Route not found",
			"path":    r.URL.Path,
		})
	}
}
