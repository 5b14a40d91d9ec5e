package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fintrack-server/src/config"
	"fintrack-server/src/db"
	sqldb "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/report"
	"fintrack-server/src/seed"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const maxSeedCount = 100

func invalidCategoryMessage() string {
	return "Invalid category. Please choose from: " + strings.Join(models.TransactionCategories, ", ")
}

// GetTransactions serves the paginated list with the full financial analysis
// computed over the entire record set.
func GetTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "page", 1)
		limit := queryInt(r, "limit", 10)
		sortBy := queryString(r, "sortBy", "date")
		sortOrder := queryString(r, "sortOrder", "desc")
		category := r.URL.Query().Get("category")
		txType := r.URL.Query().Get("type")

		cacheKey := fmt.Sprintf("transactions:%d:%d:%s:%s:%s:%s", page, limit, sortBy, sortOrder, category, txType)
		if cached, ok := db.GetReportCache(cacheKey); ok {
			writeJSON(w, http.StatusOK, report.OK(cached))
			return
		}

		filter := sqldb.TransactionFilter{
			Category:  category,
			Type:      txType,
			SortBy:    sortBy,
			SortOrder: sortOrder,
			Limit:     limit,
			Offset:    (page - 1) * limit,
		}

		transactions, err := sqldb.ListTransactions(r.Context(), pool, filter)
		if err != nil {
			logrus.Errorf("failed to list transactions: %v", err)
			serverError(w, "Failed to fetch transactions", err)
			return
		}
		total, err := sqldb.CountTransactions(r.Context(), pool, filter)
		if err != nil {
			logrus.Errorf("failed to count transactions: %v", err)
			serverError(w, "Failed to fetch transactions", err)
			return
		}
		all, err := sqldb.GetAllTransactions(r.Context(), pool)
		if err != nil {
			logrus.Errorf("failed to fetch transaction snapshot: %v", err)
			serverError(w, "Failed to fetch transactions", err)
			return
		}

		data := report.AssembleTransactionList(transactions, all, page, limit, total)
		db.SetReportCache(cacheKey, data)
		writeJSON(w, http.StatusOK, report.OK(data))
	}
}

// CreateTransaction validates and stores a new transaction, then responds
// with the recomputed financial summary.
func CreateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateTransactionRequest
		if err := decodeBody(r, &req); err != nil {
			badRequest(w, "Invalid request body")
			return
		}

		if req.Amount == nil || *req.Amount == 0 {
			badRequest(w, "Amount is required and cannot be zero.")
			return
		}
		amount := *req.Amount

		description := strings.TrimSpace(req.Description)
		if description == "" {
			badRequest(w, "Description is required.")
			return
		}
		if !util.ValidateDescription(description) {
			badRequest(w, "Description too long")
			return
		}

		if req.Date == "" {
			badRequest(w, "Date is required.")
			return
		}
		date, ok := util.ParseDate(req.Date)
		if !ok {
			badRequest(w, "Invalid date format. Please use YYYY-MM-DD format.")
			return
		}
		if !util.DateNotInFuture(date, time.Now()) {
			badRequest(w, "Transaction date cannot be in the future.")
			return
		}

		txType := req.Type
		if txType == "" {
			txType = models.TypeForAmount(amount)
		}
		if !models.IsValidTransactionType(txType) {
			badRequest(w, "Type must be either 'income' or 'expense'.")
			return
		}
		if txType == models.TypeIncome && amount < 0 {
			badRequest(w, "Income transactions must have positive amounts.")
			return
		}
		if txType == models.TypeExpense && amount > 0 {
			badRequest(w, "Expense transactions should have negative amounts.")
			return
		}

		category := req.Category
		if category == "" {
			category = models.DefaultCategory
		}
		if !models.IsValidTransactionCategory(category) {
			badRequest(w, invalidCategoryMessage())
			return
		}

		created, err := sqldb.CreateTransaction(r.Context(), pool, &models.Transaction{
			Amount:      amount,
			Description: description,
			Date:        date,
			Category:    category,
			Type:        txType,
		})
		if err != nil {
			logrus.Errorf("failed to create transaction: %v", err)
			serverError(w, "Failed to create transaction", err)
			return
		}
		db.ClearReportCaches()

		all, err := sqldb.GetAllTransactions(r.Context(), pool)
		if err != nil {
			logrus.Errorf("failed to fetch transaction snapshot: %v", err)
			serverError(w, "Failed to create transaction", err)
			return
		}

		logrus.Infof("created transaction id %d, category %s, amount %.2f", created.ID, created.Category, created.Amount)
		writeJSON(w, http.StatusCreated,
			report.OKWithMessage("Transaction created successfully", report.AssembleTransactionCreated(*created, all)))
	}
}

// UpdateTransaction applies a partial update; each supplied field is
// re-validated and the type is kept consistent with the effective amount.
func UpdateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			badRequest(w, "Invalid transaction ID.")
			return
		}

		var req models.UpdateTransactionRequest
		if err := decodeBody(r, &req); err != nil {
			badRequest(w, "Invalid request body")
			return
		}

		existing, err := sqldb.GetTransactionByID(r.Context(), pool, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				notFound(w, "Transaction not found")
				return
			}
			logrus.Errorf("failed to fetch transaction %d: %v", id, err)
			serverError(w, "Failed to update transaction", err)
			return
		}

		updated := *existing

		if req.Amount != nil {
			if *req.Amount == 0 {
				badRequest(w, "Amount cannot be zero.")
				return
			}
			updated.Amount = *req.Amount
		}

		if req.Description != nil {
			description := strings.TrimSpace(*req.Description)
			if description == "" {
				badRequest(w, "Description cannot be empty.")
				return
			}
			if !util.ValidateDescription(description) {
				badRequest(w, "Description too long")
				return
			}
			updated.Description = description
		}

		if req.Date != nil {
			date, ok := util.ParseDate(*req.Date)
			if !ok {
				badRequest(w, "Invalid date format. Please use YYYY-MM-DD format.")
				return
			}
			if !util.DateNotInFuture(date, time.Now()) {
				badRequest(w, "Transaction date cannot be in the future.")
				return
			}
			updated.Date = date
		}

		if req.Category != nil {
			if !models.IsValidTransactionCategory(*req.Category) {
				badRequest(w, invalidCategoryMessage())
				return
			}
			updated.Category = *req.Category
		}

		if req.Type != nil {
			if !models.IsValidTransactionType(*req.Type) {
				badRequest(w, "Type must be either 'income' or 'expense'.")
				return
			}
			updated.Type = *req.Type
		} else if req.Amount != nil {
			// Re-derive the type when the amount changes sign.
			updated.Type = models.TypeForAmount(updated.Amount)
		}

		if updated.Type == models.TypeIncome && updated.Amount < 0 {
			badRequest(w, "Income transactions must have positive amounts.")
			return
		}
		if updated.Type == models.TypeExpense && updated.Amount > 0 {
			badRequest(w, "Expense transactions should have negative amounts.")
			return
		}

		saved, err := sqldb.UpdateTransaction(r.Context(), pool, &updated)
		if err != nil {
			logrus.Errorf("failed to update transaction %d: %v", id, err)
			serverError(w, "Failed to update transaction", err)
			return
		}
		db.ClearReportCaches()

		all, err := sqldb.GetAllTransactions(r.Context(), pool)
		if err != nil {
			logrus.Errorf("failed to fetch transaction snapshot: %v", err)
			serverError(w, "Failed to update transaction", err)
			return
		}

		logrus.Infof("updated transaction id %d", saved.ID)
		writeJSON(w, http.StatusOK,
			report.OKWithMessage("Transaction updated successfully", report.AssembleTransactionUpdated(*saved, all)))
	}
}

func DeleteTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			badRequest(w, "Invalid transaction ID.")
			return
		}

		existing, err := sqldb.GetTransactionByID(r.Context(), pool, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				notFound(w, "Transaction not found")
				return
			}
			logrus.Errorf("failed to fetch transaction %d: %v", id, err)
			serverError(w, "Failed to delete transaction", err)
			return
		}

		if err := sqldb.DeleteTransaction(r.Context(), pool, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				notFound(w, "Transaction not found")
				return
			}
			logrus.Errorf("failed to delete transaction %d: %v", id, err)
			serverError(w, "Failed to delete transaction", err)
			return
		}
		db.ClearReportCaches()

		all, err := sqldb.GetAllTransactions(r.Context(), pool)
		if err != nil {
			logrus.Errorf("failed to fetch transaction snapshot: %v", err)
			serverError(w, "Failed to delete transaction", err)
			return
		}

		logrus.Infof("deleted transaction id %d", id)
		writeJSON(w, http.StatusOK,
			report.OKWithMessage("Transaction deleted successfully", report.AssembleTransactionDeleted(*existing, all)))
	}
}

// GetDashboardSummary serves summary cards, category breakdown, the five most
// recent transactions and the six-month trend.
func GetDashboardSummary(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const cacheKey = "dashboard"
		if cached, ok := db.GetReportCache(cacheKey); ok {
			writeJSON(w, http.StatusOK, report.OK(cached))
			return
		}

		all, err := sqldb.GetAllTransactions(r.Context(), pool)
		if err != nil {
			logrus.Errorf("failed to fetch transaction snapshot: %v", err)
			serverError(w, "Failed to fetch dashboard summary", err)
			return
		}

		data := report.AssembleDashboard(all, time.Now())
		db.SetReportCache(cacheKey, data)
		writeJSON(w, http.StatusOK, report.OK(data))
	}
}

// GetMonthlyExpensesChart serves the 12-entry zero-filled expense series for
// a year.
func GetMonthlyExpensesChart(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year := queryInt(r, "year", time.Now().Year())

		cacheKey := fmt.Sprintf("charts:monthly:%d", year)
		if cached, ok := db.GetReportCache(cacheKey); ok {
			writeJSON(w, http.StatusOK, report.OK(cached))
			return
		}

		all, err := sqldb.GetAllTransactions(r.Context(), pool)
		if err != nil {
			logrus.Errorf("failed to fetch transaction snapshot: %v", err)
			serverError(w, "Failed to fetch monthly expenses chart", err)
			return
		}

		data := report.AssembleMonthlyChart(all, year)
		db.SetReportCache(cacheKey, data)
		writeJSON(w, http.StatusOK, report.OK(data))
	}
}

// GetCategoryPieChart serves the category distribution for income or expense
// transactions.
func GetCategoryPieChart(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txType := queryString(r, "type", models.TypeExpense)
		if txType != models.TypeIncome {
			txType = models.TypeExpense
		}

		cacheKey := "charts:pie:" + txType
		if cached, ok := db.GetReportCache(cacheKey); ok {
			writeJSON(w, http.StatusOK, report.OK(cached))
			return
		}

		all, err := sqldb.GetAllTransactions(r.Context(), pool)
		if err != nil {
			logrus.Errorf("failed to fetch transaction snapshot: %v", err)
			serverError(w, "Failed to fetch category pie chart", err)
			return
		}

		data := report.AssembleCategoryPie(all, txType)
		db.SetReportCache(cacheKey, data)
		writeJSON(w, http.StatusOK, report.OK(data))
	}
}

// SeedTransactions replaces all transactions with randomized sample data.
// Disabled in production.
func SeedTransactions(pool *pgxpool.Pool, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfg.IsProduction() {
			writeJSON(w, http.StatusForbidden, report.Fail("Seeding is not allowed in production"))
			return
		}

		count := 20
		var req models.SeedRequest
		if err := decodeBody(r, &req); err == nil && req.Count != nil {
			count = *req.Count
		}
		if count > maxSeedCount {
			badRequest(w, fmt.Sprintf("Maximum %d transactions allowed per request", maxSeedCount))
			return
		}

		if err := sqldb.DeleteAllTransactions(r.Context(), pool); err != nil {
			logrus.Errorf("failed to clear transactions: %v", err)
			serverError(w, "Failed to seed database", err)
			return
		}
		if err := sqldb.InsertTransactions(r.Context(), pool, seed.Generate(count, time.Now())); err != nil {
			logrus.Errorf("failed to insert seed transactions: %v", err)
			serverError(w, "Failed to seed database", err)
			return
		}
		db.ClearReportCaches()

		all, err := sqldb.GetAllTransactions(r.Context(), pool)
		if err != nil {
			logrus.Errorf("failed to fetch transaction snapshot: %v", err)
			serverError(w, "Failed to seed database", err)
			return
		}

		logrus.Infof("seeded %d transactions", count)
		writeJSON(w, http.StatusOK,
			report.OKWithMessage(fmt.Sprintf("Successfully seeded %d transactions", count), report.AssembleSeedResult(count, all)))
	}
}
