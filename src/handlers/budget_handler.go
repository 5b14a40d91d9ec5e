package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fintrack-server/src/db"
	sqldb "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/report"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// targetPeriod resolves the month/year query parameters, defaulting to the
// current calendar month.
func targetPeriod(r *http.Request, now time.Time) (string, int) {
	month := queryString(r, "month", fmt.Sprintf("%04d-%02d", now.Year(), int(now.Month())))
	year := queryInt(r, "year", now.Year())
	return month, year
}

// monthBounds returns the first and last day of the month named by a YYYY-MM
// string, in the given year.
func monthBounds(month string, year int) (time.Time, time.Time, bool) {
	if !util.ValidateMonthFormat(month) {
		return time.Time{}, time.Time{}, false
	}
	monthNum, err := strconv.Atoi(month[5:])
	if err != nil || monthNum < 1 || monthNum > 12 {
		return time.Time{}, time.Time{}, false
	}
	start := time.Date(year, time.Month(monthNum), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end, true
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// GetBudgets lists a month's budgets with totals and insight messages.
func GetBudgets(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, year := targetPeriod(r, time.Now())

		cacheKey := fmt.Sprintf("budgets:%s:%d", month, year)
		if cached, ok := db.GetReportCache(cacheKey); ok {
			writeJSON(w, http.StatusOK, report.OK(cached))
			return
		}

		budgets, err := sqldb.GetBudgetsForPeriod(r.Context(), pool, month, year)
		if err != nil {
			logrus.Errorf("failed to fetch budgets for %s: %v", month, err)
			serverError(w, "Failed to fetch budgets", err)
			return
		}

		data := report.AssembleBudgetList(month, year, budgets)
		db.SetReportCache(cacheKey, data)
		writeJSON(w, http.StatusOK, report.OK(data))
	}
}

// CreateBudget stores one budget per (category, month). The spent snapshot
// is summed from the month's expense transactions at creation time and is
// not kept in sync afterward.
func CreateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateBudgetRequest
		if err := decodeBody(r, &req); err != nil {
			badRequest(w, "Invalid request body")
			return
		}

		if req.Category == "" || req.Amount == nil || *req.Amount == 0 || req.Month == "" || req.Year == nil {
			badRequest(w, "Category, amount, month, and year are required")
			return
		}
		if *req.Amount < 0 {
			badRequest(w, "Budget amount must be greater than zero")
			return
		}
		if !util.ValidateMonthFormat(req.Month) {
			badRequest(w, "Month must be in YYYY-MM format")
			return
		}
		if !models.IsValidBudgetCategory(req.Category) {
			badRequest(w, "Please select a valid category")
			return
		}

		exists, err := sqldb.BudgetExists(r.Context(), pool, req.Category, req.Month)
		if err != nil {
			logrus.Errorf("failed to check budget existence: %v", err)
			serverError(w, "Failed to create budget", err)
			return
		}
		if exists {
			badRequest(w, fmt.Sprintf("Budget for %s in %s already exists", req.Category, req.Month))
			return
		}

		start, end, ok := monthBounds(req.Month, *req.Year)
		if !ok {
			badRequest(w, "Month must be in YYYY-MM format")
			return
		}
		expenses, err := sqldb.GetMonthExpenses(r.Context(), pool, req.Category, start, end)
		if err != nil {
			logrus.Errorf("failed to sum spend for %s: %v", req.Category, err)
			serverError(w, "Failed to create budget", err)
			return
		}
		var spent float64
		for _, t := range expenses {
			spent += -t.Amount
		}

		budget := models.Budget{
			Category: req.Category,
			Amount:   *req.Amount,
			Month:    req.Month,
			Year:     *req.Year,
			Spent:    spent,
		}
		budget.Recalculate()

		created, err := sqldb.CreateBudget(r.Context(), pool, &budget)
		if err != nil {
			if isUniqueViolation(err) {
				badRequest(w, fmt.Sprintf("Budget for %s in %s already exists", req.Category, req.Month))
				return
			}
			logrus.Errorf("failed to create budget: %v", err)
			serverError(w, "Failed to create budget", err)
			return
		}
		db.ClearReportCaches()

		logrus.Infof("created budget id %d for %s in %s", created.ID, created.Category, created.Month)
		writeJSON(w, http.StatusCreated,
			report.OKWithMessage("Budget created successfully", report.AssembleBudgetCreated(*created)))
	}
}

// UpdateBudget changes only the budget amount. The derived fields re-derive
// from the stored spent snapshot; transactions are not re-summed.
func UpdateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			badRequest(w, "Invalid budget ID.")
			return
		}

		var req models.UpdateBudgetRequest
		if err := decodeBody(r, &req); err != nil {
			badRequest(w, "Invalid request body")
			return
		}
		if req.Amount == nil || *req.Amount <= 0 {
			badRequest(w, "Budget amount must be greater than zero")
			return
		}

		budget, err := sqldb.GetBudgetByID(r.Context(), pool, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				notFound(w, "Budget not found")
				return
			}
			logrus.Errorf("failed to fetch budget %d: %v", id, err)
			serverError(w, "Failed to update budget", err)
			return
		}

		budget.Amount = *req.Amount
		budget.Recalculate()

		updated, err := sqldb.UpdateBudget(r.Context(), pool, budget)
		if err != nil {
			logrus.Errorf("failed to update budget %d: %v", id, err)
			serverError(w, "Failed to update budget", err)
			return
		}
		db.ClearReportCaches()

		logrus.Infof("updated budget id %d", updated.ID)
		writeJSON(w, http.StatusOK,
			report.OKWithMessage("Budget updated successfully", report.AssembleBudgetUpdated(*updated)))
	}
}

func DeleteBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			badRequest(w, "Invalid budget ID.")
			return
		}

		deleted, err := sqldb.DeleteBudget(r.Context(), pool, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				notFound(w, "Budget not found")
				return
			}
			logrus.Errorf("failed to delete budget %d: %v", id, err)
			serverError(w, "Failed to delete budget", err)
			return
		}
		db.ClearReportCaches()

		logrus.Infof("deleted budget id %d", id)
		writeJSON(w, http.StatusOK,
			report.OKWithMessage("Budget deleted successfully", report.AssembleBudgetDeleted(*deleted)))
	}
}

// GetBudgetComparison serves budget-vs-actual rows for a month, including
// sentinel rows for categories with spend but no budget.
func GetBudgetComparison(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, year := targetPeriod(r, time.Now())

		cacheKey := fmt.Sprintf("budgets:comparison:%s:%d", month, year)
		if cached, ok := db.GetReportCache(cacheKey); ok {
			writeJSON(w, http.StatusOK, report.OK(cached))
			return
		}

		start, end, ok := monthBounds(month, year)
		if !ok {
			badRequest(w, "Month must be in YYYY-MM format")
			return
		}

		budgets, err := sqldb.GetBudgetsForPeriod(r.Context(), pool, month, year)
		if err != nil {
			logrus.Errorf("failed to fetch budgets for %s: %v", month, err)
			serverError(w, "Failed to fetch budget comparison", err)
			return
		}
		expenses, err := sqldb.GetMonthExpenses(r.Context(), pool, "", start, end)
		if err != nil {
			logrus.Errorf("failed to fetch expenses for %s: %v", month, err)
			serverError(w, "Failed to fetch budget comparison", err)
			return
		}

		data := report.AssembleBudgetComparison(month, year, budgets, expenses)
		db.SetReportCache(cacheKey, data)
		writeJSON(w, http.StatusOK, report.OK(data))
	}
}
