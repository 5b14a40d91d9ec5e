package db

import (
	"context"
	"fmt"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetColumns = "id, category, amount, month, year, spent, remaining, percentage_used, is_over_budget, created_at, updated_at"

func scanBudget(row pgx.Row) (*models.Budget, error) {
	var b models.Budget
	err := row.Scan(&b.ID, &b.Category, &b.Amount, &b.Month, &b.Year, &b.Spent,
		&b.Remaining, &b.PercentageUsed, &b.IsOverBudget, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func CreateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) (*models.Budget, error) {
	query := fmt.Sprintf(`
		INSERT INTO budgets (category, amount, month, year, spent, remaining, percentage_used, is_over_budget)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, budgetColumns)
	return scanBudget(pool.QueryRow(ctx, query,
		budget.Category, budget.Amount, budget.Month, budget.Year,
		budget.Spent, budget.Remaining, budget.PercentageUsed, budget.IsOverBudget))
}

func GetBudgetByID(ctx context.Context, pool *pgxpool.Pool, id int64) (*models.Budget, error) {
	query := fmt.Sprintf("SELECT %s FROM budgets WHERE id = $1", budgetColumns)
	return scanBudget(pool.QueryRow(ctx, query, id))
}

// GetBudgetsForPeriod lists a month's budgets sorted by category.
func GetBudgetsForPeriod(ctx context.Context, pool *pgxpool.Pool, month string, year int) ([]models.Budget, error) {
	query := fmt.Sprintf("SELECT %s FROM budgets WHERE month = $1 AND year = $2 ORDER BY category", budgetColumns)
	rows, err := pool.Query(ctx, query, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, *b)
	}
	return budgets, rows.Err()
}

// BudgetExists reports whether a budget already holds the (category, month)
// pair. The unique index backs this check against concurrent creates.
func BudgetExists(ctx context.Context, pool *pgxpool.Pool, category, month string) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM budgets WHERE category = $1 AND month = $2)",
		category, month).Scan(&exists)
	return exists, err
}

func UpdateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) (*models.Budget, error) {
	query := fmt.Sprintf(`
		UPDATE budgets
		SET amount = $1, remaining = $2, percentage_used = $3, is_over_budget = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING %s
	`, budgetColumns)
	return scanBudget(pool.QueryRow(ctx, query,
		budget.Amount, budget.Remaining, budget.PercentageUsed, budget.IsOverBudget, budget.ID))
}

// DeleteBudget removes a budget and returns the deleted row.
func DeleteBudget(ctx context.Context, pool *pgxpool.Pool, id int64) (*models.Budget, error) {
	query := fmt.Sprintf("DELETE FROM budgets WHERE id = $1 RETURNING %s", budgetColumns)
	return scanBudget(pool.QueryRow(ctx, query, id))
}
