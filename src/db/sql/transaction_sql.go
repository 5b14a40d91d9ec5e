package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = "id, amount, description, date, category, type, created_at, updated_at"

// Sortable columns are whitelisted; anything else falls back to date.
var transactionSortColumns = map[string]string{
	"date":        "date",
	"amount":      "amount",
	"category":    "category",
	"description": "description",
	"createdAt":   "created_at",
}

type TransactionFilter struct {
	Category  string
	Type      string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.Amount, &t.Description, &t.Date, &t.Category, &t.Type, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	defer rows.Close()
	var transactions []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

func transactionWhere(f TransactionFilter) (string, []any) {
	var clauses []string
	var args []any
	if f.Category != "" {
		args = append(args, f.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		clauses = append(clauses, fmt.Sprintf("type = $%d", len(args)))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// ListTransactions returns one page of the filtered, sorted transaction list.
func ListTransactions(ctx context.Context, pool *pgxpool.Pool, f TransactionFilter) ([]models.Transaction, error) {
	where, args := transactionWhere(f)

	column, ok := transactionSortColumns[f.SortBy]
	if !ok {
		column = "date"
	}
	direction := "DESC"
	if f.SortOrder == "asc" {
		direction = "ASC"
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf("SELECT %s FROM transactions%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		transactionColumns, where, column, direction, len(args)-1, len(args))

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectTransactions(rows)
}

// CountTransactions counts the rows matching the filter.
func CountTransactions(ctx context.Context, pool *pgxpool.Pool, f TransactionFilter) (int, error) {
	where, args := transactionWhere(f)
	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM transactions"+where, args...).Scan(&count)
	return count, err
}

// GetAllTransactions fetches the full record set, newest first. Aggregation
// always runs over this snapshot.
func GetAllTransactions(ctx context.Context, pool *pgxpool.Pool) ([]models.Transaction, error) {
	query := fmt.Sprintf("SELECT %s FROM transactions ORDER BY date DESC, id DESC", transactionColumns)
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectTransactions(rows)
}

func GetTransactionByID(ctx context.Context, pool *pgxpool.Pool, id int64) (*models.Transaction, error) {
	query := fmt.Sprintf("SELECT %s FROM transactions WHERE id = $1", transactionColumns)
	return scanTransaction(pool.QueryRow(ctx, query, id))
}

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, t *models.Transaction) (*models.Transaction, error) {
	query := fmt.Sprintf(`
		INSERT INTO transactions (amount, description, date, category, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, transactionColumns)
	return scanTransaction(pool.QueryRow(ctx, query, t.Amount, t.Description, t.Date, t.Category, t.Type))
}

func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, t *models.Transaction) (*models.Transaction, error) {
	query := fmt.Sprintf(`
		UPDATE transactions
		SET amount = $1, description = $2, date = $3, category = $4, type = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING %s
	`, transactionColumns)
	return scanTransaction(pool.QueryRow(ctx, query, t.Amount, t.Description, t.Date, t.Category, t.Type, t.ID))
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, id int64) error {
	cmd, err := pool.Exec(ctx, "DELETE FROM transactions WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// GetMonthExpenses fetches expense transactions within [start, end],
// optionally restricted to one category.
func GetMonthExpenses(ctx context.Context, pool *pgxpool.Pool, category string, start, end time.Time) ([]models.Transaction, error) {
	query := fmt.Sprintf("SELECT %s FROM transactions WHERE amount < 0 AND date >= $1 AND date <= $2", transactionColumns)
	args := []any{start, end}
	if category != "" {
		args = append(args, category)
		query += " AND category = $3"
	}
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectTransactions(rows)
}

// DeleteAllTransactions wipes the table. Seeding only.
func DeleteAllTransactions(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "DELETE FROM transactions")
	return err
}

// InsertTransactions bulk-inserts seed rows.
func InsertTransactions(ctx context.Context, pool *pgxpool.Pool, transactions []models.Transaction) error {
	_, err := pool.CopyFrom(ctx,
		pgx.Identifier{"transactions"},
		[]string{"amount", "description", "date", "category", "type"},
		pgx.CopyFromSlice(len(transactions), func(i int) ([]any, error) {
			t := transactions[i]
			return []any{t.Amount, t.Description, t.Date, t.Category, t.Type}, nil
		}),
	)
	return err
}
