package models

import "time"

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type Transaction struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsIncome reports whether the transaction adds money. The sign of Amount
// is authoritative; Type must agree with it at write time.
func (t Transaction) IsIncome() bool {
	return t.Amount > 0
}

// TypeForAmount derives the transaction type from the sign of amount.
func TypeForAmount(amount float64) string {
	if amount > 0 {
		return TypeIncome
	}
	return TypeExpense
}

func IsValidTransactionType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}
