package models

import "time"

type Budget struct {
	ID             int64     `json:"id"`
	Category       string    `json:"category"`
	Amount         float64   `json:"amount"`
	Month          string    `json:"month"` // YYYY-MM
	Year           int       `json:"year"`
	Spent          float64   `json:"spent"`
	Remaining      float64   `json:"remaining"`
	PercentageUsed float64   `json:"percentageUsed"`
	IsOverBudget   bool      `json:"isOverBudget"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Recalculate refreshes the derived fields from Amount and Spent. It must be
// called immediately before every persist of a budget record. Spent itself is
// a snapshot taken at creation time and is never re-summed here.
func (b *Budget) Recalculate() {
	b.Remaining = b.Amount - b.Spent
	if b.Amount > 0 {
		b.PercentageUsed = b.Spent / b.Amount * 100
	} else {
		b.PercentageUsed = 0
	}
	b.IsOverBudget = b.Spent > b.Amount
}
