package analytics

import "fintrack-server/src/models"

// BudgetComparisonRow is one category's budget-vs-actual line. Variance is
// budgeted minus actual, so overspending shows as a negative variance.
type BudgetComparisonRow struct {
	Category           string  `json:"category"`
	Budgeted           float64 `json:"budgeted"`
	Actual             float64 `json:"actual"`
	Variance           float64 `json:"variance"`
	VariancePercentage float64 `json:"variancePercentage"`
	IsOverBudget       bool    `json:"isOverBudget"`
	PercentageUsed     float64 `json:"percentageUsed"`
}

// ComparisonSummary totals the comparison across categories.
type ComparisonSummary struct {
	TotalBudgeted         float64  `json:"totalBudgeted"`
	TotalActual           float64  `json:"totalActual"`
	TotalVariance         float64  `json:"totalVariance"`
	OverBudgetCategories  []string `json:"overBudgetCategories"`
	UnderBudgetCategories []string `json:"underBudgetCategories"`
}

// ActualSpendByCategory sums the absolute amounts of expense transactions per
// category. The returned key slice preserves encounter order so callers can
// iterate deterministically.
func ActualSpendByCategory(expenses []models.Transaction) (map[string]float64, []string) {
	spend := make(map[string]float64)
	var order []string
	for _, t := range expenses {
		if t.Amount >= 0 {
			continue
		}
		category := t.Category
		if category == "" {
			category = models.DefaultCategory
		}
		if _, ok := spend[category]; !ok {
			order = append(order, category)
		}
		spend[category] += -t.Amount
	}
	return spend, order
}

// CompareBudgets lines each budget up against actual spend from the month's
// expense transactions. Categories with spend but no budget get a sentinel
// row: budgeted 0, variancePercentage -100, percentageUsed 100, flagged over
// budget. The -100 is a fixed marker for unbudgeted spend, not a computed
// ratio.
func CompareBudgets(budgets []models.Budget, expenses []models.Transaction) ([]BudgetComparisonRow, ComparisonSummary) {
	spend, order := ActualSpendByCategory(expenses)

	budgeted := make(map[string]bool, len(budgets))
	rows := make([]BudgetComparisonRow, 0, len(budgets))
	var totalBudgeted float64

	for _, b := range budgets {
		budgeted[b.Category] = true
		totalBudgeted += b.Amount
		actual := spend[b.Category]
		variance := b.Amount - actual

		row := BudgetComparisonRow{
			Category:     b.Category,
			Budgeted:     Round2(b.Amount),
			Actual:       Round2(actual),
			Variance:     Round2(variance),
			IsOverBudget: actual > b.Amount,
		}
		if b.Amount > 0 {
			row.VariancePercentage = Round1(variance / b.Amount * 100)
			row.PercentageUsed = Round1(actual / b.Amount * 100)
		}
		rows = append(rows, row)
	}

	for _, category := range order {
		if budgeted[category] {
			continue
		}
		actual := spend[category]
		rows = append(rows, BudgetComparisonRow{
			Category:           category,
			Budgeted:           0,
			Actual:             Round2(actual),
			Variance:           Round2(-actual),
			VariancePercentage: -100,
			IsOverBudget:       true,
			PercentageUsed:     100,
		})
	}

	var totalActual float64
	for _, amount := range spend {
		totalActual += amount
	}

	summary := ComparisonSummary{
		TotalBudgeted:         Round2(totalBudgeted),
		TotalActual:           Round2(totalActual),
		TotalVariance:         Round2(totalBudgeted - totalActual),
		OverBudgetCategories:  []string{},
		UnderBudgetCategories: []string{},
	}
	for _, row := range rows {
		if row.IsOverBudget {
			summary.OverBudgetCategories = append(summary.OverBudgetCategories, row.Category)
		} else if row.Variance > 0 {
			summary.UnderBudgetCategories = append(summary.UnderBudgetCategories, row.Category)
		}
	}
	return rows, summary
}

// BudgetSummary totals a month's budget records using their stored (possibly
// stale) spent snapshots.
type BudgetSummary struct {
	TotalBudget    float64 `json:"totalBudget"`
	TotalSpent     float64 `json:"totalSpent"`
	TotalRemaining float64 `json:"totalRemaining"`
	PercentageUsed float64 `json:"percentageUsed"`
	IsOverBudget   bool    `json:"isOverBudget"`
}

func SummarizeBudgets(budgets []models.Budget) BudgetSummary {
	var totalBudget, totalSpent, totalRemaining float64
	for _, b := range budgets {
		totalBudget += b.Amount
		totalSpent += b.Spent
		totalRemaining += b.Remaining
	}
	s := BudgetSummary{
		TotalBudget:    Round2(totalBudget),
		TotalSpent:     Round2(totalSpent),
		TotalRemaining: Round2(totalRemaining),
		IsOverBudget:   totalSpent > totalBudget,
	}
	if totalBudget > 0 {
		s.PercentageUsed = Round1(totalSpent / totalBudget * 100)
	}
	return s
}
