package analytics

import "fintrack-server/src/models"

// Summary holds the top-level income/expense totals for a set of
// transactions. TotalExpenses is the absolute value of the expense sum, so
// NetIncome = TotalIncome - TotalExpenses.
type Summary struct {
	TotalIncome       float64 `json:"totalIncome"`
	TotalExpenses     float64 `json:"totalExpenses"`
	NetIncome         float64 `json:"netIncome"`
	AverageIncome     float64 `json:"averageIncome"`
	AverageExpense    float64 `json:"averageExpense"`
	TotalTransactions int     `json:"totalTransactions"`
	IncomeCount       int     `json:"incomeCount"`
	ExpenseCount      int     `json:"expenseCount"`
}

// Summarize partitions transactions by amount sign and computes totals and
// averages. An empty input yields an all-zero summary, never NaN.
func Summarize(transactions []models.Transaction) Summary {
	var incomeSum, expenseSum float64
	var incomeCount, expenseCount int

	for _, t := range transactions {
		if t.Amount > 0 {
			incomeSum += t.Amount
			incomeCount++
		} else if t.Amount < 0 {
			expenseSum += t.Amount
			expenseCount++
		}
	}

	totalExpenses := -expenseSum
	s := Summary{
		TotalIncome:       Round2(incomeSum),
		TotalExpenses:     Round2(totalExpenses),
		NetIncome:         Round2(incomeSum - totalExpenses),
		TotalTransactions: len(transactions),
		IncomeCount:       incomeCount,
		ExpenseCount:      expenseCount,
	}
	if incomeCount > 0 {
		s.AverageIncome = Round2(incomeSum / float64(incomeCount))
	}
	if expenseCount > 0 {
		s.AverageExpense = Round2(totalExpenses / float64(expenseCount))
	}
	return s
}

// SavingsRate is netIncome as a percentage of totalIncome, 0 when there is
// no income.
func SavingsRate(netIncome, totalIncome float64) float64 {
	if totalIncome <= 0 {
		return 0
	}
	return Round1(netIncome / totalIncome * 100)
}

// IsHealthy is the fixed heuristic for healthy finances: positive net income
// and a savings rate above 20%.
func IsHealthy(netIncome, savingsRate float64) bool {
	return netIncome > 0 && savingsRate > 20
}
