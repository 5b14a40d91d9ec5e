package analytics

import (
	"sort"

	"fintrack-server/src/models"
)

// CategoryStat accumulates one category's activity. Percentage is the
// category's expense share of all expenses, not of all activity.
type CategoryStat struct {
	Name        string  `json:"name"`
	TotalAmount float64 `json:"totalAmount"`
	Count       int     `json:"count"`
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Percentage  float64 `json:"percentage"`
}

// AnalyzeCategories groups transactions by category and returns stats sorted
// by expense total, highest first. Grouping preserves encounter order so ties
// keep their original relative position. A missing category counts as
// "Uncategorized".
func AnalyzeCategories(transactions []models.Transaction) []CategoryStat {
	index := make(map[string]int)
	var stats []CategoryStat
	var totalExpenses float64

	for _, t := range transactions {
		category := t.Category
		if category == "" {
			category = models.DefaultCategory
		}
		i, ok := index[category]
		if !ok {
			i = len(stats)
			index[category] = i
			stats = append(stats, CategoryStat{Name: category})
		}
		stats[i].Count++
		stats[i].TotalAmount += t.Amount
		if t.Amount > 0 {
			stats[i].Income += t.Amount
		} else {
			stats[i].Expenses += -t.Amount
			totalExpenses += -t.Amount
		}
	}

	for i := range stats {
		if totalExpenses > 0 {
			stats[i].Percentage = stats[i].Expenses / totalExpenses * 100
		}
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].Expenses > stats[b].Expenses
	})

	for i := range stats {
		stats[i].TotalAmount = Round2(stats[i].TotalAmount)
		stats[i].Income = Round2(stats[i].Income)
		stats[i].Expenses = Round2(stats[i].Expenses)
		stats[i].Percentage = Round1(stats[i].Percentage)
	}
	return stats
}

// PieSlice is one category's share of a single transaction type.
type PieSlice struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"totalAmount"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
}

// PieDistribution groups one side of the ledger (income or expense) by
// category. Amounts are absolute values; percentages are shares of the grand
// total, 0 when the total is 0. Result is sorted by amount, highest first.
func PieDistribution(transactions []models.Transaction, txType string) []PieSlice {
	index := make(map[string]int)
	var slices []PieSlice
	var grandTotal float64

	for _, t := range transactions {
		if txType == models.TypeIncome {
			if t.Amount <= 0 {
				continue
			}
		} else if t.Amount >= 0 {
			continue
		}

		category := t.Category
		if category == "" {
			category = models.DefaultCategory
		}
		amount := t.Amount
		if amount < 0 {
			amount = -amount
		}
		i, ok := index[category]
		if !ok {
			i = len(slices)
			index[category] = i
			slices = append(slices, PieSlice{Category: category})
		}
		slices[i].TotalAmount += amount
		slices[i].Count++
		grandTotal += amount
	}

	for i := range slices {
		if grandTotal > 0 {
			slices[i].Percentage = Round1(slices[i].TotalAmount / grandTotal * 100)
		}
		slices[i].TotalAmount = Round2(slices[i].TotalAmount)
	}

	sort.SliceStable(slices, func(a, b int) bool {
		return slices[a].TotalAmount > slices[b].TotalAmount
	})
	return slices
}

// PieTotal sums the absolute amounts of one transaction type.
func PieTotal(transactions []models.Transaction, txType string) (total float64, count int) {
	for _, t := range transactions {
		if txType == models.TypeIncome {
			if t.Amount > 0 {
				total += t.Amount
				count++
			}
		} else if t.Amount < 0 {
			total += -t.Amount
			count++
		}
	}
	return Round2(total), count
}
