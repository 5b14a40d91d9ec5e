// Package seed generates randomized sample transactions for development
// environments.
package seed

import (
	"math/rand"
	"time"

	"fintrack-server/src/models"
)

var incomeCategories = []string{
	"Salary",
	"Freelance",
	"Investment",
	"Gifts",
	"Other",
}

var expenseDescriptions = []string{
	"Grocery shopping",
	"Restaurant dinner",
	"Gas station",
	"Public transport",
	"Online shopping",
	"Movie tickets",
	"Doctor visit",
	"Course fees",
	"Rent payment",
	"Electricity bill",
	"Stock investment",
	"Birthday gift",
	"Vacation trip",
	"Coffee shop",
	"Gym membership",
	"Phone bill",
}

var incomeDescriptions = []string{
	"Monthly salary",
	"Freelance project",
	"Business income",
	"Investment returns",
	"Bonus payment",
	"Side hustle",
	"Consulting fee",
	"Rental income",
	"Dividend payment",
	"Refund",
}

// Generate produces count random transactions dated within the last 180
// days: roughly 30% income ($1000-$9999) and 70% expenses ($10-$499).
func Generate(count int, now time.Time) []models.Transaction {
	if count < 0 {
		count = 0
	}
	transactions := make([]models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		date := now.AddDate(0, 0, -rand.Intn(180))
		isIncome := rand.Float64() < 0.3

		var t models.Transaction
		if isIncome {
			t = models.Transaction{
				Amount:      float64(rand.Intn(9000) + 1000),
				Description: incomeDescriptions[rand.Intn(len(incomeDescriptions))],
				Category:    incomeCategories[rand.Intn(len(incomeCategories))],
				Type:        models.TypeIncome,
			}
		} else {
			t = models.Transaction{
				Amount:      -float64(rand.Intn(490) + 10),
				Description: expenseDescriptions[rand.Intn(len(expenseDescriptions))],
				Category:    models.BudgetCategories[rand.Intn(len(models.BudgetCategories))],
				Type:        models.TypeExpense,
			}
		}
		t.Date = date
		transactions = append(transactions, t)
	}
	return transactions
}
