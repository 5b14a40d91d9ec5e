package models

// Single source of truth for category labels. Transactions accept the full
// set; budgets only accept the spending subset (no income-only labels).
var TransactionCategories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Healthcare",
	"Housing",
	"Utilities",
	"Education",
	"Travel",
	"Salary",
	"Freelance",
	"Investment",
	"Gifts",
	"Other",
	"Uncategorized",
}

var BudgetCategories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Healthcare",
	"Housing",
	"Utilities",
	"Education",
	"Travel",
	"Other",
}

const DefaultCategory = "Uncategorized"

func IsValidTransactionCategory(category string) bool {
	for _, c := range TransactionCategories {
		if c == category {
			return true
		}
	}
	return false
}

func IsValidBudgetCategory(category string) bool {
	for _, c := range BudgetCategories {
		if c == category {
			return true
		}
	}
	return false
}
