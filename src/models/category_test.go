package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorySets(t *testing.T) {
	assert.Len(t, TransactionCategories, 15)
	assert.Len(t, BudgetCategories, 10)

	// Budget categories are a strict subset of transaction categories.
	for _, c := range BudgetCategories {
		assert.True(t, IsValidTransactionCategory(c), "budget category %q missing from transaction set", c)
	}
}

func TestIsValidTransactionCategory(t *testing.T) {
	assert.True(t, IsValidTransactionCategory("Food & Dining"))
	assert.True(t, IsValidTransactionCategory("Salary"))
	assert.True(t, IsValidTransactionCategory("Uncategorized"))
	assert.False(t, IsValidTransactionCategory("Groceries"))
	assert.False(t, IsValidTransactionCategory(""))
}

func TestIsValidBudgetCategory(t *testing.T) {
	assert.True(t, IsValidBudgetCategory("Food & Dining"))
	assert.True(t, IsValidBudgetCategory("Other"))
	// Income-only labels cannot carry a budget.
	assert.False(t, IsValidBudgetCategory("Salary"))
	assert.False(t, IsValidBudgetCategory("Freelance"))
	assert.False(t, IsValidBudgetCategory("Uncategorized"))
}

func TestTypeForAmount(t *testing.T) {
	assert.Equal(t, TypeIncome, TypeForAmount(100))
	assert.Equal(t, TypeExpense, TypeForAmount(-100))
}
