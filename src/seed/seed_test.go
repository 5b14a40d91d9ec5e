package seed

import (
	"testing"
	"time"

	"fintrack-server/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	transactions := Generate(50, now)

	require.Len(t, transactions, 50)
	for _, tr := range transactions {
		assert.NotZero(t, tr.Amount)
		assert.NotEmpty(t, tr.Description)
		assert.True(t, models.IsValidTransactionCategory(tr.Category), "invalid category %q", tr.Category)
		assert.False(t, tr.Date.After(now), "seeded date in the future")
		assert.False(t, tr.Date.Before(now.AddDate(0, 0, -180)), "seeded date older than 180 days")

		if tr.Type == models.TypeIncome {
			assert.GreaterOrEqual(t, tr.Amount, 1000.0)
			assert.LessOrEqual(t, tr.Amount, 9999.0)
		} else {
			assert.Equal(t, models.TypeExpense, tr.Type)
			assert.GreaterOrEqual(t, tr.Amount, -499.0)
			assert.LessOrEqual(t, tr.Amount, -10.0)
			assert.True(t, models.IsValidBudgetCategory(tr.Category))
		}
	}
}

func TestGenerate_Zero(t *testing.T) {
	assert.Empty(t, Generate(0, time.Now()))
}

func TestGenerate_NegativeCount(t *testing.T) {
	assert.Empty(t, Generate(-5, time.Now()))
}
