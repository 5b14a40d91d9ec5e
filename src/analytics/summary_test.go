package analytics

import (
	"testing"
	"time"

	"fintrack-server/src/models"

	"github.com/stretchr/testify/assert"
)

func tx(amount float64, category string, date string) models.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	return models.Transaction{
		Amount:   amount,
		Category: category,
		Type:     models.TypeForAmount(amount),
		Date:     d,
	}
}

func TestSummarize(t *testing.T) {
	transactions := []models.Transaction{
		tx(1000, "Salary", "2024-01-05"),
		tx(-200, "Food & Dining", "2024-01-10"),
	}

	s := Summarize(transactions)

	assert.Equal(t, 1000.0, s.TotalIncome)
	assert.Equal(t, 200.0, s.TotalExpenses)
	assert.Equal(t, 800.0, s.NetIncome)
	assert.Equal(t, 1000.0, s.AverageIncome)
	assert.Equal(t, 200.0, s.AverageExpense)
	assert.Equal(t, 2, s.TotalTransactions)
	assert.Equal(t, 1, s.IncomeCount)
	assert.Equal(t, 1, s.ExpenseCount)
}

func TestSummarize_NetIdentity(t *testing.T) {
	transactions := []models.Transaction{
		tx(2500.50, "Salary", "2024-01-01"),
		tx(1200.25, "Freelance", "2024-02-01"),
		tx(-300.75, "Housing", "2024-01-15"),
		tx(-99.99, "Shopping", "2024-02-20"),
		tx(-0.01, "Other", "2024-03-01"),
	}

	s := Summarize(transactions)

	assert.Equal(t, s.NetIncome, s.TotalIncome-s.TotalExpenses)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0.0, s.TotalIncome)
	assert.Equal(t, 0.0, s.TotalExpenses)
	assert.Equal(t, 0.0, s.NetIncome)
	assert.Equal(t, 0.0, s.AverageIncome)
	assert.Equal(t, 0.0, s.AverageExpense)
	assert.Equal(t, 0, s.TotalTransactions)
}

func TestSummarize_Averages(t *testing.T) {
	transactions := []models.Transaction{
		tx(100, "Salary", "2024-01-01"),
		tx(200, "Salary", "2024-01-02"),
		tx(-30, "Shopping", "2024-01-03"),
		tx(-60, "Shopping", "2024-01-04"),
		tx(-90, "Shopping", "2024-01-05"),
	}

	s := Summarize(transactions)

	assert.Equal(t, 150.0, s.AverageIncome)
	assert.Equal(t, 60.0, s.AverageExpense)
}

func TestSavingsRate(t *testing.T) {
	tests := []struct {
		name        string
		netIncome   float64
		totalIncome float64
		want        float64
	}{
		{name: "positive rate", netIncome: 800, totalIncome: 1000, want: 80},
		{name: "zero income", netIncome: 0, totalIncome: 0, want: 0},
		{name: "negative net", netIncome: -100, totalIncome: 1000, want: -10},
		{name: "rounded to one decimal", netIncome: 1, totalIncome: 3, want: 33.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SavingsRate(tt.netIncome, tt.totalIncome))
		})
	}
}

func TestIsHealthy(t *testing.T) {
	assert.True(t, IsHealthy(500, 25))
	assert.False(t, IsHealthy(500, 20))
	assert.False(t, IsHealthy(-100, 50))
	assert.False(t, IsHealthy(0, 0))
}
