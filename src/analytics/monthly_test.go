package analytics

import (
	"testing"
	"time"

	"fintrack-server/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdownByMonth(t *testing.T) {
	transactions := []models.Transaction{
		tx(1000, "Salary", "2024-01-05"),
		tx(-200, "Food & Dining", "2024-01-10"),
		tx(-300, "Housing", "2024-02-01"),
	}

	months := BreakdownByMonth(transactions)

	require.Len(t, months, 2)
	assert.Equal(t, "2024-02", months[0].MonthKey)
	assert.Equal(t, "February 2024", months[0].Month)
	assert.Equal(t, 300.0, months[0].Expenses)
	assert.Equal(t, -300.0, months[0].NetIncome)

	assert.Equal(t, "2024-01", months[1].MonthKey)
	assert.Equal(t, 1000.0, months[1].Income)
	assert.Equal(t, 200.0, months[1].Expenses)
	assert.Equal(t, 800.0, months[1].NetIncome)
	assert.Equal(t, 2, months[1].Count)
}

func TestBreakdownByMonth_SortedNewestFirst(t *testing.T) {
	transactions := []models.Transaction{
		tx(-10, "Other", "2023-12-31"),
		tx(-10, "Other", "2024-03-01"),
		tx(-10, "Other", "2024-01-15"),
	}

	months := BreakdownByMonth(transactions)

	require.Len(t, months, 3)
	assert.Equal(t, "2024-03", months[0].MonthKey)
	assert.Equal(t, "2024-01", months[1].MonthKey)
	assert.Equal(t, "2023-12", months[2].MonthKey)
}

func TestSpendingTrend(t *testing.T) {
	tests := []struct {
		name          string
		breakdown     []MonthStat
		wantTrend     float64
		wantDirection string
		wantMonths    int
	}{
		{
			name: "increasing",
			breakdown: []MonthStat{
				{MonthKey: "2024-03", Expenses: 300},
				{MonthKey: "2024-02", Expenses: 250},
				{MonthKey: "2024-01", Expenses: 200},
			},
			wantTrend:     50,
			wantDirection: "increasing",
			wantMonths:    3,
		},
		{
			name: "decreasing",
			breakdown: []MonthStat{
				{MonthKey: "2024-02", Expenses: 100},
				{MonthKey: "2024-01", Expenses: 200},
			},
			wantTrend:     -50,
			wantDirection: "decreasing",
			wantMonths:    2,
		},
		{
			name: "stable",
			breakdown: []MonthStat{
				{MonthKey: "2024-02", Expenses: 200},
				{MonthKey: "2024-01", Expenses: 200},
			},
			wantTrend:     0,
			wantDirection: "stable",
			wantMonths:    2,
		},
		{
			name:          "single month",
			breakdown:     []MonthStat{{MonthKey: "2024-01", Expenses: 200}},
			wantTrend:     0,
			wantDirection: "stable",
			wantMonths:    1,
		},
		{
			name:          "empty",
			breakdown:     nil,
			wantTrend:     0,
			wantDirection: "stable",
			wantMonths:    0,
		},
		{
			name: "oldest month zero expenses",
			breakdown: []MonthStat{
				{MonthKey: "2024-02", Expenses: 100},
				{MonthKey: "2024-01", Expenses: 0},
			},
			wantTrend:     0,
			wantDirection: "stable",
			wantMonths:    2,
		},
		{
			name: "uses only six most recent months",
			breakdown: []MonthStat{
				{MonthKey: "2024-08", Expenses: 400},
				{MonthKey: "2024-07", Expenses: 100},
				{MonthKey: "2024-06", Expenses: 100},
				{MonthKey: "2024-05", Expenses: 100},
				{MonthKey: "2024-04", Expenses: 100},
				{MonthKey: "2024-03", Expenses: 200},
				{MonthKey: "2024-02", Expenses: 999},
			},
			wantTrend:     100,
			wantDirection: "increasing",
			wantMonths:    6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := SpendingTrend(tt.breakdown)
			assert.Equal(t, tt.wantTrend, trend.SpendingTrend)
			assert.Equal(t, tt.wantDirection, trend.TrendDirection)
			assert.Equal(t, tt.wantMonths, trend.MonthsAnalyzed)
		})
	}
}

func TestMonthlyExpensesChart_Always12Entries(t *testing.T) {
	entries, _ := MonthlyExpensesChart(nil, 2024)

	require.Len(t, entries, 12)
	for i, e := range entries {
		assert.Equal(t, i+1, e.MonthNumber)
		assert.Equal(t, 0.0, e.Expenses)
		assert.Equal(t, 0, e.TransactionCount)
		assert.Equal(t, 0.0, e.AverageExpense)
	}
	assert.Equal(t, "Jan", entries[0].Month)
	assert.Equal(t, "Dec", entries[11].Month)
}

func TestMonthlyExpensesChart(t *testing.T) {
	transactions := []models.Transaction{
		tx(-100, "Housing", "2024-03-01"),
		tx(-50, "Shopping", "2024-03-15"),
		tx(-75, "Travel", "2024-07-04"),
		tx(-999, "Housing", "2023-03-01"), // wrong year
		tx(500, "Salary", "2024-03-20"),   // income excluded
	}

	entries, summary := MonthlyExpensesChart(transactions, 2024)

	require.Len(t, entries, 12)
	march := entries[2]
	assert.Equal(t, 150.0, march.Expenses)
	assert.Equal(t, 2, march.TransactionCount)
	assert.Equal(t, 75.0, march.AverageExpense)

	july := entries[6]
	assert.Equal(t, 75.0, july.Expenses)

	assert.Equal(t, 225.0, summary.TotalYearlyExpenses)
	assert.Equal(t, 18.75, summary.AverageMonthlyExpenses)
	assert.Equal(t, 3, summary.HighestExpenseMonth.MonthNumber)
	assert.Equal(t, 0.0, summary.LowestExpenseMonth.Expenses)
}

func TestRecentMonthlyTrend(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		tx(1000, "Salary", "2024-06-01"),
		tx(-200, "Housing", "2024-06-05"),
		tx(-100, "Shopping", "2024-01-10"),
		tx(-999, "Other", "2023-11-01"), // outside the window
	}

	points := RecentMonthlyTrend(transactions, now, 6)

	require.Len(t, points, 6)
	assert.Equal(t, "Jan 2024", points[0].Month)
	assert.Equal(t, 100.0, points[0].Expenses)
	assert.Equal(t, "Jun 2024", points[5].Month)
	assert.Equal(t, 1000.0, points[5].Income)
	assert.Equal(t, 800.0, points[5].NetIncome)

	// Months with no activity are zero-filled.
	assert.Equal(t, 0.0, points[1].Income)
	assert.Equal(t, 0.0, points[1].Expenses)
}

func TestRecentMonthlyTrend_YearBoundary(t *testing.T) {
	now := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	points := RecentMonthlyTrend(nil, now, 6)

	require.Len(t, points, 6)
	assert.Equal(t, "Sep 2023", points[0].Month)
	assert.Equal(t, "Feb 2024", points[5].Month)
}
