package analytics

import (
	"fmt"
	"sort"
	"time"

	"fintrack-server/src/models"
)

// MonthStat is one calendar month's activity. MonthKey is zero-padded
// YYYY-MM, so a lexicographic sort is a chronological sort.
type MonthStat struct {
	Month     string  `json:"month"`
	MonthKey  string  `json:"monthKey"`
	Income    float64 `json:"income"`
	Expenses  float64 `json:"expenses"`
	NetIncome float64 `json:"netIncome"`
	Count     int     `json:"count"`
}

func monthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// BreakdownByMonth groups transactions by calendar month, newest month first.
func BreakdownByMonth(transactions []models.Transaction) []MonthStat {
	index := make(map[string]int)
	var months []MonthStat

	for _, t := range transactions {
		key := monthKey(t.Date)
		i, ok := index[key]
		if !ok {
			i = len(months)
			index[key] = i
			months = append(months, MonthStat{
				Month:    t.Date.Format("January 2006"),
				MonthKey: key,
			})
		}
		months[i].Count++
		if t.Amount > 0 {
			months[i].Income += t.Amount
		} else {
			months[i].Expenses += -t.Amount
		}
	}

	sort.Slice(months, func(a, b int) bool {
		return months[a].MonthKey > months[b].MonthKey
	})

	for i := range months {
		months[i].Income = Round2(months[i].Income)
		months[i].Expenses = Round2(months[i].Expenses)
		months[i].NetIncome = Round2(months[i].Income - months[i].Expenses)
	}
	return months
}

// Trend describes how spending moved over the recent months.
type Trend struct {
	SpendingTrend  float64 `json:"spendingTrend"`
	TrendDirection string  `json:"trendDirection"`
	MonthsAnalyzed int     `json:"monthsAnalyzed"`
}

// SpendingTrend compares the newest of the most recent six months against the
// oldest. Input must be sorted newest first (BreakdownByMonth output). Fewer
// than two months, or an oldest month with zero expenses, yields a 0 trend.
func SpendingTrend(breakdown []MonthStat) Trend {
	recent := breakdown
	if len(recent) > 6 {
		recent = recent[:6]
	}

	var pct float64
	if len(recent) > 1 {
		newest := recent[0].Expenses
		oldest := recent[len(recent)-1].Expenses
		if oldest != 0 {
			pct = (newest - oldest) / oldest * 100
		}
	}

	direction := "stable"
	if pct > 0 {
		direction = "increasing"
	} else if pct < 0 {
		direction = "decreasing"
	}
	return Trend{
		SpendingTrend:  Round1(pct),
		TrendDirection: direction,
		MonthsAnalyzed: len(recent),
	}
}

// MonthlyExpense is one bar of the monthly expenses chart.
type MonthlyExpense struct {
	Month            string  `json:"month"`
	MonthNumber      int     `json:"monthNumber"`
	Expenses         float64 `json:"expenses"`
	TransactionCount int     `json:"transactionCount"`
	AverageExpense   float64 `json:"averageExpense"`
}

// YearlyExpenseSummary aggregates the 12 chart entries.
type YearlyExpenseSummary struct {
	TotalYearlyExpenses    float64        `json:"totalYearlyExpenses"`
	AverageMonthlyExpenses float64        `json:"averageMonthlyExpenses"`
	HighestExpenseMonth    MonthlyExpense `json:"highestExpenseMonth"`
	LowestExpenseMonth     MonthlyExpense `json:"lowestExpenseMonth"`
}

// MonthlyExpensesChart buckets expense transactions of one year into exactly
// 12 entries, zero-filled for months with no activity.
func MonthlyExpensesChart(transactions []models.Transaction, year int) ([]MonthlyExpense, YearlyExpenseSummary) {
	entries := make([]MonthlyExpense, 12)
	for m := 0; m < 12; m++ {
		entries[m] = MonthlyExpense{
			Month:       time.Date(year, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC).Format("Jan"),
			MonthNumber: m + 1,
		}
	}

	for _, t := range transactions {
		if t.Amount >= 0 || t.Date.Year() != year {
			continue
		}
		e := &entries[int(t.Date.Month())-1]
		e.Expenses += -t.Amount
		e.TransactionCount++
	}

	var total float64
	for i := range entries {
		total += entries[i].Expenses
		if entries[i].TransactionCount > 0 {
			entries[i].AverageExpense = Round2(entries[i].Expenses / float64(entries[i].TransactionCount))
		}
		entries[i].Expenses = Round2(entries[i].Expenses)
	}

	summary := YearlyExpenseSummary{
		TotalYearlyExpenses:    Round2(total),
		AverageMonthlyExpenses: Round2(total / 12),
		HighestExpenseMonth:    entries[0],
		LowestExpenseMonth:     entries[0],
	}
	for _, e := range entries[1:] {
		if e.Expenses > summary.HighestExpenseMonth.Expenses {
			summary.HighestExpenseMonth = e
		}
		if e.Expenses < summary.LowestExpenseMonth.Expenses {
			summary.LowestExpenseMonth = e
		}
	}
	return entries, summary
}

// TrendPoint is one month of the dashboard trend line.
type TrendPoint struct {
	Month     string  `json:"month"`
	Income    float64 `json:"income"`
	Expenses  float64 `json:"expenses"`
	NetIncome float64 `json:"netIncome"`
}

// RecentMonthlyTrend returns the last n calendar months ending at now, oldest
// first, including months with no activity.
func RecentMonthlyTrend(transactions []models.Transaction, now time.Time, n int) []TrendPoint {
	sums := make(map[string]*TrendPoint)
	points := make([]TrendPoint, 0, n)

	for i := n - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		points = append(points, TrendPoint{Month: month.Format("Jan 2006")})
		sums[monthKey(month)] = &points[len(points)-1]
	}

	for _, t := range transactions {
		p, ok := sums[monthKey(t.Date)]
		if !ok {
			continue
		}
		if t.Amount > 0 {
			p.Income += t.Amount
		} else {
			p.Expenses += -t.Amount
		}
	}

	for i := range points {
		points[i].Income = Round2(points[i].Income)
		points[i].Expenses = Round2(points[i].Expenses)
		points[i].NetIncome = Round2(points[i].Income - points[i].Expenses)
	}
	return points
}
