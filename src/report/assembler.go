// Package report shapes aggregation results into the response schema each
// endpoint promises. It does no computation of its own beyond renaming and
// nesting; every call works from a fresh snapshot passed in by the handler.
package report

import (
	"fmt"
	"time"

	"fintrack-server/src/analytics"
	"fintrack-server/src/models"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func OKWithMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

func FailWithError(message string, err error) Response {
	return Response{Success: false, Message: message, Error: err.Error()}
}

// Pagination describes one page of the transaction list.
type Pagination struct {
	CurrentPage       int  `json:"currentPage"`
	TotalPages        int  `json:"totalPages"`
	TotalTransactions int  `json:"totalTransactions"`
	HasNextPage       bool `json:"hasNextPage"`
	HasPrevPage       bool `json:"hasPrevPage"`
	Limit             int  `json:"limit"`
}

type CategoryAnalysis struct {
	Categories          []analytics.CategoryStat `json:"categories"`
	TopSpendingCategory *analytics.CategoryStat  `json:"topSpendingCategory"`
	CategoryCount       int                      `json:"categoryCount"`
}

type ListInsights struct {
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
	TopCategory    string `json:"topCategory"`
}

type TransactionList struct {
	Transactions     []models.Transaction  `json:"transactions"`
	Pagination       Pagination            `json:"pagination"`
	FinancialSummary analytics.Summary     `json:"financialSummary"`
	CategoryAnalysis CategoryAnalysis      `json:"categoryAnalysis"`
	MonthlyBreakdown []analytics.MonthStat `json:"monthlyBreakdown"`
	Trends           analytics.Trend       `json:"trends"`
	Insights         ListInsights          `json:"insights"`
}

// AssembleTransactionList builds the full list report: the requested page plus
// summary, category, monthly and trend analysis over the entire record set.
func AssembleTransactionList(page []models.Transaction, all []models.Transaction, currentPage, limit, totalFiltered int) TransactionList {
	summary := analytics.Summarize(all)
	categories := analytics.AnalyzeCategories(all)
	breakdown := analytics.BreakdownByMonth(all)
	trend := analytics.SpendingTrend(breakdown)

	totalPages := 0
	if limit > 0 {
		totalPages = (totalFiltered + limit - 1) / limit
	}

	analysis := CategoryAnalysis{
		Categories:    categories,
		CategoryCount: len(categories),
	}
	topCategory := "No data"
	if len(categories) > 0 {
		top := categories[0]
		analysis.TopSpendingCategory = &top
		topCategory = top.Name
	}

	if page == nil {
		page = []models.Transaction{}
	}
	return TransactionList{
		Transactions: page,
		Pagination: Pagination{
			CurrentPage:       currentPage,
			TotalPages:        totalPages,
			TotalTransactions: totalFiltered,
			HasNextPage:       currentPage < totalPages,
			HasPrevPage:       currentPage > 1,
			Limit:             limit,
		},
		FinancialSummary: summary,
		CategoryAnalysis: analysis,
		MonthlyBreakdown: breakdown,
		Trends:           trend,
		Insights: ListInsights{
			Message: fmt.Sprintf("Net income: $%v | %d income entries, %d expense entries",
				summary.NetIncome, summary.IncomeCount, summary.ExpenseCount),
			Recommendation: analytics.CashFlowRecommendation(summary.NetIncome),
			TopCategory:    topCategory,
		},
	}
}

// DashboardSummary is the card row at the top of the dashboard.
type DashboardSummary struct {
	TotalIncome       float64 `json:"totalIncome"`
	TotalExpenses     float64 `json:"totalExpenses"`
	NetIncome         float64 `json:"netIncome"`
	TotalTransactions int     `json:"totalTransactions"`
	IncomeCount       int     `json:"incomeCount"`
	ExpenseCount      int     `json:"expenseCount"`
}

type RecentTransaction struct {
	ID              int64     `json:"id"`
	Amount          float64   `json:"amount"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Type            string    `json:"type"`
	Date            time.Time `json:"date"`
	FormattedAmount string    `json:"formattedAmount"`
}

type DashboardInsights struct {
	TopSpendingCategory   string  `json:"topSpendingCategory"`
	AverageMonthlyExpense float64 `json:"averageMonthlyExpense"`
	SavingsRate           float64 `json:"savingsRate"`
	IsHealthy             bool    `json:"isHealthy"`
	Recommendation        string  `json:"recommendation"`
}

type Dashboard struct {
	Summary            DashboardSummary       `json:"summary"`
	CategoryBreakdown  []analytics.PieSlice   `json:"categoryBreakdown"`
	RecentTransactions []RecentTransaction    `json:"recentTransactions"`
	MonthlyTrend       []analytics.TrendPoint `json:"monthlyTrend"`
	Insights           DashboardInsights      `json:"insights"`
}

// AssembleDashboard builds the dashboard report. Input must be sorted by date
// descending so the first five records are the most recent.
func AssembleDashboard(all []models.Transaction, now time.Time) Dashboard {
	summary := analytics.Summarize(all)
	breakdown := analytics.PieDistribution(all, models.TypeExpense)
	savingsRate := analytics.SavingsRate(summary.NetIncome, summary.TotalIncome)

	recent := make([]RecentTransaction, 0, 5)
	for _, t := range all {
		if len(recent) == 5 {
			break
		}
		formatted := fmt.Sprintf("-$%.2f", -t.Amount)
		if t.Amount > 0 {
			formatted = fmt.Sprintf("+$%.2f", t.Amount)
		}
		recent = append(recent, RecentTransaction{
			ID:              t.ID,
			Amount:          t.Amount,
			Description:     t.Description,
			Category:        t.Category,
			Type:            t.Type,
			Date:            t.Date,
			FormattedAmount: formatted,
		})
	}

	topCategory := "No data"
	if len(breakdown) > 0 {
		topCategory = breakdown[0].Category
	}
	return Dashboard{
		Summary: DashboardSummary{
			TotalIncome:       summary.TotalIncome,
			TotalExpenses:     summary.TotalExpenses,
			NetIncome:         summary.NetIncome,
			TotalTransactions: summary.TotalTransactions,
			IncomeCount:       summary.IncomeCount,
			ExpenseCount:      summary.ExpenseCount,
		},
		CategoryBreakdown:  breakdown,
		RecentTransactions: recent,
		MonthlyTrend:       analytics.RecentMonthlyTrend(all, now, 6),
		Insights: DashboardInsights{
			TopSpendingCategory:   topCategory,
			AverageMonthlyExpense: analytics.Round2(summary.TotalExpenses / 6),
			SavingsRate:           savingsRate,
			IsHealthy:             analytics.IsHealthy(summary.NetIncome, savingsRate),
			Recommendation:        analytics.CashFlowRecommendation(summary.NetIncome),
		},
	}
}

type MonthlyChart struct {
	Year        int                            `json:"year"`
	MonthlyData []analytics.MonthlyExpense     `json:"monthlyData"`
	Summary     analytics.YearlyExpenseSummary `json:"summary"`
}

func AssembleMonthlyChart(all []models.Transaction, year int) MonthlyChart {
	entries, summary := analytics.MonthlyExpensesChart(all, year)
	return MonthlyChart{Year: year, MonthlyData: entries, Summary: summary}
}

type PieSummary struct {
	TotalAmount       float64             `json:"totalAmount"`
	TotalTransactions int                 `json:"totalTransactions"`
	CategoryCount     int                 `json:"categoryCount"`
	TopCategory       *analytics.PieSlice `json:"topCategory"`
}

type PieChart struct {
	Type       string               `json:"type"`
	Categories []analytics.PieSlice `json:"categories"`
	Summary    PieSummary           `json:"summary"`
}

func AssembleCategoryPie(all []models.Transaction, txType string) PieChart {
	slices := analytics.PieDistribution(all, txType)
	total, count := analytics.PieTotal(all, txType)

	summary := PieSummary{
		TotalAmount:       total,
		TotalTransactions: count,
		CategoryCount:     len(slices),
	}
	if len(slices) > 0 {
		top := slices[0]
		summary.TopCategory = &top
	}
	if slices == nil {
		slices = []analytics.PieSlice{}
	}
	return PieChart{Type: txType, Categories: slices, Summary: summary}
}

type BudgetInsights struct {
	Message               string   `json:"message"`
	OverBudgetCategories  []string `json:"overBudgetCategories"`
	UnderBudgetCategories []string `json:"underBudgetCategories"`
}

type BudgetList struct {
	Month    string                  `json:"month"`
	Year     int                     `json:"year"`
	Budgets  []models.Budget         `json:"budgets"`
	Summary  analytics.BudgetSummary `json:"summary"`
	Insights BudgetInsights          `json:"insights"`
}

// AssembleBudgetList builds the period listing with totals and the
// over/under split. Budgets below the 80% warning line count as under budget.
func AssembleBudgetList(month string, year int, budgets []models.Budget) BudgetList {
	summary := analytics.SummarizeBudgets(budgets)

	insights := BudgetInsights{
		Message:               analytics.BudgetStatusMessage(summary.TotalSpent, summary.TotalBudget),
		OverBudgetCategories:  []string{},
		UnderBudgetCategories: []string{},
	}
	rounded := make([]models.Budget, len(budgets))
	for i, b := range budgets {
		rounded[i] = RoundBudget(b)
		if b.IsOverBudget {
			insights.OverBudgetCategories = append(insights.OverBudgetCategories, b.Category)
		} else if b.PercentageUsed < 80 {
			insights.UnderBudgetCategories = append(insights.UnderBudgetCategories, b.Category)
		}
	}
	return BudgetList{Month: month, Year: year, Budgets: rounded, Summary: summary, Insights: insights}
}

type MessageInsights struct {
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
}

type BudgetComparison struct {
	Month      string                          `json:"month"`
	Year       int                             `json:"year"`
	Comparison []analytics.BudgetComparisonRow `json:"comparison"`
	Summary    analytics.ComparisonSummary     `json:"summary"`
	Insights   MessageInsights                 `json:"insights"`
}

func AssembleBudgetComparison(month string, year int, budgets []models.Budget, expenses []models.Transaction) BudgetComparison {
	rows, summary := analytics.CompareBudgets(budgets, expenses)
	message, recommendation := analytics.ComparisonInsight(summary.TotalVariance, summary.TotalBudgeted)
	if rows == nil {
		rows = []analytics.BudgetComparisonRow{}
	}
	return BudgetComparison{
		Month:      month,
		Year:       year,
		Comparison: rows,
		Summary:    summary,
		Insights:   MessageInsights{Message: message, Recommendation: recommendation},
	}
}

// FinancialUpdate is the recomputed snapshot returned after every write.
type FinancialUpdate struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	NetIncome        float64 `json:"netIncome"`
	TransactionCount int     `json:"transactionCount"`
}

func AssembleFinancialUpdate(all []models.Transaction) FinancialUpdate {
	summary := analytics.Summarize(all)
	return FinancialUpdate{
		TotalIncome:      summary.TotalIncome,
		TotalExpenses:    summary.TotalExpenses,
		NetIncome:        summary.NetIncome,
		TransactionCount: summary.TotalTransactions,
	}
}

type ImpactInsights struct {
	Message         string `json:"message"`
	Impact          string `json:"impact"`
	DeletedCategory string `json:"deletedCategory,omitempty"`
	Recommendation  string `json:"recommendation"`
}

type TransactionWrite struct {
	Transaction     models.Transaction `json:"transaction"`
	FinancialUpdate FinancialUpdate    `json:"financialUpdate"`
	Insights        ImpactInsights     `json:"insights"`
}

// AssembleTransactionCreated shapes the creation confirmation.
func AssembleTransactionCreated(created models.Transaction, all []models.Transaction) TransactionWrite {
	update := AssembleFinancialUpdate(all)

	message := "Expense recorded successfully!"
	impact := fmt.Sprintf("Your net income decreased by $%.2f", -created.Amount)
	if created.Type == models.TypeIncome {
		message = "Income added successfully!"
		impact = fmt.Sprintf("Your net income increased by $%.2f", created.Amount)
	}
	return TransactionWrite{
		Transaction:     created,
		FinancialUpdate: update,
		Insights: ImpactInsights{
			Message:        message,
			Impact:         impact,
			Recommendation: analytics.CashFlowShortRecommendation(update.NetIncome),
		},
	}
}

// AssembleTransactionUpdated shapes the update confirmation.
func AssembleTransactionUpdated(updated models.Transaction, all []models.Transaction) TransactionWrite {
	update := AssembleFinancialUpdate(all)
	return TransactionWrite{
		Transaction:     updated,
		FinancialUpdate: update,
		Insights: ImpactInsights{
			Message:        "Transaction updated successfully!",
			Impact:         "Your financial summary has been recalculated.",
			Recommendation: analytics.CashFlowShortRecommendation(update.NetIncome),
		},
	}
}

type DeletedTransaction struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
}

type TransactionDelete struct {
	DeletedTransaction DeletedTransaction `json:"deletedTransaction"`
	FinancialUpdate    FinancialUpdate    `json:"financialUpdate"`
	Insights           ImpactInsights     `json:"insights"`
}

// AssembleTransactionDeleted shapes the deletion confirmation.
func AssembleTransactionDeleted(deleted models.Transaction, all []models.Transaction) TransactionDelete {
	update := AssembleFinancialUpdate(all)

	impactAmount := deleted.Amount
	if impactAmount < 0 {
		impactAmount = -impactAmount
	}
	impactDirection := "increased"
	if deleted.Type == models.TypeIncome {
		impactDirection = "decreased"
	}
	recommendation := "Your financial health remains positive!"
	if update.NetIncome <= 0 {
		recommendation = "Consider adding more income sources or reducing expenses."
	}
	return TransactionDelete{
		DeletedTransaction: DeletedTransaction{
			ID:          deleted.ID,
			Amount:      deleted.Amount,
			Description: deleted.Description,
			Category:    deleted.Category,
			Type:        deleted.Type,
		},
		FinancialUpdate: update,
		Insights: ImpactInsights{
			Message:         "Transaction deleted successfully!",
			Impact:          fmt.Sprintf("Your net income %s by $%.2f", impactDirection, impactAmount),
			DeletedCategory: deleted.Category,
			Recommendation:  recommendation,
		},
	}
}

// RoundBudget applies output rounding to a budget's monetary and percentage
// fields. Stored values keep full precision.
func RoundBudget(b models.Budget) models.Budget {
	b.Amount = analytics.Round2(b.Amount)
	b.Spent = analytics.Round2(b.Spent)
	b.Remaining = analytics.Round2(b.Remaining)
	b.PercentageUsed = analytics.Round1(b.PercentageUsed)
	return b
}

type BudgetWrite struct {
	Budget   models.Budget   `json:"budget"`
	Insights MessageInsights `json:"insights"`
}

func AssembleBudgetCreated(b models.Budget) BudgetWrite {
	rounded := RoundBudget(b)
	message, recommendation := analytics.BudgetCreatedInsight(b.Category, rounded.Spent, b.IsOverBudget)
	return BudgetWrite{
		Budget:   rounded,
		Insights: MessageInsights{Message: message, Recommendation: recommendation},
	}
}

func AssembleBudgetUpdated(b models.Budget) BudgetWrite {
	rounded := RoundBudget(b)
	message, recommendation := analytics.BudgetUpdatedInsight(rounded.Remaining, b.IsOverBudget)
	return BudgetWrite{
		Budget:   rounded,
		Insights: MessageInsights{Message: message, Recommendation: recommendation},
	}
}

type DeletedBudget struct {
	Category string `json:"category"`
	Month    string `json:"month"`
	Year     int    `json:"year"`
}

type BudgetDelete struct {
	DeletedBudget DeletedBudget `json:"deletedBudget"`
}

func AssembleBudgetDeleted(b models.Budget) BudgetDelete {
	return BudgetDelete{DeletedBudget: DeletedBudget{Category: b.Category, Month: b.Month, Year: b.Year}}
}

type SeedSummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetIncome     float64 `json:"netIncome"`
	IncomeCount   int     `json:"incomeCount"`
	ExpenseCount  int     `json:"expenseCount"`
}

type SeedResult struct {
	SeededCount       int         `json:"seededCount"`
	TotalTransactions int         `json:"totalTransactions"`
	Summary           SeedSummary `json:"summary"`
}

func AssembleSeedResult(seeded int, all []models.Transaction) SeedResult {
	summary := analytics.Summarize(all)
	return SeedResult{
		SeededCount:       seeded,
		TotalTransactions: summary.TotalTransactions,
		Summary: SeedSummary{
			TotalIncome:   summary.TotalIncome,
			TotalExpenses: summary.TotalExpenses,
			NetIncome:     summary.NetIncome,
			IncomeCount:   summary.IncomeCount,
			ExpenseCount:  summary.ExpenseCount,
		},
	}
}
