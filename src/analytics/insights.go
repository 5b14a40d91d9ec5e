package analytics

import "fmt"

// Insight messages are threshold-driven strings, not statistical inference.
// The 80% budget warning, 10% total-budget margin and 20% savings rate are
// fixed policy constants; clients depend on the exact wording.

// BudgetStatusMessage describes how a month's spending sits against its
// total budget.
func BudgetStatusMessage(totalSpent, totalBudget float64) string {
	switch {
	case totalSpent > totalBudget:
		return "You're over budget this month!"
	case totalSpent > totalBudget*0.8:
		return "You're approaching your budget limit."
	default:
		return "Great job staying within budget!"
	}
}

// ComparisonInsight describes the total budget-vs-actual variance.
func ComparisonInsight(totalVariance, totalBudgeted float64) (message, recommendation string) {
	switch {
	case totalVariance < 0:
		return "You're over your total budget this month!",
			"Consider reviewing your spending habits and adjusting budgets."
	case totalVariance < totalBudgeted*0.1:
		return "You're close to your total budget limit.",
			"Keep up the good work with your budget management!"
	default:
		return "Great job staying within your total budget!",
			"Keep up the good work with your budget management!"
	}
}

// CashFlowRecommendation is the dashboard-style recommendation string.
func CashFlowRecommendation(netIncome float64) string {
	if netIncome > 0 {
		return "Great job! You're maintaining positive cash flow."
	}
	return "Consider reviewing your expenses to improve your financial health."
}

// CashFlowShortRecommendation is the variant used on write confirmations.
func CashFlowShortRecommendation(netIncome float64) string {
	if netIncome > 0 {
		return "Great job maintaining positive cash flow!"
	}
	return "Consider reviewing your expenses to improve financial health."
}

// BudgetCreatedInsight describes a freshly created budget given the spend
// already recorded for its month.
func BudgetCreatedInsight(category string, spent float64, overBudget bool) (message, recommendation string) {
	if overBudget {
		return fmt.Sprintf("Warning: You've already spent $%.2f in %s this month", spent, category),
			"Consider increasing your budget or reducing expenses."
	}
	return fmt.Sprintf("Budget set successfully. You've spent $%.2f so far.", spent),
		"Great job setting a budget!"
}

// BudgetUpdatedInsight describes a budget after its amount changed.
func BudgetUpdatedInsight(remaining float64, overBudget bool) (message, recommendation string) {
	if overBudget {
		over := remaining
		if over < 0 {
			over = -over
		}
		return fmt.Sprintf("Budget updated. You're currently over budget by $%.2f", over),
			"Consider reducing expenses in this category."
	}
	return fmt.Sprintf("Budget updated. You have $%.2f remaining.", remaining),
		"Great job managing your budget!"
}
