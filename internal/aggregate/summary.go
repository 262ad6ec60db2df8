package aggregate

import (
	"github.com/finance-visualizer/backend/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultLimit is the number of top categories and recent expenses
// in a summary when no limit is requested.
const DefaultLimit = 3

// Summary is the dashboard view of a list of transactions.
type Summary struct {
	TotalExpenses  decimal.Decimal      `json:"totalExpenses" example:"70"`
	TotalIncome    decimal.Decimal      `json:"totalIncome" example:"100"`
	Balance        decimal.Decimal      `json:"balance" example:"30"`
	ByCategory     []CategoryAmount     `json:"byCategory"`
	ByMonth        []MonthAmount        `json:"byMonth"`
	TopCategories  []CategoryAmount     `json:"topCategories"`
	RecentExpenses []models.Transaction `json:"recentExpenses"`
}

// Summarize computes all aggregates of the list. limit is applied to
// the top categories and the recent expenses.
func Summarize(list []models.Transaction, limit int) Summary {
	expenses := TotalExpenses(list)
	income := TotalIncome(list)

	return Summary{
		TotalExpenses:  expenses,
		TotalIncome:    income,
		Balance:        income.Sub(expenses),
		ByCategory:     categoryTotals(list),
		ByMonth:        ByMonth(list),
		TopCategories:  TopCategories(list, limit),
		RecentExpenses: RecentExpenses(list, limit),
	}
}
