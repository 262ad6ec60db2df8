// Package aggregate computes summaries over lists of transactions.
//
// All functions are pure. An empty list yields zero totals and empty
// results, never an error.
package aggregate

import (
	"time"

	"github.com/finance-visualizer/backend/internal/models"
	"github.com/finance-visualizer/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// CategoryAmount is the summed expense amount of a category.
type CategoryAmount struct {
	Category models.Category `json:"category" example:"Food & Dining"`
	Icon     string          `json:"icon" example:"🍽️"`
	Amount   decimal.Decimal `json:"amount" example:"70"`
}

// MonthAmount is the net amount of all transactions in a month.
type MonthAmount struct {
	Month  types.Month     `json:"month" swaggertype:"primitive,string" example:"2024-01"`
	Amount decimal.Decimal `json:"amount" example:"50"`
}

// IsExpense reports whether the transaction is an expense.
// Negative amounts are expenses, positive amounts are income.
func IsExpense(t models.Transaction) bool {
	return t.Amount.IsNegative()
}

// TotalExpenses sums the absolute amounts of all expenses, rounded to cents.
func TotalExpenses(list []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range list {
		if IsExpense(t) {
			total = total.Add(t.Amount.Abs())
		}
	}

	return total.Round(2)
}

// TotalIncome sums the amounts of all income transactions, rounded to cents.
func TotalIncome(list []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range list {
		if t.Amount.IsPositive() {
			total = total.Add(t.Amount)
		}
	}

	return total.Round(2)
}

// ByCategory sums the absolute amounts of expenses per category.
// Categories without expenses are not part of the result.
func ByCategory(list []models.Transaction) map[models.Category]decimal.Decimal {
	result := make(map[models.Category]decimal.Decimal)
	for _, c := range categoryTotals(list) {
		result[c.Category] = c.Amount
	}

	return result
}

// categoryTotals returns the expense sums per category in the order
// in which each category first appears in the list.
func categoryTotals(list []models.Transaction) []CategoryAmount {
	index := make(map[models.Category]int)
	totals := []CategoryAmount{}

	for _, t := range list {
		if !IsExpense(t) {
			continue
		}

		i, ok := index[t.Category]
		if !ok {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, CategoryAmount{Category: t.Category, Icon: t.Category.Icon(), Amount: decimal.Zero})
		}

		totals[i].Amount = totals[i].Amount.Add(t.Amount.Abs())
	}

	return totals
}

// ByMonth sums the signed amounts of all transactions per calendar month.
// The result is ordered chronologically.
func ByMonth(list []models.Transaction) []MonthAmount {
	index := make(map[string]int)
	months := []MonthAmount{}

	for _, t := range list {
		month := types.MonthOf(t.Date)

		i, ok := index[month.String()]
		if !ok {
			i = len(months)
			index[month.String()] = i
			months = append(months, MonthAmount{Month: month, Amount: decimal.Zero})
		}

		months[i].Amount = months[i].Amount.Add(t.Amount)
	}

	slices.SortFunc(months, func(a, b MonthAmount) int {
		return time.Time(a.Month).Compare(time.Time(b.Month))
	})

	return months
}

// TopCategories returns the n categories with the highest expense sums,
// highest first. Categories with equal sums keep the order in which
// they first appear in the list.
func TopCategories(list []models.Transaction, n int) []CategoryAmount {
	if n <= 0 {
		return []CategoryAmount{}
	}

	totals := categoryTotals(list)
	slices.SortStableFunc(totals, func(a, b CategoryAmount) int {
		return b.Amount.Cmp(a.Amount)
	})

	if len(totals) > n {
		totals = totals[:n]
	}

	return totals
}

// RecentExpenses returns the n most recent expenses, newest first.
func RecentExpenses(list []models.Transaction, n int) []models.Transaction {
	if n <= 0 {
		return []models.Transaction{}
	}

	expenses := []models.Transaction{}
	for _, t := range list {
		if IsExpense(t) {
			expenses = append(expenses, t)
		}
	}

	slices.SortStableFunc(expenses, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	if len(expenses) > n {
		expenses = expenses[:n]
	}

	return expenses
}
