package v1

import (
	"github.com/finance-visualizer/backend/internal/aggregate"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type SummaryQuery struct {
	Limit *int `form:"limit" binding:"omitempty,min=0" example:"3"` // Number of top categories and recent expenses. Defaults to 3
}

// SummaryDisplay contains the totals of a summary formatted as currency.
type SummaryDisplay struct {
	TotalExpenses string `json:"totalExpenses" example:"$1,234.50"`
	TotalIncome   string `json:"totalIncome" example:"$2,000.00"`
	Balance       string `json:"balance" example:"$765.50"`
}

// Summary is the representation of the dashboard summary in API v1.
type Summary struct {
	TotalExpenses  decimal.Decimal            `json:"totalExpenses" swaggertype:"primitive,string" example:"1234.5"` // Sum of all expenses
	TotalIncome    decimal.Decimal            `json:"totalIncome" swaggertype:"primitive,string" example:"2000"`     // Sum of all income
	Balance        decimal.Decimal            `json:"balance" swaggertype:"primitive,string" example:"765.5"`        // Income minus expenses
	ByCategory     []aggregate.CategoryAmount `json:"byCategory"`                                                    // Expenses per category
	ByMonth        []aggregate.MonthAmount    `json:"byMonth"`                                                       // Net amount per month, oldest first
	TopCategories  []aggregate.CategoryAmount `json:"topCategories"`                                                 // Categories with the highest expenses
	RecentExpenses []Transaction              `json:"recentExpenses"`                                                // Most recent expenses
	Display        SummaryDisplay             `json:"display"`                                                       // Totals formatted for display
}

type SummaryResponse struct {
	Data Summary `json:"data"` // Data for the summary
}

var printer = message.NewPrinter(language.AmericanEnglish)

// formatCurrency formats an amount as US dollars, e.g. "$1,234.50" or "-$3.00".
func formatCurrency(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}

	return sign + printer.Sprintf("$%v", number.Decimal(d.Abs().InexactFloat64(), number.Scale(2)))
}

// newSummary returns the API v1 representation of the summary
func newSummary(c *gin.Context, s aggregate.Summary) Summary {
	return Summary{
		TotalExpenses:  s.TotalExpenses,
		TotalIncome:    s.TotalIncome,
		Balance:        s.Balance,
		ByCategory:     s.ByCategory,
		ByMonth:        s.ByMonth,
		TopCategories:  s.TopCategories,
		RecentExpenses: newTransactions(c, s.RecentExpenses),
		Display: SummaryDisplay{
			TotalExpenses: formatCurrency(s.TotalExpenses),
			TotalIncome:   formatCurrency(s.TotalIncome),
			Balance:       formatCurrency(s.Balance),
		},
	}
}
