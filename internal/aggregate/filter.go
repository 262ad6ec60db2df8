package aggregate

import (
	"strings"

	"github.com/finance-visualizer/backend/internal/models"
	"github.com/finance-visualizer/backend/internal/types"
	"github.com/ryanuber/go-glob"
)

// Filter selects transactions. Zero values match everything.
type Filter struct {
	Category    models.Category
	Month       types.Month
	Description string // Case-insensitive glob pattern, e.g. "*coffee*"
}

// Match reports whether the transaction passes the filter.
func (f Filter) Match(t models.Transaction) bool {
	if f.Category != "" && t.Category != f.Category {
		return false
	}

	if !f.Month.IsZero() && !f.Month.Contains(t.Date) {
		return false
	}

	if f.Description != "" && !glob.Glob(strings.ToLower(f.Description), strings.ToLower(t.Description)) {
		return false
	}

	return true
}

// Apply returns the transactions that match the filter, keeping their order.
func (f Filter) Apply(list []models.Transaction) []models.Transaction {
	result := make([]models.Transaction, 0, len(list))
	for _, t := range list {
		if f.Match(t) {
			result = append(result, t)
		}
	}

	return result
}
