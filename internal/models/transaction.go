package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single recorded income or expense.
//
// Negative amounts are expenses, positive amounts are income.
type Transaction struct {
	DefaultModel
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"-14.03"` // Signed amount of the transaction
	Description string          `json:"description" example:"Groceries"`                   // What the transaction was for
	Category    Category        `json:"category" gorm:"index" example:"Food & Dining"`     // Category label
	Date        time.Time       `json:"date" gorm:"index" example:"2024-01-05T00:00:00Z"`  // Date of the transaction
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	// Enforce dates to be in UTC
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date for UTC
//   - trims whitespace from the description
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)
	t.Date = t.Date.In(time.UTC)

	return nil
}
