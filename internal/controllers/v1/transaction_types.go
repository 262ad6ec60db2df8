package v1

import (
	"fmt"

	"github.com/finance-visualizer/backend/internal/aggregate"
	"github.com/finance-visualizer/backend/internal/httputil"
	"github.com/finance-visualizer/backend/internal/models"
	"github.com/finance-visualizer/backend/internal/types"
	"github.com/finance-visualizer/backend/internal/validate"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	Amount      decimal.Decimal `json:"amount" swaggertype:"primitive,string" example:"-14.03"` // Signed amount, negative for expenses
	Description string          `json:"description" example:"Groceries"`                        // Description of the transaction
	Category    models.Category `json:"category" example:"Food & Dining"`                       // Category label
	Date        string          `json:"date" example:"2024-01-05"`                              // Date of the transaction

	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := httputil.BaseURL(c)

	return Transaction{
		DefaultModel: model.DefaultModel,
		Amount:       model.Amount,
		Description:  model.Description,
		Category:     model.Category,
		Date:         validate.FormatDate(model.Date),
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

func newTransactions(c *gin.Context, list []models.Transaction) []Transaction {
	data := make([]Transaction, 0, len(list))
	for _, t := range list {
		data = append(data, newTransaction(c, t))
	}

	return data
}

type TransactionResponse struct {
	Data *Transaction `json:"data"` // Data for the transaction
}

type TransactionListResponse struct {
	Data []Transaction `json:"data"` // List of transactions
}

// TransactionQueryFilter contains the fields that transactions can be filtered with.
type TransactionQueryFilter struct {
	Category    string      `form:"category" example:"Food & Dining"`                       // Exact category label
	Month       types.Month `form:"month" swaggertype:"primitive,string" example:"2024-01"` // Year and month in YYYY-MM format
	Description string      `form:"description" example:"*coffee*"`                         // Case-insensitive glob pattern for the description
}

// model returns the aggregate.Filter for the query filter.
func (f TransactionQueryFilter) model() (aggregate.Filter, error) {
	filter := aggregate.Filter{
		Month:       f.Month,
		Description: f.Description,
	}

	if f.Category != "" {
		category, err := models.ParseCategory(f.Category)
		if err != nil {
			return aggregate.Filter{}, err
		}
		filter.Category = category
	}

	return filter, nil
}
