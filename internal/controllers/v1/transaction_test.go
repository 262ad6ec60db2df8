package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/finance-visualizer/backend/internal/controllers/v1"
	"github.com/finance-visualizer/backend/internal/httputil"
	"github.com/finance-visualizer/backend/internal/models"
	"github.com/finance-visualizer/backend/internal/validate"
	"github.com/finance-visualizer/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createTestTransaction creates a test transaction via the v1 API.
func (suite *TestSuiteStandard) createTestTransaction(payload validate.Payload, expectedStatus ...int) v1.TransactionResponse {
	if payload.Amount == "" {
		payload.Amount = "-10"
	}

	if payload.Description == "" {
		payload.Description = "Test Transaction"
	}

	if payload.Category == "" {
		payload.Category = string(models.CategoryOther)
	}

	if payload.Date == "" {
		payload.Date = "2024-01-05"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), suite.service, http.MethodPost, "http://example.com/v1/transactions", payload)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var tr v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &tr)

	return tr
}

// TestTransactionsOptions verifies that the HTTP OPTIONS response for /v1/transactions/{id} is correct.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name     string        // Name for the test
		status   int           // Expected HTTP status
		id       string        // String to use as ID. Ignored when pathFunc is non-nil
		pathFunc func() string // Function returning the path
	}{
		{
			"Does not exist",
			http.StatusNotFound,
			uuid.New().String(),
			nil,
		},
		{
			"Invalid UUID",
			http.StatusBadRequest,
			"NotParseableAsUUID",
			nil,
		},
		{
			"Success",
			http.StatusNoContent,
			"",
			func() string {
				return suite.createTestTransaction(validate.Payload{Amount: "31"}).Data.Links.Self
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var path string
			if tt.pathFunc != nil {
				path = tt.pathFunc()
			} else {
				path = fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.id)
			}

			r := test.Request(t, suite.service, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PUT, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsOptionsList() {
	r := test.Request(suite.T(), suite.service, http.MethodOptions, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	tr := suite.createTestTransaction(validate.Payload{
		Amount:      "-14.03",
		Description: "  Groceries ",
		Category:    "Food & Dining",
		Date:        "2024-01-05",
	})

	suite.Require().NotNil(tr.Data)
	suite.Assert().True(decimal.RequireFromString("-14.03").Equal(tr.Data.Amount))
	suite.Assert().Equal("Groceries", tr.Data.Description)
	suite.Assert().Equal(models.CategoryFood, tr.Data.Category)
	suite.Assert().Equal("2024-01-05", tr.Data.Date)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions/%s", tr.Data.ID), tr.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestTransactionsCreateNumericAmount() {
	body := `{"amount": 250, "description": "Salary", "category": "Savings", "date": "2024-02-01T09:30:00+02:00"}`

	r := test.Request(suite.T(), suite.service, http.MethodPost, "http://example.com/v1/transactions", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var tr v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &tr)
	suite.Assert().True(decimal.NewFromInt(250).Equal(tr.Data.Amount))
	suite.Assert().Equal("2024-02-01T07:30:00Z", tr.Data.Date)
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	tests := []struct {
		name   string
		body   any
		status int
		fields map[string]string
	}{
		{"Empty body", "", http.StatusBadRequest, nil},
		{"Broken JSON", `{"amount": "-5",`, http.StatusBadRequest, nil},
		{
			"All fields missing",
			`{}`,
			http.StatusBadRequest,
			map[string]string{
				"amount":      "Amount is required",
				"description": "Description is required",
				"category":    "Category is required",
				"date":        "Date is required",
			},
		},
		{
			"Amount too small",
			validate.Payload{Amount: "0.001", Description: "Gum", Category: "Shopping", Date: "2024-01-05"},
			http.StatusBadRequest,
			map[string]string{"amount": "Amount must be at least 0.01"},
		},
		{
			"Amount not a number",
			validate.Payload{Amount: "ten", Description: "Gum", Category: "Shopping", Date: "2024-01-05"},
			http.StatusBadRequest,
			map[string]string{"amount": "Amount must be a number"},
		},
		{
			"Amount with huge exponent",
			`{"amount": "-1e200000000", "description": "Gum", "category": "Shopping", "date": "2024-01-05"}`,
			http.StatusBadRequest,
			map[string]string{"amount": "Amount is too large"},
		},
		{
			"Amount with too many decimals",
			validate.Payload{Amount: "-3.125", Description: "Gum", Category: "Shopping", Date: "2024-01-05"},
			http.StatusBadRequest,
			map[string]string{"amount": "Amount must not have more than 2 decimal places"},
		},
		{
			"Text fields with wrong types",
			`{"amount": "-3", "description": 123, "category": true, "date": 20240105}`,
			http.StatusBadRequest,
			map[string]string{
				"description": "Description must be a string",
				"category":    "Category must be a string",
				"date":        "Date must be a string",
			},
		},
		{
			"Unknown category",
			validate.Payload{Amount: "-3", Description: "Gum", Category: "Candy", Date: "2024-01-05"},
			http.StatusBadRequest,
			map[string]string{"category": "Category must be one of Housing, Transportation, Food & Dining, Utilities, Healthcare, Entertainment, Shopping, Education, Savings, Other"},
		},
		{
			"Invalid date",
			validate.Payload{Amount: "-3", Description: "Gum", Category: "Shopping", Date: "05/01/2024"},
			http.StatusBadRequest,
			map[string]string{"date": "Invalid date format"},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.service, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var e httputil.HTTPError
			test.DecodeResponse(t, &r, &e)
			assert.NotEmpty(t, e.Error)
			assert.Equal(t, tt.fields, e.Fields)
		})
	}

	// Nothing has been stored
	r := test.Request(suite.T(), suite.service, http.MethodGet, "http://example.com/v1/transactions", "")
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0)
}

func (suite *TestSuiteStandard) TestTransactionsGetList() {
	suite.createTestTransaction(validate.Payload{Description: "Old", Date: "2023-12-24"})
	suite.createTestTransaction(validate.Payload{Description: "New", Date: "2024-02-01"})
	suite.createTestTransaction(validate.Payload{Description: "Middle", Date: "2024-01-15"})

	r := test.Request(suite.T(), suite.service, http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)

	suite.Require().Len(list.Data, 3)
	suite.Assert().Equal("New", list.Data[0].Description)
	suite.Assert().Equal("Middle", list.Data[1].Description)
	suite.Assert().Equal("Old", list.Data[2].Description)
}

func (suite *TestSuiteStandard) TestTransactionsGetListEmpty() {
	r := test.Request(suite.T(), suite.service, http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"data": []}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestTransactionsGetListFilter() {
	suite.createTestTransaction(validate.Payload{Description: "Morning Coffee", Category: "Food & Dining", Date: "2024-01-03"})
	suite.createTestTransaction(validate.Payload{Description: "coffee beans", Category: "Shopping", Date: "2024-02-10"})
	suite.createTestTransaction(validate.Payload{Description: "Rent", Category: "Housing", Date: "2024-01-01"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"No filter", "", 3},
		{"Category", "category=Housing", 1},
		{"Category with ampersand", "category=Food+%26+Dining", 1},
		{"Month", "month=2024-01", 2},
		{"Description glob", "description=*coffee*", 2},
		{"Description glob and month", "description=*coffee*&month=2024-02", 1},
		{"No match", "month=2023-01", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.service, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.TransactionListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetListFilterInvalid() {
	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"Unknown category", "category=Candy", models.ErrCategoryUnknown.Error()},
		{"Bad month", "month=January", httputil.ErrInvalidQueryString.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.service, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGet() {
	created := suite.createTestTransaction(validate.Payload{Description: "Electricity", Category: "Utilities"})

	r := test.Request(suite.T(), suite.service, http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var tr v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &tr)
	suite.Assert().Equal(created.Data.ID, tr.Data.ID)
	suite.Assert().Equal("Electricity", tr.Data.Description)
}

func (suite *TestSuiteStandard) TestTransactionsGetFails() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Invalid UUID", "not-a-uuid", http.StatusBadRequest},
		{"Does not exist", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.service, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsReplace() {
	created := suite.createTestTransaction(validate.Payload{Amount: "-20", Description: "Bus", Category: "Transportation", Date: "2024-03-01"})

	r := test.Request(suite.T(), suite.service, http.MethodPut, created.Data.Links.Self, validate.Payload{
		Amount:      "-25.50",
		Description: "Train",
		Category:    "Transportation",
		Date:        "2024-03-02",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var tr v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &tr)
	suite.Assert().Equal(created.Data.ID, tr.Data.ID)
	suite.Assert().True(decimal.RequireFromString("-25.5").Equal(tr.Data.Amount))
	suite.Assert().Equal("Train", tr.Data.Description)
	suite.Assert().Equal("2024-03-02", tr.Data.Date)
}

func (suite *TestSuiteStandard) TestTransactionsReplaceFails() {
	created := suite.createTestTransaction(validate.Payload{Description: "Bus"})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Missing fields", created.Data.Links.Self, validate.Payload{Description: "Train"}, http.StatusBadRequest},
		{"Does not exist", fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), validate.Payload{Amount: "-3", Description: "Train", Category: "Transportation", Date: "2024-03-02"}, http.StatusNotFound},
		{"Invalid UUID", "http://example.com/v1/transactions/1", validate.Payload{}, http.StatusBadRequest},
		{"Empty body", created.Data.Links.Self, "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.service, http.MethodPut, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// The stored transaction is unchanged
	r := test.Request(suite.T(), suite.service, http.MethodGet, created.Data.Links.Self, "")
	var tr v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &tr)
	suite.Assert().Equal("Bus", tr.Data.Description)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	created := suite.createTestTransaction(validate.Payload{Amount: "-20", Description: "Cinema", Category: "Entertainment", Date: "2024-03-01"})

	r := test.Request(suite.T(), suite.service, http.MethodPatch, created.Data.Links.Self, map[string]any{
		"description": "Cinema and popcorn",
		"amount":      -27.5,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var tr v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &tr)
	suite.Assert().Equal("Cinema and popcorn", tr.Data.Description)
	suite.Assert().True(decimal.RequireFromString("-27.5").Equal(tr.Data.Amount))
	suite.Assert().Equal(models.CategoryEntertainment, tr.Data.Category, "Fields not in the body must keep their value")
	suite.Assert().Equal("2024-03-01", tr.Data.Date, "Fields not in the body must keep their value")
}

func (suite *TestSuiteStandard) TestTransactionsUpdateFails() {
	created := suite.createTestTransaction(validate.Payload{Description: "Cinema"})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		fields map[string]string
	}{
		{"Blank description", created.Data.Links.Self, `{"description": "   "}`, http.StatusBadRequest, map[string]string{"description": "Description is required"}},
		{"Amount set to null", created.Data.Links.Self, `{"amount": null}`, http.StatusBadRequest, map[string]string{"amount": "Amount is required"}},
		{"Does not exist", fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), `{"description": "Theater"}`, http.StatusNotFound, nil},
		{"Empty body", created.Data.Links.Self, "", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.service, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var e httputil.HTTPError
			test.DecodeResponse(t, &r, &e)
			assert.Equal(t, tt.fields, e.Fields)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	created := suite.createTestTransaction(validate.Payload{})

	r := test.Request(suite.T(), suite.service, http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Deleting twice fails
	r = test.Request(suite.T(), suite.service, http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), suite.service, http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsDeleteInvalidUUID() {
	r := test.Request(suite.T(), suite.service, http.MethodDelete, "http://example.com/v1/transactions/abc", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestTransactionsStorageUnavailable verifies that every operation reports
// a closed database as HTTP 503.
func (suite *TestSuiteStandard) TestTransactionsStorageUnavailable() {
	created := suite.createTestTransaction(validate.Payload{})
	suite.CloseDB()

	valid := validate.Payload{Amount: "-3", Description: "Gum", Category: "Shopping", Date: "2024-01-05"}

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"List", http.MethodGet, "http://example.com/v1/transactions", ""},
		{"Create", http.MethodPost, "http://example.com/v1/transactions", valid},
		{"Get", http.MethodGet, created.Data.Links.Self, ""},
		{"Replace", http.MethodPut, created.Data.Links.Self, valid},
		{"Update", http.MethodPatch, created.Data.Links.Self, `{"description": "Gum"}`},
		{"Delete", http.MethodDelete, created.Data.Links.Self, ""},
		{"Options", http.MethodOptions, created.Data.Links.Self, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.service, tt.method, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusServiceUnavailable)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), models.ErrStorageUnavailable.Error())
		})
	}
}
