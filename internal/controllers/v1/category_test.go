package v1_test

import (
	"net/http"

	v1 "github.com/finance-visualizer/backend/internal/controllers/v1"
	"github.com/finance-visualizer/backend/internal/models"
	"github.com/finance-visualizer/backend/test"
)

func (suite *TestSuiteStandard) TestCategories() {
	r := test.Request(suite.T(), suite.service, http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, len(models.Categories))
	suite.Assert().Equal(models.CategoryDetails{ID: "housing", Label: models.CategoryHousing, Icon: "🏠"}, response.Data[0])
	suite.Assert().Equal(models.CategoryOther, response.Data[len(response.Data)-1].Label)
}

// TestCategoriesStorageUnavailable verifies that the category table
// does not depend on the database.
func (suite *TestSuiteStandard) TestCategoriesStorageUnavailable() {
	suite.CloseDB()

	r := test.Request(suite.T(), suite.service, http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	r := test.Request(suite.T(), suite.service, http.MethodOptions, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
