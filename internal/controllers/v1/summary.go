package v1

import (
	"net/http"

	"github.com/finance-visualizer/backend/internal/aggregate"
	"github.com/finance-visualizer/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterSummaryRoutes registers the routes for the summary with
// the RouterGroup that is passed.
func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSummary)
	r.GET("", co.GetSummary)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func (co Controller) OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns totals, the breakdown by category and month, the top categories and the most recent expenses
// @Tags			Summary
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		503		{object}	httputil.HTTPError
// @Param			limit	query		int	false	"Number of top categories and recent expenses. Defaults to 3"
// @Router			/v1/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	var query SummaryQuery
	err := httputil.BindQuery(c, &query)
	if err != nil {
		renderError(c, err)
		return
	}

	limit := aggregate.DefaultLimit
	if query.Limit != nil {
		limit = *query.Limit
	}

	summary, err := co.Service.Summary(c.Request.Context(), limit)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: newSummary(c, summary)})
}
