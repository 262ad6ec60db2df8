package v1

import (
	"net/http"

	"github.com/finance-visualizer/backend/internal/httputil"
	"github.com/finance-visualizer/backend/internal/validate"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactions)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PUT("/:id", co.ReplaceTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func (co Controller) OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		503	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		renderError(c, err)
		return
	}

	_, err = co.Service.Get(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		renderError(c, err)
		return
	}

	httputil.OptionsGetPutPatchDelete(c)
}

// @Summary		Get transactions
// @Description	Returns all transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		503			{object}	httputil.HTTPError
// @Param			category	query		string	false	"Filter by category label"
// @Param			month		query		string	false	"Filter by month, YYYY-MM"
// @Param			description	query		string	false	"Filter by description, case-insensitive glob pattern like *coffee*"
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var query TransactionQueryFilter
	err := httputil.BindQuery(c, &query)
	if err != nil {
		renderError(c, err)
		return
	}

	filter, err := query.model()
	if err != nil {
		renderError(c, err)
		return
	}

	transactions, err := co.Service.List(c.Request.Context(), filter)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: newTransactions(c, transactions)})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		503	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		renderError(c, err)
		return
	}

	transaction, err := co.Service.Get(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		renderError(c, err)
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Create transaction
// @Description	Validates and stores a new transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		503			{object}	httputil.HTTPError
// @Param			transaction	body		validate.Payload	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var payload validate.Payload
	err := httputil.BindData(c, &payload)
	if err != nil {
		renderError(c, err)
		return
	}

	transaction, err := co.Service.Create(c.Request.Context(), payload)
	if err != nil {
		renderError(c, err)
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// @Summary		Replace transaction
// @Description	Replaces all fields of a transaction. Every field must be set
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		503			{object}	httputil.HTTPError
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		validate.Payload	true	"Transaction"
// @Router			/v1/transactions/{id} [put]
func (co Controller) ReplaceTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		renderError(c, err)
		return
	}

	var payload validate.Payload
	err = httputil.BindData(c, &payload)
	if err != nil {
		renderError(c, err)
		return
	}

	transaction, err := co.Service.Update(c.Request.Context(), uri.ID.UUID, payload)
	if err != nil {
		renderError(c, err)
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates the fields of a transaction that are set in the request body
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		503			{object}	httputil.HTTPError
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		validate.Payload	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		renderError(c, err)
		return
	}

	// Fields that are not part of the body keep their stored value
	transaction, err := co.Service.Patch(c.Request.Context(), uri.ID.UUID, func(p *validate.Payload) error {
		return httputil.BindData(c, p)
	})
	if err != nil {
		renderError(c, err)
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		503	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		renderError(c, err)
		return
	}

	err = co.Service.Delete(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
