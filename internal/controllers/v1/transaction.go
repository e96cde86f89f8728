package v1

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pouchbudget/backend/internal/httputil"
	"github.com/pouchbudget/backend/internal/models"
	pouch_uuid "github.com/pouchbudget/backend/internal/uuid"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
		r.POST("", CreateTransactions)
		r.POST("/archive", ArchiveTransactions)
		r.POST("/merge", MergeTransactions)
		r.POST("/to-budget", ToBudgetTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
		r.GET("/:id/duplicates", GetTransactionDuplicates)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Transaction{})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.Preload("Subtransactions").First(&transaction, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Get transactions
// @Description	Returns a list of transactions
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			date				query	string	false	"Date of the transaction. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			fromDate			query	string	false	"Transactions at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate			query	string	false	"Transactions before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			amount				query	int		false	"Filter by amount in milliunits"
// @Param			amountLessOrEqual	query	int		false	"Amount less than or equal to this"
// @Param			amountMoreOrEqual	query	int		false	"Amount more than or equal to this"
// @Param			memo				query	string	false	"Filter by memo"
// @Param			budget				query	string	false	"Filter by budget ID"
// @Param			account				query	string	false	"Filter by account ID"
// @Param			envelope			query	string	false	"Filter by envelope ID"
// @Param			payee				query	string	false	"Filter by payee ID"
// @Param			inbox				query	bool	false	"Is the transaction in the inbox?"
// @Param			cleared				query	bool	false	"Has the transaction cleared the account?"
// @Param			pending				query	bool	false	"Is the transaction pending?"
// @Param			approved			query	bool	false	"Has the user approved the transaction?"
// @Param			offset				query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit				query	int		false	"Maximum number of Transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.DB.
		Preload("Subtransactions").
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Where(&model, queryFields...)

	// Filter for the transaction being at the same date
	if !filter.Date.IsZero() {
		date := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, time.UTC)
		q = q.Where("transactions.date >= date(?)", date).Where("transactions.date < date(?)", date.AddDate(0, 0, 1))
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("transactions.date >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("transactions.date < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	if filter.AmountLessOrEqual != nil {
		q = q.Where("transactions.amount <= ?", *filter.AmountLessOrEqual)
	}

	if filter.AmountMoreOrEqual != nil {
		q = q.Where("transactions.amount >= ?", *filter.AmountMoreOrEqual)
	}

	if filter.Memo != "" {
		q = q.Where("transactions.memo LIKE ?", "%"+filter.Memo+"%")
	} else if slices.Contains(setFields, "Memo") {
		q = q.Where("transactions.memo = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 transactions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Transaction, 0)
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create transactions
// @Description	Creates transactions from the list of submitted transaction data. The response code is the highest response code number that a single transaction creation would have caused. If it is not equal to 201, at least one transaction has an error.
// @Tags			Transactions
// @Accept		json
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		404				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/v1/transactions [post]
func CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	s := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, editable := range editables {
		transaction, err := models.CreateTransaction(models.DB, editable.model(), editable.subtransactionInputs())
		// Append the error
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		data := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(s, r)
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified. A subtransactions list replaces the whole set, an empty list converts a split back to a regular transaction.
// @Tags			Transactions
// @Accept		json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		409			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// Get the transaction resource
	var transaction models.Transaction
	err = models.DB.Preload("Subtransactions").First(&transaction, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update TransactionEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// The subtransaction set is replaced by the engine, not by a column update
	var subs *[]models.SubtransactionInput
	if i := slices.Index(updateFields, any("Subtransactions")); i >= 0 {
		updateFields = slices.Delete(updateFields, i, i+1)
		inputs := update.subtransactionInputs()
		subs = &inputs
	}

	transaction, err = models.UpdateTransaction(models.DB, transaction, update.model(), updateFields, subs)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction and reverses its ledger effects
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.Preload("Subtransactions").First(&transaction, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteTransaction(models.DB, transaction)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Archive transactions
// @Description	Moves cleared, fully assigned transactions out of the inbox. Transactions that do not qualify are skipped and counted, never errors.
// @Tags			Transactions
// @Accept		json
// @Produce		json
// @Success		200		{object}	ArchiveResponse
// @Failure		400		{object}	ArchiveResponse
// @Failure		500		{object}	ArchiveResponse
// @Param			archive	body		TransactionBulkRequest	true	"Transactions to archive"
// @Router			/v1/transactions/archive [post]
func ArchiveTransactions(c *gin.Context) {
	request, ok := bindBulkRequest(c)
	if !ok {
		return
	}

	result, err := models.ArchiveTransactions(models.DB, request.BudgetID, transactionIDs(request))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ArchiveResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ArchiveResponse{Data: &result})
}

// @Summary		Merge transactions
// @Description	Merges exactly two transactions that represent the same real-world transaction. Both must share account and amount. Returns the surviving transaction.
// @Tags			Transactions
// @Accept		json
// @Produce		json
// @Success		200		{object}	TransactionResponse
// @Failure		400		{object}	TransactionResponse
// @Failure		404		{object}	TransactionResponse
// @Failure		500		{object}	TransactionResponse
// @Param			merge	body		TransactionBulkRequest	true	"The two transactions to merge"
// @Router			/v1/transactions/merge [post]
func MergeTransactions(c *gin.Context) {
	var request TransactionBulkRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	if request.BudgetID == pouch_uuid.Nil {
		e := errBudgetIDParameter.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{
			Error: &e,
		})
		return
	}

	merged, err := models.MergeTransactions(models.DB, request.BudgetID, transactionIDs(request))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, merged)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Move transactions to budget
// @Description	Assigns inflow transactions to the unallocated envelope and moves them out of the inbox. Outflows are ignored and counted.
// @Tags			Transactions
// @Accept		json
// @Produce		json
// @Success		200			{object}	ToBudgetResponse
// @Failure		400			{object}	ToBudgetResponse
// @Failure		500			{object}	ToBudgetResponse
// @Param			toBudget	body		TransactionBulkRequest	true	"Transactions to move"
// @Router			/v1/transactions/to-budget [post]
func ToBudgetTransactions(c *gin.Context) {
	request, ok := bindBulkRequest(c)
	if !ok {
		return
	}

	result, err := models.MoveToBudget(models.DB, request.BudgetID, transactionIDs(request))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ToBudgetResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ToBudgetResponse{Data: &result})
}

// @Summary		Get duplicate candidates
// @Description	Returns transactions that plausibly duplicate the given one, for the user to review and merge.
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		404	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id}/duplicates [get]
func GetTransactionDuplicates(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.Preload("Payee").First(&transaction, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	candidates, err := models.DuplicateCandidates(models.DB, transaction)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Transaction, 0)
	for _, candidate := range candidates {
		data = append(data, newTransaction(c, candidate))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// bindBulkRequest binds and validates the body for the bulk lifecycle
// endpoints. On failure, the error response has already been written.
func bindBulkRequest(c *gin.Context) (TransactionBulkRequest, bool) {
	var request TransactionBulkRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return request, false
	}

	if request.BudgetID == pouch_uuid.Nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errBudgetIDParameter.Error(),
		})
		return request, false
	}

	if len(request.TransactionIDs) == 0 {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errNoIDs.Error(),
		})
		return request, false
	}

	return request, true
}

// transactionIDs converts the request IDs for the engine.
func transactionIDs(request TransactionBulkRequest) []pouch_uuid.UUID {
	return request.TransactionIDs
}
