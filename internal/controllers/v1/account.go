package v1

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/pouchbudget/backend/internal/httputil"
	"github.com/pouchbudget/backend/internal/models"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAccounts)
		r.GET("", GetAccounts)
		r.POST("", CreateAccounts)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", OptionsAccountDetail)
		r.GET("/:id", GetAccount)
		r.PATCH("/:id", UpdateAccount)
		r.DELETE("/:id", DeleteAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func OptionsAccounts(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [options]
func OptionsAccountDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Account{})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		404	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [get]
func GetAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	var account models.Account
	err = models.DB.First(&account, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Get accounts
// @Description	Returns a list of accounts
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountListResponse
// @Failure		400	{object}	AccountListResponse
// @Failure		500	{object}	AccountListResponse
// @Router			/v1/accounts [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			onBudget	query	bool	false	"Is the account on-budget?"
// @Param			archived	query	bool	false	"Is the account archived?"
// @Param			offset		query	uint	false	"The offset of the first Account returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Accounts to return. Defaults to 50."
func GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AccountListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.DB.
		Order("name ASC").
		Where(&model, queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var accounts []models.Account
	err := q.Find(&accounts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Account, 0)
	for _, account := range accounts {
		data = append(data, newAccount(c, account))
	}

	c.JSON(http.StatusOK, AccountListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create accounts
// @Description	Creates accounts from the list of submitted account data. The response code is the highest response code number that a single account creation would have caused. If it is not equal to 201, at least one account has an error.
// @Tags			Accounts
// @Accept		json
// @Produce		json
// @Success		201			{object}	AccountCreateResponse
// @Failure		400			{object}	AccountCreateResponse
// @Failure		404			{object}	AccountCreateResponse
// @Failure		500			{object}	AccountCreateResponse
// @Param			accounts	body		[]AccountEditable	true	"Accounts"
// @Router			/v1/accounts [post]
func CreateAccounts(c *gin.Context) {
	var editables []AccountEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	s := http.StatusCreated
	r := AccountCreateResponse{}

	for _, editable := range editables {
		account := editable.model()
		err := models.DB.Create(&account).Error
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		data := newAccount(c, account)
		r.Data = append(r.Data, AccountResponse{Data: &data})
	}

	c.JSON(s, r)
}

// @Summary		Update account
// @Description	Updates an existing account. Only values to be updated need to be specified.
// @Tags			Accounts
// @Accept		json
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		404		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts/{id} [patch]
func UpdateAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	var account models.Account
	err = models.DB.First(&account, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AccountEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	var update AccountEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&account).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Delete account
// @Description	Deletes an account. Deleting an account also deletes all its transactions and reverses their ledger effects.
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [delete]
func DeleteAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var account models.Account
	err = models.DB.First(&account, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteAccount(models.DB, account)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
