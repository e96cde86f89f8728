package v1

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/pouchbudget/backend/internal/httputil"
	"github.com/pouchbudget/backend/internal/models"
	pouch_uuid "github.com/pouchbudget/backend/internal/uuid"
)

// RegisterPayeeRoutes registers the routes for payees with
// the RouterGroup that is passed.
func RegisterPayeeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPayees)
		r.GET("", GetPayees)
		r.POST("", CreatePayees)
		r.POST("/cleanup", CleanupPayees)
	}

	// Payee with ID
	{
		r.OPTIONS("/:id", OptionsPayeeDetail)
		r.GET("/:id", GetPayee)
		r.PATCH("/:id", UpdatePayee)
		r.DELETE("/:id", DeletePayee)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payees
// @Success		204
// @Router			/v1/payees [options]
func OptionsPayees(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payees
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payees/{id} [options]
func OptionsPayeeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Payee{})
}

// @Summary		Get payee
// @Description	Returns a specific payee
// @Tags			Payees
// @Produce		json
// @Success		200	{object}	PayeeResponse
// @Failure		400	{object}	PayeeResponse
// @Failure		404	{object}	PayeeResponse
// @Failure		500	{object}	PayeeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payees/{id} [get]
func GetPayee(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &e,
		})
		return
	}

	var payee models.Payee
	err = models.DB.First(&payee, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &e,
		})
		return
	}

	data := newPayee(c, payee)
	c.JSON(http.StatusOK, PayeeResponse{Data: &data})
}

// @Summary		Get payees
// @Description	Returns a list of payees
// @Tags			Payees
// @Produce		json
// @Success		200	{object}	PayeeListResponse
// @Failure		400	{object}	PayeeListResponse
// @Failure		500	{object}	PayeeListResponse
// @Router			/v1/payees [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			budget	query	string	false	"Filter by budget ID"
// @Param			offset	query	uint	false	"The offset of the first Payee returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Payees to return. Defaults to 50."
func GetPayees(c *gin.Context) {
	var filter PayeeQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PayeeListResponse{
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

	var payees []models.Payee
	err := q.Find(&payees).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayeeListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayeeListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Payee, 0)
	for _, payee := range payees {
		data = append(data, newPayee(c, payee))
	}

	c.JSON(http.StatusOK, PayeeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create payees
// @Description	Creates payees from the list of submitted payee data. The response code is the highest response code number that a single payee creation would have caused. If it is not equal to 201, at least one payee has an error.
// @Tags			Payees
// @Accept		json
// @Produce		json
// @Success		201		{object}	PayeeCreateResponse
// @Failure		400		{object}	PayeeCreateResponse
// @Failure		404		{object}	PayeeCreateResponse
// @Failure		500		{object}	PayeeCreateResponse
// @Param			payees	body		[]PayeeEditable	true	"Payees"
// @Router			/v1/payees [post]
func CreatePayees(c *gin.Context) {
	var editables []PayeeEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayeeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	s := http.StatusCreated
	r := PayeeCreateResponse{}

	for _, editable := range editables {
		payee := editable.model()
		err := models.DB.Create(&payee).Error
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		data := newPayee(c, payee)
		r.Data = append(r.Data, PayeeResponse{Data: &data})
	}

	c.JSON(s, r)
}

// @Summary		Delete unused payees
// @Description	Deletes all payees of the budget that no transaction references
// @Tags			Payees
// @Accept		json
// @Produce		json
// @Success		200		{object}	PayeeCleanupResponse
// @Failure		400		{object}	PayeeCleanupResponse
// @Failure		500		{object}	PayeeCleanupResponse
// @Param			cleanup	body		PayeeCleanupRequest	true	"Cleanup"
// @Router			/v1/payees/cleanup [post]
func CleanupPayees(c *gin.Context) {
	var request PayeeCleanupRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayeeCleanupResponse{
			Error: &e,
		})
		return
	}

	if request.BudgetID == pouch_uuid.Nil {
		e := errBudgetIDParameter.Error()
		c.JSON(http.StatusBadRequest, PayeeCleanupResponse{
			Error: &e,
		})
		return
	}

	count, err := models.DeleteUnusedPayees(models.DB, request.BudgetID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayeeCleanupResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, PayeeCleanupResponse{Data: &PayeeCleanupResult{DeletedCount: count}})
}

// @Summary		Update payee
// @Description	Updates an existing payee. Only values to be updated need to be specified.
// @Tags			Payees
// @Accept		json
// @Produce		json
// @Success		200		{object}	PayeeResponse
// @Failure		400		{object}	PayeeResponse
// @Failure		404		{object}	PayeeResponse
// @Failure		500		{object}	PayeeResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payee	body		PayeeEditable	true	"Payee"
// @Router			/v1/payees/{id} [patch]
func UpdatePayee(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &e,
		})
		return
	}

	var payee models.Payee
	err = models.DB.First(&payee, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PayeeEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &e,
		})
		return
	}

	var update PayeeEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&payee).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &e,
		})
		return
	}

	data := newPayee(c, payee)
	c.JSON(http.StatusOK, PayeeResponse{Data: &data})
}

// @Summary		Delete payee
// @Description	Deletes a payee. Transactions referencing it keep their free-text payee name.
// @Tags			Payees
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payees/{id} [delete]
func DeletePayee(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var payee models.Payee
	err = models.DB.First(&payee, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeletePayee(models.DB, payee)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
