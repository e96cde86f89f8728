package v1

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/pouchbudget/backend/internal/httputil"
	"github.com/pouchbudget/backend/internal/models"
	pouch_uuid "github.com/pouchbudget/backend/internal/uuid"
)

// RegisterEnvelopeRoutes registers the routes for envelopes with
// the RouterGroup that is passed.
func RegisterEnvelopeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEnvelopes)
		r.GET("", GetEnvelopes)
		r.POST("", CreateEnvelopes)
		r.POST("/order", OrderEnvelopes)
	}

	// Envelope with ID
	{
		r.OPTIONS("/:id", OptionsEnvelopeDetail)
		r.GET("/:id", GetEnvelope)
		r.PATCH("/:id", UpdateEnvelope)
		r.DELETE("/:id", DeleteEnvelope)
		r.POST("/:id/allocate", AllocateToEnvelope)
		r.POST("/:id/quick-allocate", QuickAllocateEnvelope)
		r.POST("/:id/sweep", SweepEnvelope)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Router			/v1/envelopes [options]
func OptionsEnvelopes(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id} [options]
func OptionsEnvelopeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Envelope{})
}

// @Summary		Get envelope
// @Description	Returns a specific envelope
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeResponse
// @Failure		400	{object}	EnvelopeResponse
// @Failure		404	{object}	EnvelopeResponse
// @Failure		500	{object}	EnvelopeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id} [get]
func GetEnvelope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &e,
		})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &e,
		})
		return
	}

	data := newEnvelope(c, envelope)
	c.JSON(http.StatusOK, EnvelopeResponse{Data: &data})
}

// @Summary		Get envelopes
// @Description	Returns a list of envelopes
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeListResponse
// @Failure		400	{object}	EnvelopeListResponse
// @Failure		500	{object}	EnvelopeListResponse
// @Router			/v1/envelopes [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			archived	query	bool	false	"Is the envelope archived?"
// @Param			unallocated	query	bool	false	"Is this the unallocated envelope?"
// @Param			offset		query	uint	false	"The offset of the first Envelope returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Envelopes to return. Defaults to 50."
func GetEnvelopes(c *gin.Context) {
	var filter EnvelopeQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, EnvelopeListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.DB.
		Order("sort_order ASC, name ASC").
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

	var envelopes []models.Envelope
	err := q.Find(&envelopes).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Envelope, 0)
	for _, envelope := range envelopes {
		data = append(data, newEnvelope(c, envelope))
	}

	c.JSON(http.StatusOK, EnvelopeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create envelopes
// @Description	Creates envelopes from the list of submitted envelope data. The response code is the highest response code number that a single envelope creation would have caused. If it is not equal to 201, at least one envelope has an error.
// @Tags			Envelopes
// @Accept		json
// @Produce		json
// @Success		201			{object}	EnvelopeCreateResponse
// @Failure		400			{object}	EnvelopeCreateResponse
// @Failure		404			{object}	EnvelopeCreateResponse
// @Failure		500			{object}	EnvelopeCreateResponse
// @Param			envelopes	body		[]EnvelopeEditable	true	"Envelopes"
// @Router			/v1/envelopes [post]
func CreateEnvelopes(c *gin.Context) {
	var editables []EnvelopeEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	s := http.StatusCreated
	r := EnvelopeCreateResponse{}

	for _, editable := range editables {
		envelope := editable.model()
		err := models.DB.Create(&envelope).Error
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		data := newEnvelope(c, envelope)
		r.Data = append(r.Data, EnvelopeResponse{Data: &data})
	}

	c.JSON(s, r)
}

// @Summary		Set envelope order
// @Description	Sets the sort order of the submitted envelopes to the order of the submitted list
// @Tags			Envelopes
// @Accept		json
// @Produce		json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			order	body		OrderRequest	true	"Envelope order"
// @Router			/v1/envelopes/order [post]
func OrderEnvelopes(c *gin.Context) {
	var request OrderRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if request.BudgetID == pouch_uuid.Nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errBudgetIDParameter.Error(),
		})
		return
	}

	err = models.UpdateEnvelopeOrder(models.DB, request.BudgetID, request.IDs)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Update envelope
// @Description	Updates an existing envelope. Only values to be updated need to be specified.
// @Tags			Envelopes
// @Accept		json
// @Produce		json
// @Success		200			{object}	EnvelopeResponse
// @Failure		400			{object}	EnvelopeResponse
// @Failure		404			{object}	EnvelopeResponse
// @Failure		500			{object}	EnvelopeResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			envelope	body		EnvelopeEditable	true	"Envelope"
// @Router			/v1/envelopes/{id} [patch]
func UpdateEnvelope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &e,
		})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &e,
		})
		return
	}

	// The unallocated envelope is managed by the backend
	if envelope.IsUnallocated {
		e := models.ErrUnallocatedEnvelopeReadOnly.Error()
		c.JSON(http.StatusBadRequest, EnvelopeResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, EnvelopeEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &e,
		})
		return
	}

	var update EnvelopeEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&envelope).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &e,
		})
		return
	}

	data := newEnvelope(c, envelope)
	c.JSON(http.StatusOK, EnvelopeResponse{Data: &data})
}

// @Summary		Delete envelope
// @Description	Deletes an envelope. The balance has to be moved somewhere else beforehand, remaining funds are returned to the unallocated envelope.
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id} [delete]
func DeleteEnvelope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteEnvelope(models.DB, envelope)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allocate funds
// @Description	Moves a signed amount between the unallocated envelope and this envelope. Positive amounts allocate funds to the envelope, negative amounts return funds.
// @Tags			Envelopes
// @Accept		json
// @Produce		json
// @Success		200			{object}	TransferResponse
// @Failure		400			{object}	TransferResponse
// @Failure		404			{object}	TransferResponse
// @Failure		409			{object}	TransferResponse
// @Failure		500			{object}	TransferResponse
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			allocation	body		AllocateRequest	true	"Allocation"
// @Router			/v1/envelopes/{id}/allocate [post]
func AllocateToEnvelope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	var request AllocateRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	result, err := models.Allocate(models.DB, envelope.BudgetID, envelope.ID, request.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	data := newTransferResult(c, result)
	c.JSON(http.StatusOK, TransferResponse{Data: &data})
}

// @Summary		Quick-allocate
// @Description	Tops an overdrawn envelope up to zero from the unallocated envelope. Envelopes with a non-negative balance are left alone.
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	TransferResponse
// @Failure		400	{object}	TransferResponse
// @Failure		404	{object}	TransferResponse
// @Failure		409	{object}	TransferResponse
// @Failure		500	{object}	TransferResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id}/quick-allocate [post]
func QuickAllocateEnvelope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	result, transferred, err := models.QuickAllocate(models.DB, envelope.BudgetID, envelope.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	data := newTransferResult(c, result)
	data.Transferred = transferred
	c.JSON(http.StatusOK, TransferResponse{Data: &data})
}

// @Summary		Sweep
// @Description	Moves the whole positive balance of the envelope back to the unallocated envelope. Envelopes with a non-positive balance are left alone.
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	TransferResponse
// @Failure		400	{object}	TransferResponse
// @Failure		404	{object}	TransferResponse
// @Failure		409	{object}	TransferResponse
// @Failure		500	{object}	TransferResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id}/sweep [post]
func SweepEnvelope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	result, transferred, err := models.Sweep(models.DB, envelope.BudgetID, envelope.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	data := newTransferResult(c, result)
	data.Transferred = transferred
	c.JSON(http.StatusOK, TransferResponse{Data: &data})
}
