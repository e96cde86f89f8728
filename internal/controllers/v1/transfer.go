package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pouchbudget/backend/internal/httputil"
	"github.com/pouchbudget/backend/internal/models"
	"github.com/pouchbudget/backend/internal/types"
	pouch_uuid "github.com/pouchbudget/backend/internal/uuid"
)

// RegisterTransferRoutes registers the routes for transfers with
// the RouterGroup that is passed.
func RegisterTransferRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTransfers)
	r.POST("", CreateTransfer)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transfers
// @Success		204
// @Router			/v1/transfers [options]
func OptionsTransfers(c *gin.Context) {
	httputil.OptionsPost(c)
}

// TransferRequest is the body for the transfer endpoint. The envelope
// references are UUIDs or the literal "unallocated".
type TransferRequest struct {
	BudgetID       pouch_uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	FromEnvelopeID string          `json:"fromEnvelopeId" example:"unallocated"`                    // Source envelope reference
	ToEnvelopeID   string          `json:"toEnvelopeId" example:"45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // Destination envelope reference
	Amount         types.Amount    `json:"amount" example:"50000"`                                  // The amount in milliunits, must be positive
}

// TransferResult reports the updated envelope and category balances.
type TransferResult struct {
	Source      Envelope   `json:"source"`      // The source envelope after the transfer
	Destination Envelope   `json:"destination"` // The destination envelope after the transfer
	Categories  []Category `json:"categories"`  // The updated category balance caches
	Transferred bool       `json:"transferred"` // Whether funds were moved
}

type TransferResponse struct {
	Data  *TransferResult `json:"data"`                                                           // The transfer result, if the request was successful
	Error *string         `json:"error" example:"the transfer amount must be positive"`           // The error, if any occurred
}

// newTransferResult returns the API v1 representation of the resource
func newTransferResult(c *gin.Context, result models.TransferResult) TransferResult {
	categories := make([]Category, 0, len(result.Categories))
	for _, category := range result.Categories {
		categories = append(categories, newCategory(c, category))
	}

	return TransferResult{
		Source:      newEnvelope(c, result.Source),
		Destination: newEnvelope(c, result.Destination),
		Categories:  categories,
		Transferred: true,
	}
}

// @Summary		Transfer funds
// @Description	Atomically moves a positive amount between two envelopes of a budget. Envelope references are UUIDs or "unallocated".
// @Tags			Transfers
// @Accept		json
// @Produce		json
// @Success		200			{object}	TransferResponse
// @Failure		400			{object}	TransferResponse
// @Failure		404			{object}	TransferResponse
// @Failure		409			{object}	TransferResponse
// @Failure		500			{object}	TransferResponse
// @Param			transfer	body		TransferRequest	true	"Transfer"
// @Router			/v1/transfers [post]
func CreateTransfer(c *gin.Context) {
	var request TransferRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	if request.BudgetID == pouch_uuid.Nil {
		e := errBudgetIDParameter.Error()
		c.JSON(http.StatusBadRequest, TransferResponse{
			Error: &e,
		})
		return
	}

	result, err := models.TransferFunds(models.DB, request.BudgetID, request.FromEnvelopeID, request.ToEnvelopeID, request.Amount)
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
