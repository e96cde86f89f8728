package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pouchbudget/backend/internal/models"
	pouch_uuid "github.com/pouchbudget/backend/internal/uuid"
)

type PayeeEditable struct {
	BudgetID pouch_uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	Name     string          `json:"name" example:"REWE" default:""`                          // Name of the payee
}

// model returns the database resource for the API representation of the editable fields
func (editable PayeeEditable) model() models.Payee {
	return models.Payee{
		BudgetID: editable.BudgetID,
		Name:     editable.Name,
	}
}

type PayeeLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/payees/c9e4ee7a-71ad-4abd-8cc4-2dcf5a891f37"`                    // The payee itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?payee=c9e4ee7a-71ad-4abd-8cc4-2dcf5a891f37"` // Transactions for this payee
}

// Payee is the representation of a Payee in API v1.
type Payee struct {
	models.DefaultModel
	PayeeEditable
	Links PayeeLinks `json:"links"`
}

// newPayee returns the API v1 representation of the resource
func newPayee(c *gin.Context, model models.Payee) Payee {
	url := c.GetString(string(models.DBContextURL))

	return Payee{
		DefaultModel: model.DefaultModel,
		PayeeEditable: PayeeEditable{
			BudgetID: model.BudgetID,
			Name:     model.Name,
		},
		Links: PayeeLinks{
			Self:         fmt.Sprintf("%s/v1/payees/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?payee=%s", url, model.ID),
		},
	}
}

type PayeeListResponse struct {
	Data       []Payee     `json:"data"`                                                          // List of payees
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PayeeCreateResponse struct {
	Data  []PayeeResponse `json:"data"`                                                          // List of created Payees
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (p *PayeeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, PayeeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PayeeResponse struct {
	Data  *Payee  `json:"data"`                                                          // The Payee data, if the request was successful
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this payee
}

// PayeeCleanupRequest is the body for the unused payee cleanup endpoint.
type PayeeCleanupRequest struct {
	BudgetID pouch_uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
}

type PayeeCleanupResult struct {
	DeletedCount int64 `json:"deletedCount" example:"3"` // Number of payees that were removed
}

type PayeeCleanupResponse struct {
	Data  *PayeeCleanupResult `json:"data"`                                              // The cleanup result
	Error *string             `json:"error" example:"the budgetId field must be set"` // The error, if any occurred
}

type PayeeQueryFilter struct {
	Name     string          `form:"name" filterField:"false"`   // Filter by name
	BudgetID pouch_uuid.UUID `form:"budget"`                     // Filter by budget ID
	Offset   uint            `form:"offset" filterField:"false"` // The offset of the first Payee returned. Defaults to 0.
	Limit    int             `form:"limit" filterField:"false"`  // Maximum number of Payees to return. Defaults to 50.
}

func (f PayeeQueryFilter) model() models.Payee {
	return models.Payee{
		BudgetID: f.BudgetID,
	}
}
