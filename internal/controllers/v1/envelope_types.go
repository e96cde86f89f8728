package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pouchbudget/backend/internal/models"
	"github.com/pouchbudget/backend/internal/types"
	pouch_uuid "github.com/pouchbudget/backend/internal/uuid"
)

type EnvelopeEditable struct {
	BudgetID      pouch_uuid.UUID  `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                        // ID of the budget
	CategoryID    *pouch_uuid.UUID `json:"categoryId" example:"878c831f-af99-4a71-b3ca-80deb7d793c1"`                      // ID of the category, optional
	Name          string           `json:"name" example:"Groceries" default:""`                                            // Name of the envelope
	Note          string           `json:"note" example:"For stuff bought at supermarkets and drugstores" default:""`      // A longer description
	MonthlyBudget types.Amount     `json:"monthlyBudget" example:"250000" default:"0"`                                     // The monthly budget target in milliunits
	SortOrder     int              `json:"sortOrder" example:"1" default:"0"`                                              // Position in the envelope list
	Archived      bool             `json:"archived" example:"true" default:"false"`                                        // Is the envelope archived?
}

// model returns the database resource for the API representation of the editable fields
func (editable EnvelopeEditable) model() models.Envelope {
	return models.Envelope{
		BudgetID:      editable.BudgetID,
		CategoryID:    editable.CategoryID,
		Name:          editable.Name,
		Note:          editable.Note,
		MonthlyBudget: editable.MonthlyBudget,
		SortOrder:     editable.SortOrder,
		Archived:      editable.Archived,
	}
}

type EnvelopeLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/envelopes/45b6b5b9-f746-4ae9-b77b-7688b91f8166"`                      // The envelope itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?envelope=45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // Transactions for this envelope
}

// Envelope is the representation of an Envelope in API v1.
type Envelope struct {
	models.DefaultModel
	EnvelopeEditable
	Balance       types.Amount  `json:"balance" example:"180000"`        // The signed balance in milliunits
	IsUnallocated bool          `json:"isUnallocated" example:"false"`   // Is this the distinguished unallocated envelope?
	Links         EnvelopeLinks `json:"links"`
}

// newEnvelope returns the API v1 representation of the resource
func newEnvelope(c *gin.Context, model models.Envelope) Envelope {
	url := c.GetString(string(models.DBContextURL))

	return Envelope{
		DefaultModel: model.DefaultModel,
		EnvelopeEditable: EnvelopeEditable{
			BudgetID:      model.BudgetID,
			CategoryID:    model.CategoryID,
			Name:          model.Name,
			Note:          model.Note,
			MonthlyBudget: model.MonthlyBudget,
			SortOrder:     model.SortOrder,
			Archived:      model.Archived,
		},
		Balance:       model.Balance,
		IsUnallocated: model.IsUnallocated,
		Links: EnvelopeLinks{
			Self:         fmt.Sprintf("%s/v1/envelopes/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?envelope=%s", url, model.ID),
		},
	}
}

type EnvelopeListResponse struct {
	Data       []Envelope  `json:"data"`                                                          // List of envelopes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type EnvelopeCreateResponse struct {
	Data  []EnvelopeResponse `json:"data"`                                                          // Data for the envelopes
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *EnvelopeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, EnvelopeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EnvelopeResponse struct {
	Data  *Envelope `json:"data"`                                                          // Data for the envelope
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this envelope
}

// AllocateRequest is the body for the manual allocation endpoint.
type AllocateRequest struct {
	Amount types.Amount `json:"amount" example:"50000"` // Signed amount in milliunits. Positive allocates to the envelope, negative returns funds.
}

type EnvelopeQueryFilter struct {
	Name          string          `form:"name" filterField:"false"`   // By name
	BudgetID      pouch_uuid.UUID `form:"budget"`                     // By ID of the budget
	CategoryID    pouch_uuid.UUID `form:"category"`                   // By ID of the category
	Archived      bool            `form:"archived"`                   // Is the envelope archived?
	IsUnallocated bool            `form:"unallocated"`                // Is this the unallocated envelope?
	Offset        uint            `form:"offset" filterField:"false"` // The offset of the first Envelope returned. Defaults to 0.
	Limit         int             `form:"limit" filterField:"false"`  // Maximum number of Envelopes to return. Defaults to 50.
}

func (f EnvelopeQueryFilter) model() models.Envelope {
	// If the categoryID is nil, use an actual nil, not uuid.Nil
	var categoryID *pouch_uuid.UUID
	if f.CategoryID != pouch_uuid.Nil {
		id := f.CategoryID
		categoryID = &id
	}

	return models.Envelope{
		BudgetID:      f.BudgetID,
		CategoryID:    categoryID,
		Archived:      f.Archived,
		IsUnallocated: f.IsUnallocated,
	}
}
