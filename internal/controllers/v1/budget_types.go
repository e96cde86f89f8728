package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pouchbudget/backend/internal/models"
)

type BudgetEditable struct {
	Name           string `json:"name" example:"Morre's Budget" default:""`         // Name of the budget
	Note           string `json:"note" example:"My personal budget" default:""`     // A longer description
	CurrencySymbol string `json:"currencySymbol" example:"€" default:""`            // The currency symbol for display
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:           editable.Name,
		Note:           editable.Note,
		CurrencySymbol: editable.CurrencySymbol,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                     // The budget itself
	Accounts     string `json:"accounts" example:"https://example.com/api/v1/accounts?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`         // Accounts for this budget
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`     // Categories for this budget
	Envelopes    string `json:"envelopes" example:"https://example.com/api/v1/envelopes?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`       // Envelopes for this budget
	Payees       string `json:"payees" example:"https://example.com/api/v1/payees?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`             // Payees for this budget
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Transactions for this budget
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:           model.Name,
			Note:           model.Note,
			CurrencySymbol: model.CurrencySymbol,
		},
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Accounts:     fmt.Sprintf("%s/v1/accounts?budget=%s", url, model.ID),
			Categories:   fmt.Sprintf("%s/v1/categories?budget=%s", url, model.ID),
			Envelopes:    fmt.Sprintf("%s/v1/envelopes?budget=%s", url, model.ID),
			Payees:       fmt.Sprintf("%s/v1/payees?budget=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?budget=%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created Budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget
	Data  *Budget `json:"data"`                                                          // The Budget data, if the request was successful
}

type BudgetQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Filter by name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Name: f.Name,
	}
}
