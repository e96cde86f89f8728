package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pouchbudget/backend/internal/models"
	"github.com/pouchbudget/backend/internal/types"
	pouch_uuid "github.com/pouchbudget/backend/internal/uuid"
)

type CategoryEditable struct {
	BudgetID  pouch_uuid.UUID `json:"budgetId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`            // ID of the budget the category belongs to
	Name      string          `json:"name" example:"Saving" default:""`                                   // Name of the category
	Note      string          `json:"note" example:"All envelopes for long-term saving" default:""`       // A longer description
	SortOrder int             `json:"sortOrder" example:"3" default:"0"`                                  // Position in the category list
	Archived  bool            `json:"archived" example:"true" default:"false"`                            // Is the category archived?
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		BudgetID:  editable.BudgetID,
		Name:      editable.Name,
		Note:      editable.Note,
		SortOrder: editable.SortOrder,
		Archived:  editable.Archived,
	}
}

type CategoryLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91f71defe"`                 // The category itself
	Envelopes string `json:"envelopes" example:"https://example.com/api/v1/envelopes?category=3b1ea324-d438-4419-882a-2fc91f71defe"`    // Envelopes for this category
}

// Category is the representation of a Category in API v1.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Balance types.Amount  `json:"balance" example:"750000"` // Sum of the balances of the member envelopes
	Links   CategoryLinks `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			BudgetID:  model.BudgetID,
			Name:      model.Name,
			Note:      model.Note,
			SortOrder: model.SortOrder,
			Archived:  model.Archived,
		},
		Balance: model.Balance,
		Links: CategoryLinks{
			Self:      fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Envelopes: fmt.Sprintf("%s/v1/envelopes?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of created Categories
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // The Category data, if the request was successful
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this category
}

type CategoryQueryFilter struct {
	Name     string          `form:"name" filterField:"false"`   // Filter by name
	BudgetID pouch_uuid.UUID `form:"budget"`                     // Filter by budget ID
	Archived bool            `form:"archived"`                   // Is the category archived?
	Offset   uint            `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit    int             `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		BudgetID: f.BudgetID,
		Archived: f.Archived,
	}
}
