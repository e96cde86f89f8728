package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pouchbudget/backend/internal/models"
	"github.com/pouchbudget/backend/internal/types"
	pouch_uuid "github.com/pouchbudget/backend/internal/uuid"
)

type AccountEditable struct {
	BudgetID pouch_uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	Name     string          `json:"name" example:"Cash" default:""`                          // Name of the account
	Note     string          `json:"note" example:"Money in my wallet" default:""`            // A longer description
	OnBudget bool            `json:"onBudget" example:"true" default:"false"`                 // Does the account factor into the budget?
	Balance  types.Amount    `json:"balance" example:"2735000" default:"0"`                   // The balance in milliunits
	Archived bool            `json:"archived" example:"true" default:"false"`                 // Is the account archived?
}

// model returns the database resource for the API representation of the editable fields
func (editable AccountEditable) model() models.Account {
	return models.Account{
		BudgetID: editable.BudgetID,
		Name:     editable.Name,
		Note:     editable.Note,
		OnBudget: editable.OnBudget,
		Balance:  editable.Balance,
		Archived: editable.Archived,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                      // The account itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions for this account
}

// Account is the representation of an Account in API v1.
type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`
}

// newAccount returns the API v1 representation of the resource
func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			BudgetID: model.BudgetID,
			Name:     model.Name,
			Note:     model.Note,
			OnBudget: model.OnBudget,
			Balance:  model.Balance,
			Archived: model.Archived,
		},
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                          // List of created Accounts
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this account
	Data  *Account `json:"data"`                                                          // The Account data, if the request was successful
}

type AccountQueryFilter struct {
	Name     string          `form:"name" filterField:"false"`   // Filter by name
	BudgetID pouch_uuid.UUID `form:"budget"`                     // Filter by budget ID
	OnBudget bool            `form:"onBudget"`                   // Is the account on-budget?
	Archived bool            `form:"archived"`                   // Is the account archived?
	Offset   uint            `form:"offset" filterField:"false"` // The offset of the first Account returned. Defaults to 0.
	Limit    int             `form:"limit" filterField:"false"`  // Maximum number of Accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		BudgetID: f.BudgetID,
		OnBudget: f.OnBudget,
		Archived: f.Archived,
	}
}
