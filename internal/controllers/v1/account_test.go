package v1_test

import (
	"net/http"

	v1 "github.com/pouchbudget/backend/internal/controllers/v1"
	"github.com/pouchbudget/backend/test"
)

func (suite *TestSuiteStandard) TestAccountCreate() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	account := suite.createTestAccount(v1.AccountEditable{
		BudgetID: budget.Data.ID,
		Name:     "Checking",
		OnBudget: true,
	})

	suite.Assert().Equal("Checking", account.Data.Name)
	suite.Assert().True(account.Data.OnBudget)
}

func (suite *TestSuiteStandard) TestAccountCreateNoBudget() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/accounts", []v1.AccountEditable{
		{Name: "Checking"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountCreateDuplicateName() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	suite.createTestAccount(v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/accounts", []v1.AccountEditable{
		{BudgetID: budget.Data.ID, Name: "Checking"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestAccountGetList() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	other := suite.createTestBudget(v1.BudgetEditable{Name: "Other budget"})

	suite.createTestAccount(v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	suite.createTestAccount(v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Savings"})
	suite.createTestAccount(v1.AccountEditable{BudgetID: other.Data.ID, Name: "Cash"})

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Accounts, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteStandard) TestAccountUpdate() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	account := suite.createTestAccount(v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})

	r := test.Request(suite.T(), http.MethodPatch, account.Data.Links.Self, map[string]any{
		"archived": true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Archived)
	suite.Assert().Equal("Checking", response.Data.Name)
}

func (suite *TestSuiteStandard) TestAccountDeleteReversesEffects() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	account := suite.createTestAccount(v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	suite.createTestTransaction(v1.TransactionEditable{
		BudgetID:   budget.Data.ID,
		AccountID:  account.Data.ID,
		EnvelopeID: &envelope.Data.ID,
		Amount:     -12500,
	})

	r := test.Request(suite.T(), http.MethodDelete, account.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, envelope.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Zero(response.Data.Balance)
}
