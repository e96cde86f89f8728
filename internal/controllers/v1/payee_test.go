package v1_test

import (
	"net/http"

	v1 "github.com/pouchbudget/backend/internal/controllers/v1"
	"github.com/pouchbudget/backend/test"
)

func (suite *TestSuiteStandard) TestPayeeCreate() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	payee := suite.createTestPayee(v1.PayeeEditable{BudgetID: budget.Data.ID, Name: "REWE"})

	suite.Assert().Equal("REWE", payee.Data.Name)
}

func (suite *TestSuiteStandard) TestPayeeGetList() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	suite.createTestPayee(v1.PayeeEditable{BudgetID: budget.Data.ID, Name: "REWE"})
	suite.createTestPayee(v1.PayeeEditable{BudgetID: budget.Data.ID, Name: "Bakery Brümmer"})

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Payees, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PayeeListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteStandard) TestPayeeCleanup() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	account := suite.createTestAccount(v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	used := suite.createTestPayee(v1.PayeeEditable{BudgetID: budget.Data.ID, Name: "REWE"})
	suite.createTestPayee(v1.PayeeEditable{BudgetID: budget.Data.ID, Name: "Unused one"})
	suite.createTestPayee(v1.PayeeEditable{BudgetID: budget.Data.ID, Name: "Unused two"})

	suite.createTestTransaction(v1.TransactionEditable{
		BudgetID:  budget.Data.ID,
		AccountID: account.Data.ID,
		PayeeID:   &used.Data.ID,
		Amount:    -12500,
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/payees/cleanup", v1.PayeeCleanupRequest{
		BudgetID: budget.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PayeeCleanupResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().EqualValues(2, response.Data.DeletedCount)
}

func (suite *TestSuiteStandard) TestPayeeCleanupRequiresBudget() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/payees/cleanup", v1.PayeeCleanupRequest{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPayeeDeleteKeepsName() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	account := suite.createTestAccount(v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	payee := suite.createTestPayee(v1.PayeeEditable{BudgetID: budget.Data.ID, Name: "REWE"})

	transaction := suite.createTestTransaction(v1.TransactionEditable{
		BudgetID:  budget.Data.ID,
		AccountID: account.Data.ID,
		PayeeID:   &payee.Data.ID,
		Amount:    -12500,
	})

	r := test.Request(suite.T(), http.MethodDelete, payee.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data.PayeeID)
	suite.Assert().Equal("REWE", response.Data.PayeeName)
}
