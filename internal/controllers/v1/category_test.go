package v1_test

import (
	"net/http"

	v1 "github.com/pouchbudget/backend/internal/controllers/v1"
	pouch_uuid "github.com/pouchbudget/backend/internal/uuid"
	"github.com/pouchbudget/backend/test"
)

func (suite *TestSuiteStandard) TestCategoryCreate() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	category := suite.createTestCategory(v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Daily life"})

	suite.Assert().Equal("Daily life", category.Data.Name)
	suite.Assert().Zero(category.Data.Balance)
}

func (suite *TestSuiteStandard) TestCategoryBalanceAggregates() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	account := suite.createTestAccount(v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	category := suite.createTestCategory(v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Daily life"})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{
		BudgetID: budget.Data.ID, CategoryID: &category.Data.ID, Name: "Groceries",
	})

	suite.createTestTransaction(v1.TransactionEditable{
		BudgetID:   budget.Data.ID,
		AccountID:  account.Data.ID,
		EnvelopeID: &envelope.Data.ID,
		Amount:     -12500,
	})

	r := test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().EqualValues(-12500, response.Data.Balance)
}

func (suite *TestSuiteStandard) TestCategoryOrder() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	first := suite.createTestCategory(v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Daily life"})
	second := suite.createTestCategory(v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Saving"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories/order", v1.OrderRequest{
		BudgetID: budget.Data.ID,
		IDs:      []pouch_uuid.UUID{second.Data.ID, first.Data.ID},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, budget.Data.Links.Categories, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Saving", response.Data[0].Name)
	suite.Assert().Equal("Daily life", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestCategoryOrderRequiresBudget() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	category := suite.createTestCategory(v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Daily life"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories/order", v1.OrderRequest{
		IDs: []pouch_uuid.UUID{category.Data.ID},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryDeleteKeepsEnvelopes() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	category := suite.createTestCategory(v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Daily life"})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{
		BudgetID: budget.Data.ID, CategoryID: &category.Data.ID, Name: "Groceries",
	})

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, envelope.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data.CategoryID)
}
