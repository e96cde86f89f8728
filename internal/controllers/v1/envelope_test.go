package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/pouchbudget/backend/internal/controllers/v1"
	pouch_uuid "github.com/pouchbudget/backend/internal/uuid"
	"github.com/pouchbudget/backend/test"
)

func (suite *TestSuiteStandard) TestEnvelopeCreate() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{
		BudgetID:      budget.Data.ID,
		Name:          "Groceries",
		MonthlyBudget: 250000,
	})

	suite.Assert().Equal("Groceries", envelope.Data.Name)
	suite.Assert().EqualValues(250000, envelope.Data.MonthlyBudget)
	suite.Assert().False(envelope.Data.IsUnallocated)
	suite.Assert().Zero(envelope.Data.Balance)
}

func (suite *TestSuiteStandard) TestEnvelopeUnallocatedCreatedWithBudget() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	unallocated := suite.unallocatedEnvelope(budget)

	suite.Assert().Equal("Unallocated", unallocated.Name)
	suite.Assert().True(unallocated.IsUnallocated)
	suite.Assert().Nil(unallocated.CategoryID)
}

func (suite *TestSuiteStandard) TestEnvelopeUnallocatedReadOnly() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	unallocated := suite.unallocatedEnvelope(budget)

	r := test.Request(suite.T(), http.MethodPatch, unallocated.Links.Self, map[string]any{
		"name": "Renamed",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodDelete, unallocated.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestEnvelopeGetList() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	category := suite.createTestCategory(v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Daily life"})

	suite.createTestEnvelope(v1.EnvelopeEditable{BudgetID: budget.Data.ID, CategoryID: &category.Data.ID, Name: "Groceries"})
	suite.createTestEnvelope(v1.EnvelopeEditable{BudgetID: budget.Data.ID, Name: "Household"})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/envelopes?category=%s", category.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Groceries", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestEnvelopeUpdate() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPatch, envelope.Data.Links.Self, map[string]any{
		"monthlyBudget": 300000,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestEnvelopeAllocate() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPost, envelope.Data.Links.Self+"/allocate", v1.AllocateRequest{Amount: 50000})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransferResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Transferred)
	suite.Assert().EqualValues(50000, response.Data.Destination.Balance)
	suite.Assert().EqualValues(-50000, response.Data.Source.Balance)

	// Negative amounts return funds
	r = test.Request(suite.T(), http.MethodPost, envelope.Data.Links.Self+"/allocate", v1.AllocateRequest{Amount: -20000})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().EqualValues(30000, response.Data.Destination.Balance)
}

func (suite *TestSuiteStandard) TestEnvelopeQuickAllocate() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	account := suite.createTestAccount(v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	suite.createTestTransaction(v1.TransactionEditable{
		BudgetID:   budget.Data.ID,
		AccountID:  account.Data.ID,
		EnvelopeID: &envelope.Data.ID,
		Amount:     -12500,
	})

	r := test.Request(suite.T(), http.MethodPost, envelope.Data.Links.Self+"/quick-allocate", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransferResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Transferred)
	suite.Assert().Zero(response.Data.Destination.Balance)
	suite.Assert().EqualValues(-12500, response.Data.Source.Balance)

	// A second run has nothing to do
	r = test.Request(suite.T(), http.MethodPost, envelope.Data.Links.Self+"/quick-allocate", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().False(response.Data.Transferred)
}

func (suite *TestSuiteStandard) TestEnvelopeSweep() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPost, envelope.Data.Links.Self+"/allocate", v1.AllocateRequest{Amount: 50000})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, envelope.Data.Links.Self+"/sweep", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransferResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Transferred)
	suite.Assert().Zero(response.Data.Source.Balance)
	suite.Assert().Zero(response.Data.Destination.Balance)
}

func (suite *TestSuiteStandard) TestEnvelopeOrder() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	first := suite.createTestEnvelope(v1.EnvelopeEditable{BudgetID: budget.Data.ID, Name: "Groceries"})
	second := suite.createTestEnvelope(v1.EnvelopeEditable{BudgetID: budget.Data.ID, Name: "Household"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/envelopes/order", v1.OrderRequest{
		BudgetID: budget.Data.ID,
		IDs:      []pouch_uuid.UUID{second.Data.ID, first.Data.ID},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestEnvelopeDeleteMovesBalance() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	account := suite.createTestAccount(v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	suite.createTestTransaction(v1.TransactionEditable{
		BudgetID:   budget.Data.ID,
		AccountID:  account.Data.ID,
		EnvelopeID: &envelope.Data.ID,
		Amount:     -12500,
	})

	r := test.Request(suite.T(), http.MethodDelete, envelope.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	unallocated := suite.unallocatedEnvelope(budget)
	suite.Assert().EqualValues(-12500, unallocated.Balance)
}
