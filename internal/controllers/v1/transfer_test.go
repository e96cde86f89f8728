package v1_test

import (
	"net/http"

	v1 "github.com/pouchbudget/backend/internal/controllers/v1"
	"github.com/pouchbudget/backend/test"
)

func (suite *TestSuiteStandard) TestTransferCreate() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transfers", v1.TransferRequest{
		BudgetID:       budget.Data.ID,
		FromEnvelopeID: "unallocated",
		ToEnvelopeID:   envelope.Data.ID.String(),
		Amount:         50000,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransferResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Transferred)
	suite.Assert().EqualValues(-50000, response.Data.Source.Balance)
	suite.Assert().EqualValues(50000, response.Data.Destination.Balance)
}

func (suite *TestSuiteStandard) TestTransferNonPositiveAmount() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	for _, amount := range []int64{0, -50000} {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transfers", map[string]any{
			"budgetId":       budget.Data.ID,
			"fromEnvelopeId": "unallocated",
			"toEnvelopeId":   envelope.Data.ID.String(),
			"amount":         amount,
		})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestTransferSameEnvelope() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	unallocated := suite.unallocatedEnvelope(budget)

	// One reference by alias, one by ID, still the same envelope
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transfers", v1.TransferRequest{
		BudgetID:       budget.Data.ID,
		FromEnvelopeID: "unallocated",
		ToEnvelopeID:   unallocated.ID.String(),
		Amount:         50000,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransferInvalidReference() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transfers", v1.TransferRequest{
		BudgetID:       budget.Data.ID,
		FromEnvelopeID: "no-such-envelope",
		ToEnvelopeID:   envelope.Data.ID.String(),
		Amount:         50000,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransferUnknownEnvelope() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Testing budget"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transfers", v1.TransferRequest{
		BudgetID:       budget.Data.ID,
		FromEnvelopeID: "unallocated",
		ToEnvelopeID:   "bb8palpd-0000-4000-8000-000000000000",
		Amount:         50000,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transfers", v1.TransferRequest{
		BudgetID:       budget.Data.ID,
		FromEnvelopeID: "unallocated",
		ToEnvelopeID:   "d2b427d9-4a84-4f3e-9a34-7cbbc1b0c316",
		Amount:         50000,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransferRequiresBudget() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transfers", v1.TransferRequest{
		FromEnvelopeID: "unallocated",
		ToEnvelopeID:   "d2b427d9-4a84-4f3e-9a34-7cbbc1b0c316",
		Amount:         50000,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
