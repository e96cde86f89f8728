package models_test

import (
	"github.com/pouchbudget/backend/internal/models"
	"github.com/pouchbudget/backend/internal/types"
	"github.com/pouchbudget/backend/internal/uuid"
)

func (suite *TestSuiteStandard) TestTransferFunds() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	category := suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Daily"})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, CategoryID: &category.ID, Name: "Groceries"})
	unallocated := suite.unallocated(budget)

	result, err := models.TransferFunds(models.DB, budget.ID, models.UnallocatedAlias, envelope.ID.String(), 50000)
	suite.Require().NoError(err)

	suite.Assert().Equal(types.Amount(-50000), result.Source.Balance)
	suite.Assert().Equal(types.Amount(50000), result.Destination.Balance)
	suite.Assert().Equal(types.Amount(-50000), suite.envelopeBalance(unallocated.ID))
	suite.Assert().Equal(types.Amount(50000), suite.envelopeBalance(envelope.ID))

	// Only the destination envelope has a category
	suite.Require().Len(result.Categories, 1)
	suite.Assert().Equal(types.Amount(50000), result.Categories[0].Balance)
	suite.Assert().Equal(types.Amount(50000), suite.categoryBalance(category.ID))

	suite.assertConservation(budget)
}

func (suite *TestSuiteStandard) TestTransferFundsSymmetry() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, Name: "Groceries"})
	unallocated := suite.unallocated(budget)

	_, err := models.TransferFunds(models.DB, budget.ID, models.UnallocatedAlias, envelope.ID.String(), 50000)
	suite.Require().NoError(err)

	_, err = models.TransferFunds(models.DB, budget.ID, envelope.ID.String(), models.UnallocatedAlias, 50000)
	suite.Require().NoError(err)

	suite.Assert().Equal(types.Amount(0), suite.envelopeBalance(envelope.ID))
	suite.Assert().Equal(types.Amount(0), suite.envelopeBalance(unallocated.ID))
}

func (suite *TestSuiteStandard) TestTransferFundsRejectsNonPositiveAmount() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, Name: "Groceries"})

	for _, amount := range []types.Amount{0, -1000} {
		_, err := models.TransferFunds(models.DB, budget.ID, models.UnallocatedAlias, envelope.ID.String(), amount)
		suite.Assert().ErrorIs(err, models.ErrTransferAmountNotPositive)
	}
}

func (suite *TestSuiteStandard) TestTransferFundsRejectsSameEnvelope() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	unallocated := suite.unallocated(budget)

	// The alias and the explicit ID resolve to the same envelope
	_, err := models.TransferFunds(models.DB, budget.ID, models.UnallocatedAlias, unallocated.ID.String(), 1000)
	suite.Assert().ErrorIs(err, models.ErrTransferSameEnvelope)
}

func (suite *TestSuiteStandard) TestTransferFundsInvalidRef() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})

	_, err := models.TransferFunds(models.DB, budget.ID, "no-such-envelope", models.UnallocatedAlias, 1000)
	suite.Assert().ErrorIs(err, models.ErrEnvelopeRefInvalid)
}

func (suite *TestSuiteStandard) TestTransferFundsUnknownEnvelope() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})

	_, err := models.TransferFunds(models.DB, budget.ID, uuid.NewString(), models.UnallocatedAlias, 1000)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestQuickAllocate() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, Name: "Groceries"})
	unallocated := suite.unallocated(budget)

	suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, AccountID: account.ID, EnvelopeID: &envelope.ID, Amount: -12500})

	result, transferred, err := models.QuickAllocate(models.DB, budget.ID, envelope.ID)
	suite.Require().NoError(err)
	suite.Assert().True(transferred)

	suite.Assert().Equal(types.Amount(0), result.Destination.Balance)
	suite.Assert().Equal(types.Amount(0), suite.envelopeBalance(envelope.ID))
	suite.Assert().Equal(types.Amount(-12500), suite.envelopeBalance(unallocated.ID))

	suite.assertConservation(budget)
}

func (suite *TestSuiteStandard) TestQuickAllocateNoOpWhenNotNegative() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, Name: "Groceries"})
	unallocated := suite.unallocated(budget)

	_, transferred, err := models.QuickAllocate(models.DB, budget.ID, envelope.ID)
	suite.Require().NoError(err)
	suite.Assert().False(transferred)

	suite.Assert().Equal(types.Amount(0), suite.envelopeBalance(unallocated.ID))
}

func (suite *TestSuiteStandard) TestSweep() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, Name: "Groceries"})
	unallocated := suite.unallocated(budget)

	_, err := models.TransferFunds(models.DB, budget.ID, models.UnallocatedAlias, envelope.ID.String(), 30000)
	suite.Require().NoError(err)

	result, transferred, err := models.Sweep(models.DB, budget.ID, envelope.ID)
	suite.Require().NoError(err)
	suite.Assert().True(transferred)

	suite.Assert().Equal(types.Amount(0), result.Source.Balance)
	suite.Assert().Equal(types.Amount(0), suite.envelopeBalance(envelope.ID))
	suite.Assert().Equal(types.Amount(0), suite.envelopeBalance(unallocated.ID))
}

func (suite *TestSuiteStandard) TestSweepNoOpWhenNotPositive() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, Name: "Groceries"})

	_, transferred, err := models.Sweep(models.DB, budget.ID, envelope.ID)
	suite.Require().NoError(err)
	suite.Assert().False(transferred)
}

func (suite *TestSuiteStandard) TestAllocateSigned() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, Name: "Groceries"})
	unallocated := suite.unallocated(budget)

	_, err := models.Allocate(models.DB, budget.ID, envelope.ID, 40000)
	suite.Require().NoError(err)
	suite.Assert().Equal(types.Amount(40000), suite.envelopeBalance(envelope.ID))

	_, err = models.Allocate(models.DB, budget.ID, envelope.ID, -15000)
	suite.Require().NoError(err)
	suite.Assert().Equal(types.Amount(25000), suite.envelopeBalance(envelope.ID))
	suite.Assert().Equal(types.Amount(-25000), suite.envelopeBalance(unallocated.ID))
}
