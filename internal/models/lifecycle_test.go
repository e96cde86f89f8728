package models_test

import (
	"time"

	"github.com/pouchbudget/backend/internal/models"
	"github.com/pouchbudget/backend/internal/types"
	"github.com/pouchbudget/backend/internal/uuid"
)

func (suite *TestSuiteStandard) TestArchiveTransactions() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, Name: "Groceries"})

	archivable := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, EnvelopeID: &envelope.ID,
		Amount: -12500, Cleared: true, InInbox: true,
	})

	notCleared := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, EnvelopeID: &envelope.ID,
		Amount: -500, InInbox: true,
	})

	notAssigned := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID,
		Amount: -500, Cleared: true, InInbox: true,
	})

	result, err := models.ArchiveTransactions(models.DB, budget.ID, []uuid.UUID{
		archivable.ID, notCleared.ID, notAssigned.ID, uuid.New(),
	})
	suite.Require().NoError(err)

	suite.Assert().Equal(1, result.ArchivedCount)
	suite.Assert().Equal(3, result.SkippedCount)

	var reloaded models.Transaction
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", archivable.ID).Error)
	suite.Assert().False(reloaded.InInbox)

	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", notCleared.ID).Error)
	suite.Assert().True(reloaded.InInbox)
}

func (suite *TestSuiteStandard) TestArchiveSplitTransaction() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, Name: "Groceries"})

	// Fully assigned split
	assigned := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, Amount: -30000, Cleared: true, InInbox: true,
	},
		models.SubtransactionInput{EnvelopeID: &envelope.ID, Amount: -30000},
	)

	// Split with an unassigned line
	unassigned := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, Amount: -30000, Cleared: true, InInbox: true,
	},
		models.SubtransactionInput{EnvelopeID: &envelope.ID, Amount: -20000},
		models.SubtransactionInput{Amount: -10000},
	)

	result, err := models.ArchiveTransactions(models.DB, budget.ID, []uuid.UUID{assigned.ID, unassigned.ID})
	suite.Require().NoError(err)

	suite.Assert().Equal(1, result.ArchivedCount)
	suite.Assert().Equal(1, result.SkippedCount)
}

func (suite *TestSuiteStandard) TestMoveToBudget() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	unallocated := suite.unallocated(budget)

	inflow := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, Amount: 250000, InInbox: true,
	})

	outflow := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, Amount: -12500, InInbox: true,
	})

	result, err := models.MoveToBudget(models.DB, budget.ID, []uuid.UUID{inflow.ID, outflow.ID})
	suite.Require().NoError(err)

	suite.Assert().Equal(1, result.MovedCount)
	suite.Assert().Equal(1, result.IgnoredCount)

	var reloaded models.Transaction
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", inflow.ID).Error)
	suite.Require().NotNil(reloaded.EnvelopeID)
	suite.Assert().Equal(unallocated.ID, *reloaded.EnvelopeID)
	suite.Assert().False(reloaded.InInbox)

	// The outflow is untouched
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", outflow.ID).Error)
	suite.Assert().Nil(reloaded.EnvelopeID)
	suite.Assert().True(reloaded.InInbox)

	suite.Assert().Equal(types.Amount(250000), suite.envelopeBalance(unallocated.ID))

	suite.assertConservation(budget)
}

func (suite *TestSuiteStandard) TestMergeTransactions() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, Name: "Groceries"})
	payee := suite.createTestPayee(models.Payee{BudgetID: budget.ID, Name: "REWE"})

	importID := "import-1"
	survivor := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID,
		Date:     time.Date(2022, 10, 14, 0, 0, 0, 0, time.UTC),
		Amount:   -12500,
		ImportID: &importID,
		Cleared:  true,
	})

	duplicate := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID,
		Date:       time.Date(2022, 10, 12, 0, 0, 0, 0, time.UTC),
		Amount:     -12500,
		PayeeID:    &payee.ID,
		EnvelopeID: &envelope.ID,
		Memo:       "Weekly groceries",
		InInbox:    true,
	})

	merged, err := models.MergeTransactions(models.DB, budget.ID, []uuid.UUID{survivor.ID, duplicate.ID})
	suite.Require().NoError(err)

	suite.Assert().Equal(survivor.ID, merged.ID)
	// The earliest date wins
	suite.Assert().True(merged.Date.Equal(duplicate.Date))
	// Payee and memo prefer the manually entered record
	suite.Require().NotNil(merged.PayeeID)
	suite.Assert().Equal(payee.ID, *merged.PayeeID)
	suite.Assert().Equal("Weekly groceries", merged.Memo)
	// cleared/in_inbox are true if either was
	suite.Assert().True(merged.Cleared)
	suite.Assert().True(merged.InInbox)
	// The survivor takes over the duplicate's envelope
	suite.Require().NotNil(merged.EnvelopeID)
	suite.Assert().Equal(envelope.ID, *merged.EnvelopeID)

	// The ledger looks like only one transaction ever existed
	suite.Assert().Equal(types.Amount(-12500), suite.accountBalance(account.ID))
	suite.Assert().Equal(types.Amount(-12500), suite.envelopeBalance(envelope.ID))

	var count int64
	suite.Require().NoError(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)

	suite.assertConservation(budget)
}

func (suite *TestSuiteStandard) TestMergeTransactionsValidation() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	otherAccount := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Savings"})
	groceries := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, Name: "Groceries"})
	household := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, Name: "Household"})

	base := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, EnvelopeID: &groceries.ID, Amount: -12500,
	})

	_, err := models.MergeTransactions(models.DB, budget.ID, []uuid.UUID{base.ID})
	suite.Assert().ErrorIs(err, models.ErrMergeTransactionCount)

	differentAccount := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: otherAccount.ID, Amount: -12500,
	})
	_, err = models.MergeTransactions(models.DB, budget.ID, []uuid.UUID{base.ID, differentAccount.ID})
	suite.Assert().ErrorIs(err, models.ErrMergeDifferentAccounts)

	differentAmount := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, Amount: -9999,
	})
	_, err = models.MergeTransactions(models.DB, budget.ID, []uuid.UUID{base.ID, differentAmount.ID})
	suite.Assert().ErrorIs(err, models.ErrMergeDifferentAmounts)

	conflicting := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, EnvelopeID: &household.ID, Amount: -12500,
	})
	_, err = models.MergeTransactions(models.DB, budget.ID, []uuid.UUID{base.ID, conflicting.ID})
	suite.Assert().ErrorIs(err, models.ErrMergeConflictingEnvelope)

	// Nothing was merged, all transactions still exist
	var count int64
	suite.Require().NoError(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(4), count)
}
