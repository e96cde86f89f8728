package models_test

import (
	"time"

	"github.com/pouchbudget/backend/internal/models"
)

func (suite *TestSuiteStandard) TestDuplicateCandidates() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	otherAccount := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Savings"})
	payee := suite.createTestPayee(models.Payee{BudgetID: budget.ID, Name: "Bakery Brümmer"})

	date := time.Date(2022, 10, 12, 0, 0, 0, 0, time.UTC)

	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, PayeeID: &payee.ID,
		Date: date, Amount: -14250,
	})

	// Same amount, similar free-text payee, two days apart
	match := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, PayeeName: "bakery bruemmer",
		Date: date.AddDate(0, 0, 2), Amount: -14250,
	})

	// Outside the seven day window
	suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, PayeeName: "Bakery Brümmer",
		Date: date.AddDate(0, 0, 10), Amount: -14250,
	})

	// Different amount
	suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, PayeeName: "Bakery Brümmer",
		Date: date, Amount: -9999,
	})

	// Different account
	suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: otherAccount.ID, PayeeName: "Bakery Brümmer",
		Date: date, Amount: -14250,
	})

	// Same everything, but a completely different payee and memo
	suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, PayeeName: "Hardware store",
		Date: date, Amount: -14250,
	})

	// Load with the Payee association, the label comparison needs it
	suite.Require().NoError(models.DB.Preload("Payee").First(&transaction, "id = ?", transaction.ID).Error)

	candidates, err := models.DuplicateCandidates(models.DB, transaction)
	suite.Require().NoError(err)

	suite.Require().Len(candidates, 1)
	suite.Assert().Equal(match.ID, candidates[0].ID)
}

func (suite *TestSuiteStandard) TestDuplicateCandidatesMemoFallback() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})

	date := time.Date(2022, 10, 12, 0, 0, 0, 0, time.UTC)

	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, Memo: "Monthly rent",
		Date: date, Amount: -800000,
	})

	match := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, Memo: "monthly rent",
		Date: date.AddDate(0, 0, 1), Amount: -800000,
	})

	candidates, err := models.DuplicateCandidates(models.DB, transaction)
	suite.Require().NoError(err)

	suite.Require().Len(candidates, 1)
	suite.Assert().Equal(match.ID, candidates[0].ID)
}

func (suite *TestSuiteStandard) TestDuplicateCandidatesExcludesSelf() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})

	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID, AccountID: account.ID, Memo: "Lunch", Amount: -14250,
	})

	candidates, err := models.DuplicateCandidates(models.DB, transaction)
	suite.Require().NoError(err)
	suite.Assert().Empty(candidates)
}
