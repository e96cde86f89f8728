package models_test

import (
	"github.com/pouchbudget/backend/internal/models"
	"github.com/pouchbudget/backend/internal/types"
)

func (suite *TestSuiteStandard) TestAccountNameUniquePerBudget() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})

	account := models.Account{BudgetID: budget.ID, Name: "Checking"}
	err := models.DB.Create(&account).Error
	suite.Assert().ErrorIs(err, models.ErrAccountNameNotUnique)

	// The same name is fine in another budget
	other := suite.createTestBudget(models.Budget{Name: "Other budget"})
	suite.createTestAccount(models.Account{BudgetID: other.ID, Name: "Checking"})
}

func (suite *TestSuiteStandard) TestAccountCreateNeedsBudget() {
	account := models.Account{Name: "Orphan"}
	err := models.DB.Create(&account).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateAccountBalance() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})

	suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, AccountID: account.ID, Amount: 100000})
	suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, AccountID: account.ID, Amount: -12500})

	suite.Assert().Equal(types.Amount(87500), suite.accountBalance(account.ID))
}

func (suite *TestSuiteStandard) TestDeleteAccountReversesEffects() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	category := suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Daily"})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, CategoryID: &category.ID, Name: "Groceries"})

	suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, AccountID: account.ID, EnvelopeID: &envelope.ID, Amount: -12500})

	suite.Require().NoError(models.DeleteAccount(models.DB, account))

	suite.Assert().Equal(types.Amount(0), suite.envelopeBalance(envelope.ID))
	suite.Assert().Equal(types.Amount(0), suite.categoryBalance(category.ID))

	var transactions int64
	suite.Require().NoError(models.DB.Model(&models.Transaction{}).Count(&transactions).Error)
	suite.Assert().Zero(transactions)

	suite.assertConservation(budget)
}
