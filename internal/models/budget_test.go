package models_test

import (
	"github.com/pouchbudget/backend/internal/models"
)

func (suite *TestSuiteStandard) TestBudgetTrimWhitespace() {
	budget := suite.createTestBudget(models.Budget{
		Name:           " Whitespace budget  ",
		Note:           " Whitespace note\t",
		CurrencySymbol: " € ",
	})

	suite.Assert().Equal("Whitespace budget", budget.Name)
	suite.Assert().Equal("Whitespace note", budget.Note)
	suite.Assert().Equal("€", budget.CurrencySymbol)
}

func (suite *TestSuiteStandard) TestBudgetCreatesUnallocatedEnvelope() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})

	envelope, err := budget.UnallocatedEnvelope(models.DB)
	suite.Require().NoError(err)

	suite.Assert().True(envelope.IsUnallocated)
	suite.Assert().Nil(envelope.CategoryID)
	suite.Assert().Equal("Unallocated", envelope.Name)
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	budget := suite.createTestBudget(models.Budget{Name: "Delete me"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	category := suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Daily"})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, CategoryID: &category.ID, Name: "Groceries"})
	payee := suite.createTestPayee(models.Payee{BudgetID: budget.ID, Name: "REWE"})

	suite.createTestTransaction(models.Transaction{
		BudgetID:   budget.ID,
		AccountID:  account.ID,
		PayeeID:    &payee.ID,
		EnvelopeID: &envelope.ID,
		Amount:     -12500,
	})

	suite.Require().NoError(models.DeleteBudget(models.DB, budget))

	for name, model := range map[string]any{
		"budget":      &models.Budget{},
		"account":     &models.Account{},
		"category":    &models.Category{},
		"envelope":    &models.Envelope{},
		"payee":       &models.Payee{},
		"transaction": &models.Transaction{},
	} {
		var count int64
		suite.Require().NoError(models.DB.Model(model).Count(&count).Error)
		suite.Assert().Zero(count, "leftover %s resources after budget deletion", name)
	}
}

func (suite *TestSuiteStandard) TestDeleteBudgetKeepsOthers() {
	budget := suite.createTestBudget(models.Budget{Name: "Delete me"})
	other := suite.createTestBudget(models.Budget{Name: "Keep me"})
	suite.createTestAccount(models.Account{BudgetID: other.ID, Name: "Checking"})

	suite.Require().NoError(models.DeleteBudget(models.DB, budget))

	var accounts int64
	suite.Require().NoError(models.DB.Model(&models.Account{}).Count(&accounts).Error)
	suite.Assert().Equal(int64(1), accounts)

	_, err := other.UnallocatedEnvelope(models.DB)
	suite.Assert().NoError(err)
}
