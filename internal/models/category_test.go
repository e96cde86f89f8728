package models_test

import (
	"github.com/pouchbudget/backend/internal/models"
	"github.com/pouchbudget/backend/internal/types"
	"github.com/pouchbudget/backend/internal/uuid"
)

func (suite *TestSuiteStandard) TestCategoryNameUniquePerBudget() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Daily"})

	category := models.Category{BudgetID: budget.ID, Name: "Daily"}
	err := models.DB.Create(&category).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestDeleteCategoryKeepsEnvelopes() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	category := suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Daily"})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, CategoryID: &category.ID, Name: "Groceries"})

	suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, AccountID: account.ID, EnvelopeID: &envelope.ID, Amount: -12500})

	suite.Require().NoError(models.DeleteCategory(models.DB, category))

	var reloaded models.Envelope
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", envelope.ID).Error)
	suite.Assert().Nil(reloaded.CategoryID)
	suite.Assert().Equal(types.Amount(-12500), reloaded.Balance)

	suite.assertConservation(budget)
}

func (suite *TestSuiteStandard) TestUpdateCategoryOrder() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	first := suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Daily"})
	second := suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Saving"})

	suite.Require().NoError(models.UpdateCategoryOrder(models.DB, budget.ID, []uuid.UUID{second.ID, first.ID}))

	var categories []models.Category
	suite.Require().NoError(models.DB.Order("sort_order ASC").Find(&categories).Error)
	suite.Assert().Equal("Saving", categories[0].Name)
	suite.Assert().Equal("Daily", categories[1].Name)
}

func (suite *TestSuiteStandard) TestUpdateCategoryOrderUnknownID() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})

	err := models.UpdateCategoryOrder(models.DB, budget.ID, []uuid.UUID{uuid.New()})
	suite.Assert().ErrorIs(err, models.ErrCategoryNotFound)
}
