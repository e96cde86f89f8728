package models_test

import (
	"time"

	"github.com/pouchbudget/backend/internal/models"
	"github.com/pouchbudget/backend/internal/types"
	"github.com/pouchbudget/backend/internal/uuid"
)

func (suite *TestSuiteStandard) TestTransactionDateUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})

	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID:  budget.ID,
		AccountID: account.ID,
		Date:      time.Date(2022, 10, 12, 3, 4, 5, 0, tz),
		Amount:    -14250,
	})

	var reloaded models.Transaction
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", transaction.ID).Error)
	suite.Assert().Equal(time.UTC, reloaded.Date.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToNow() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})

	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID:  budget.ID,
		AccountID: account.ID,
		Amount:    -14250,
	})

	suite.Assert().WithinDuration(time.Now(), transaction.Date, time.Minute)
}

func (suite *TestSuiteStandard) TestTransactionCreateChecksReferences() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	other := suite.createTestBudget(models.Budget{Name: "Other budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	foreignEnvelope := suite.createTestEnvelope(models.Envelope{BudgetID: other.ID, Name: "Groceries"})

	// Envelope of another budget
	_, err := models.CreateTransaction(models.DB, models.Transaction{
		BudgetID:   budget.ID,
		AccountID:  account.ID,
		EnvelopeID: &foreignEnvelope.ID,
		Amount:     -14250,
	}, nil)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// Account of another budget
	_, err = models.CreateTransaction(models.DB, models.Transaction{
		BudgetID:  other.ID,
		AccountID: account.ID,
		Amount:    -14250,
	}, nil)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionUpdateChecksReferences() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	other := suite.createTestBudget(models.Budget{Name: "Other budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	foreignAccount := suite.createTestAccount(models.Account{BudgetID: other.ID, Name: "Other checking"})
	foreignEnvelope := suite.createTestEnvelope(models.Envelope{BudgetID: other.ID, Name: "Groceries"})

	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID:  budget.ID,
		AccountID: account.ID,
		Amount:    -12500,
	})

	// Repointing the envelope to another budget must not move funds there
	_, err := models.UpdateTransaction(models.DB, transaction, models.Transaction{EnvelopeID: &foreignEnvelope.ID}, []any{"EnvelopeID"}, nil)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal(types.Amount(0), suite.envelopeBalance(foreignEnvelope.ID))

	_, err = models.UpdateTransaction(models.DB, transaction, models.Transaction{AccountID: foreignAccount.ID}, []any{"AccountID"}, nil)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// The rejected updates changed nothing
	var reloaded models.Transaction
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", transaction.ID).Error)
	suite.Assert().Nil(reloaded.EnvelopeID)
	suite.Assert().Equal(account.ID, reloaded.AccountID)
	suite.Assert().Equal(types.Amount(-12500), suite.accountBalance(account.ID))

	suite.assertConservation(budget)
	suite.assertConservation(other)
}

func (suite *TestSuiteStandard) TestTransactionBalanceProtocol() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	category := suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Daily"})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, CategoryID: &category.ID, Name: "Groceries"})

	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID:   budget.ID,
		AccountID:  account.ID,
		EnvelopeID: &envelope.ID,
		Amount:     -12500,
	})

	suite.Assert().Equal(types.Amount(-12500), suite.accountBalance(account.ID))
	suite.Assert().Equal(types.Amount(-12500), suite.envelopeBalance(envelope.ID))
	suite.Assert().Equal(types.Amount(-12500), suite.categoryBalance(category.ID))

	// Changing the amount reverses the old effect before applying the new one
	transaction, err := models.UpdateTransaction(models.DB, transaction, models.Transaction{Amount: -20000}, []any{"Amount"}, nil)
	suite.Require().NoError(err)

	suite.Assert().Equal(types.Amount(-20000), suite.accountBalance(account.ID))
	suite.Assert().Equal(types.Amount(-20000), suite.envelopeBalance(envelope.ID))
	suite.Assert().Equal(types.Amount(-20000), suite.categoryBalance(category.ID))

	suite.Require().NoError(models.DeleteTransaction(models.DB, transaction))

	suite.Assert().Equal(types.Amount(0), suite.accountBalance(account.ID))
	suite.Assert().Equal(types.Amount(0), suite.envelopeBalance(envelope.ID))
	suite.Assert().Equal(types.Amount(0), suite.categoryBalance(category.ID))

	suite.assertConservation(budget)
}

func (suite *TestSuiteStandard) TestTransactionReassignEnvelope() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	groceries := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, Name: "Groceries"})
	household := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID, Name: "Household"})

	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID:   budget.ID,
		AccountID:  account.ID,
		EnvelopeID: &groceries.ID,
		Amount:     -12500,
	})

	_, err := models.UpdateTransaction(models.DB, transaction, models.Transaction{EnvelopeID: &household.ID}, []any{"EnvelopeID"}, nil)
	suite.Require().NoError(err)

	suite.Assert().Equal(types.Amount(0), suite.envelopeBalance(groceries.ID))
	suite.Assert().Equal(types.Amount(-12500), suite.envelopeBalance(household.ID))

	suite.assertConservation(budget)
}

func (suite *TestSuiteStandard) TestTransactionImportIDUnique() {
	budget := suite.createTestBudget(models.Budget{Name: "Testing budget"})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})

	importID := "2022-10-12T-14250-lunch"
	suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, AccountID: account.ID, Amount: -14250, ImportID: &importID})

	_, err := models.CreateTransaction(models.DB, models.Transaction{BudgetID: budget.ID, AccountID: account.ID, Amount: -14250, ImportID: &importID}, nil)
	suite.Assert().ErrorIs(err, models.ErrTransactionImportIDInUse)

	// Multiple transactions without an import ID are fine
	suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, AccountID: account.ID, Amount: -14250})
	suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, AccountID: account.ID, Amount: -14250})
}

func (suite *TestSuiteStandard) TestTransactionFullyAssigned() {
	envelopeID := uuid.New()

	tests := []struct {
		name        string
		transaction models.Transaction
		want        bool
	}{
		{"envelope set", models.Transaction{EnvelopeID: &envelopeID}, true},
		{"unassigned", models.Transaction{}, false},
		{"split, all lines assigned", models.Transaction{Subtransactions: []models.Subtransaction{
			{EnvelopeID: &envelopeID},
		}}, true},
		{"split with unassigned line", models.Transaction{Subtransactions: []models.Subtransaction{
			{EnvelopeID: &envelopeID},
			{},
		}}, false},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.Assert().Equal(tt.want, tt.transaction.FullyAssigned())
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionPayeeLabel() {
	transaction := models.Transaction{PayeeName: "Corner shop"}
	suite.Assert().Equal("Corner shop", transaction.PayeeLabel())

	transaction.Payee = &models.Payee{Name: "REWE"}
	suite.Assert().Equal("REWE", transaction.PayeeLabel())
}
