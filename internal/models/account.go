package models

import (
	"strings"

	"github.com/pouchbudget/backend/internal/types"
	"github.com/pouchbudget/backend/internal/uuid"
	"gorm.io/gorm"
)

// Account represents an account at a bank or an asset.
//
// The balance is stored, not computed: every transaction mutation applies
// its delta within the same database transaction.
type Account struct {
	DefaultModel
	Budget   Budget    `json:"-"`
	BudgetID uuid.UUID `json:"budgetId" gorm:"uniqueIndex:account_name_budget_id" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`
	Name     string    `json:"name" gorm:"uniqueIndex:account_name_budget_id" example:"Cash" default:""`
	Note     string    `json:"note" example:"Money in my wallet" default:""`
	OnBudget bool      `json:"onBudget" example:"true" default:"false"`
	Balance  types.Amount `json:"balance" example:"2735000" default:"0"`
	Archived bool         `json:"archived" example:"true" default:"false"`
}

func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	return nil
}

// BeforeCreate verifies that the referenced budget exists.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	err := a.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	var budget Budget
	return tx.First(&budget, "id = ?", a.BudgetID).Error
}

// DeleteAccount removes the account together with its transactions. The
// transactions' envelope effects are reversed so that the conservation law
// holds afterwards.
func DeleteAccount(db *gorm.DB, account Account) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var transactions []Transaction
		err := tx.Preload("Subtransactions").
			Where("account_id = ?", account.ID).
			Find(&transactions).Error
		if err != nil {
			return err
		}

		for _, transaction := range transactions {
			err = DeleteTransaction(tx, transaction)
			if err != nil {
				return err
			}
		}

		return tx.Delete(&account).Error
	})
}

// addBalance applies a balance delta to the account.
func (a *Account) addBalance(tx *gorm.DB, delta types.Amount) error {
	err := tx.Model(&Account{}).Where("id = ?", a.ID).
		Update("balance", gorm.Expr("balance + ?", delta)).Error
	if err != nil {
		return err
	}

	a.Balance += delta
	return nil
}
