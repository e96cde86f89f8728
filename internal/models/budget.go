package models

import (
	"strings"

	"gorm.io/gorm"
)

// Budget represents a budget. A budget is the highest level of organization
// and owns all accounts, categories, envelopes, payees and transactions.
type Budget struct {
	DefaultModel
	Name           string `json:"name" example:"Morre's Budget" default:""`
	Note           string `json:"note" example:"My personal budget" default:""`
	CurrencySymbol string `json:"currencySymbol" example:"€" default:""`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)
	b.CurrencySymbol = strings.TrimSpace(b.CurrencySymbol)

	return nil
}

// AfterCreate creates the unallocated envelope for the budget. Every budget
// has exactly one, it holds the funds that are not assigned to any other
// envelope yet.
func (b *Budget) AfterCreate(tx *gorm.DB) error {
	return tx.Create(&Envelope{
		BudgetID:      b.ID,
		Name:          "Unallocated",
		IsUnallocated: true,
	}).Error
}

// UnallocatedEnvelope returns the distinguished unallocated envelope of the
// budget.
func (b Budget) UnallocatedEnvelope(db *gorm.DB) (Envelope, error) {
	var envelope Envelope
	err := db.First(&envelope, "budget_id = ? AND is_unallocated = ?", b.ID, true).Error
	return envelope, err
}

// DeleteBudget removes the budget with everything it owns. The resources are
// removed explicitly since the unallocated envelope blocks deletion while
// its budget still exists.
func DeleteBudget(db *gorm.DB, budget Budget) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(
			"transaction_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).
				Model(&Transaction{}).
				Select("id").
				Where("budget_id = ?", budget.ID),
		).Delete(&Subtransaction{}).Error
		if err != nil {
			return err
		}

		for _, model := range []any{&Transaction{}, &Payee{}} {
			err = tx.Where("budget_id = ?", budget.ID).Delete(model).Error
			if err != nil {
				return err
			}
		}

		// Envelopes before categories, they reference them
		err = tx.Session(&gorm.Session{SkipHooks: true}).
			Where("budget_id = ?", budget.ID).
			Delete(&Envelope{}).Error
		if err != nil {
			return err
		}

		for _, model := range []any{&Category{}, &Account{}} {
			err = tx.Where("budget_id = ?", budget.ID).Delete(model).Error
			if err != nil {
				return err
			}
		}

		return tx.Delete(&budget).Error
	})
}
