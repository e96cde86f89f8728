package models

import (
	"strings"

	"github.com/pouchbudget/backend/internal/uuid"
	"gorm.io/gorm"
)

// Payee is a named counterparty for transactions. Transactions can reference
// a payee resource or carry a free-text payee name instead.
type Payee struct {
	DefaultModel
	Budget   Budget    `json:"-"`
	BudgetID uuid.UUID `json:"budgetId" gorm:"uniqueIndex:payee_budget_id_name" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`
	Name     string    `json:"name" gorm:"uniqueIndex:payee_budget_id_name" example:"REWE" default:""`
}

func (p *Payee) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)

	return nil
}

// BeforeCreate verifies that the referenced budget exists.
func (p *Payee) BeforeCreate(tx *gorm.DB) error {
	err := p.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	var budget Budget
	return tx.First(&budget, "id = ?", p.BudgetID).Error
}

// DeletePayee removes the payee. Transactions that referenced it keep its
// name as free-text payee.
func DeletePayee(db *gorm.DB, payee Payee) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Transaction{}).
			Where("payee_id = ?", payee.ID).
			Updates(map[string]any{"payee_id": nil, "payee_name": payee.Name}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&payee).Error
	})
}

// DeleteUnusedPayees removes payees of the budget that no transaction
// references and returns how many were removed.
func DeleteUnusedPayees(db *gorm.DB, budgetID uuid.UUID) (int64, error) {
	res := db.Where(
		"budget_id = ? AND id NOT IN (?)",
		budgetID,
		db.Session(&gorm.Session{NewDB: true}).
			Model(&Transaction{}).
			Select("payee_id").
			Where("payee_id IS NOT NULL"),
	).Delete(&Payee{})

	return res.RowsAffected, res.Error
}
