package models

import (
	"strings"

	"github.com/pouchbudget/backend/internal/types"
	"github.com/pouchbudget/backend/internal/uuid"
	"gorm.io/gorm"
)

// Category groups envelopes for display. Its balance is a cached sum of the
// member envelope balances, maintained incrementally by every mutation that
// touches a member envelope.
type Category struct {
	DefaultModel
	Budget    Budget    `json:"-"`
	BudgetID  uuid.UUID `json:"budgetId" gorm:"uniqueIndex:category_budget_id_name" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	Name      string    `json:"name" gorm:"uniqueIndex:category_budget_id_name" example:"Saving" default:""`
	Note      string    `json:"note" example:"All envelopes for long-term saving" default:""`
	Balance   types.Amount `json:"balance" example:"750000" default:"0"`
	SortOrder int          `json:"sortOrder" example:"3" default:"0"`
	Archived  bool         `json:"archived" example:"true" default:"false"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}

// BeforeCreate verifies that the referenced budget exists.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	err := c.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	var budget Budget
	return tx.First(&budget, "id = ?", c.BudgetID).Error
}

// DeleteCategory removes the category. Member envelopes keep their balances
// and become uncategorized.
func DeleteCategory(db *gorm.DB, category Category) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Envelope{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error
		if err != nil {
			return err
		}

		return tx.Delete(&category).Error
	})
}
