package models

import (
	"github.com/pouchbudget/backend/internal/uuid"
	"gorm.io/gorm"
)

// UpdateEnvelopeOrder stores the sort order of the given envelopes as the
// order of the ID list.
func UpdateEnvelopeOrder(db *gorm.DB, budgetID uuid.UUID, ids []uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			res := tx.Model(&Envelope{}).
				Where("id = ? AND budget_id = ?", id, budgetID).
				Update("sort_order", position)
			if res.Error != nil {
				return res.Error
			}

			if res.RowsAffected == 0 {
				return ErrEnvelopeNotFound
			}
		}

		return nil
	})
}

// UpdateCategoryOrder stores the sort order of the given categories as the
// order of the ID list.
func UpdateCategoryOrder(db *gorm.DB, budgetID uuid.UUID, ids []uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			res := tx.Model(&Category{}).
				Where("id = ? AND budget_id = ?", id, budgetID).
				Update("sort_order", position)
			if res.Error != nil {
				return res.Error
			}

			if res.RowsAffected == 0 {
				return ErrCategoryNotFound
			}
		}

		return nil
	})
}
