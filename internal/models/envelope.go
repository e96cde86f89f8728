package models

import (
	"strings"

	"github.com/pouchbudget/backend/internal/types"
	"github.com/pouchbudget/backend/internal/uuid"
	"gorm.io/gorm"
)

// Envelope represents an envelope in your budget. Its balance is signed and
// may go negative, overspending is surfaced, not prevented.
//
// Balance updates are guarded by LockVersion: concurrent writers that lose
// the race get ErrConflict and have to retry.
type Envelope struct {
	DefaultModel
	Budget        Budget     `json:"-"`
	BudgetID      uuid.UUID  `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`
	Category      *Category  `json:"-"`
	CategoryID    *uuid.UUID `json:"categoryId" gorm:"uniqueIndex:envelope_category_id_name" example:"878c831f-af99-4a71-b3ca-80deb7d793c1"`
	Name          string     `json:"name" gorm:"uniqueIndex:envelope_category_id_name" example:"Groceries" default:""`
	Note          string     `json:"note" example:"For stuff bought at supermarkets and drugstores" default:""`
	Balance       types.Amount `json:"balance" example:"180000" default:"0"`
	MonthlyBudget types.Amount `json:"monthlyBudget" example:"250000" default:"0"`
	SortOrder     int          `json:"sortOrder" example:"1" default:"0"`
	IsUnallocated bool         `json:"isUnallocated" example:"false" default:"false"`
	Archived      bool         `json:"archived" example:"true" default:"false"`
	LockVersion   uint         `json:"-" default:"0"`
}

func (e *Envelope) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Note = strings.TrimSpace(e.Note)

	return nil
}

// BeforeCreate verifies the referenced resources and enforces that a budget
// has at most one unallocated envelope.
func (e *Envelope) BeforeCreate(tx *gorm.DB) error {
	err := e.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	var budget Budget
	err = tx.First(&budget, "id = ?", e.BudgetID).Error
	if err != nil {
		return err
	}

	if e.CategoryID != nil {
		var category Category
		err = tx.First(&category, "id = ?", *e.CategoryID).Error
		if err != nil {
			return err
		}
	}

	if e.IsUnallocated {
		if e.CategoryID != nil || e.MonthlyBudget != 0 {
			return ErrUnallocatedEnvelopeReadOnly
		}

		var count int64
		err = tx.Model(&Envelope{}).
			Where("budget_id = ? AND is_unallocated = ?", e.BudgetID, true).
			Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return ErrUnallocatedEnvelopeExists
		}
	}

	return nil
}

// BeforeDelete protects the unallocated envelope.
func (e *Envelope) BeforeDelete(_ *gorm.DB) error {
	if e.IsUnallocated {
		return ErrUnallocatedEnvelopeReadOnly
	}

	return nil
}

// DeleteEnvelope removes the envelope. Its balance and its transaction
// assignments move to the unallocated envelope so that the conservation law
// keeps holding.
func DeleteEnvelope(db *gorm.DB, envelope Envelope) error {
	if envelope.IsUnallocated {
		return ErrUnallocatedEnvelopeReadOnly
	}

	return db.Transaction(func(tx *gorm.DB) error {
		unallocated, err := ResolveEnvelopeRef(tx, envelope.BudgetID, UnallocatedAlias)
		if err != nil {
			return err
		}

		if envelope.Balance != 0 {
			_, err = transferBetween(tx, envelope, unallocated, envelope.Balance)
			if err != nil {
				return err
			}
		}

		err = tx.Model(&Transaction{}).
			Where("envelope_id = ?", envelope.ID).
			Update("envelope_id", unallocated.ID).Error
		if err != nil {
			return err
		}

		err = tx.Model(&Subtransaction{}).
			Where("envelope_id = ?", envelope.ID).
			Update("envelope_id", unallocated.ID).Error
		if err != nil {
			return err
		}

		return tx.Delete(&envelope).Error
	})
}

// addBalance applies a balance delta under the optimistic lock and keeps the
// cached balance of the containing category in sync.
func (e *Envelope) addBalance(tx *gorm.DB, delta types.Amount) error {
	res := tx.Model(&Envelope{}).
		Where("id = ? AND lock_version = ?", e.ID, e.LockVersion).
		Updates(map[string]any{
			"balance":      gorm.Expr("balance + ?", delta),
			"lock_version": gorm.Expr("lock_version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrConflict
	}

	e.Balance += delta
	e.LockVersion++

	if e.CategoryID != nil {
		err := tx.Model(&Category{}).Where("id = ?", *e.CategoryID).
			Update("balance", gorm.Expr("balance + ?", delta)).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// addEnvelopeBalance loads the envelope and applies the delta. A nil id is a
// no-op so that callers do not have to special-case unassigned transactions.
func addEnvelopeBalance(tx *gorm.DB, id *uuid.UUID, delta types.Amount) error {
	if id == nil || delta == 0 {
		return nil
	}

	var envelope Envelope
	err := tx.First(&envelope, "id = ?", *id).Error
	if err != nil {
		return err
	}

	return envelope.addBalance(tx, delta)
}
