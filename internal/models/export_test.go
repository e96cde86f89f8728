package models

import (
	"github.com/pouchbudget/backend/internal/types"
	"gorm.io/gorm"
)

// AddBalance exposes addBalance so that tests can exercise the optimistic
// lock directly.
func (e *Envelope) AddBalance(tx *gorm.DB, delta types.Amount) error {
	return e.addBalance(tx, delta)
}
