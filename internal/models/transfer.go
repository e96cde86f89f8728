package models

import (
	"fmt"
	"strings"

	"github.com/pouchbudget/backend/internal/types"
	"github.com/pouchbudget/backend/internal/uuid"
	google_uuid "github.com/google/uuid"
	"gorm.io/gorm"
)

// UnallocatedAlias is the envelope reference callers can use instead of the
// unallocated envelope's ID.
const UnallocatedAlias = "unallocated"

// TransferResult reports the state of the envelopes and category caches a
// transfer touched.
type TransferResult struct {
	Source      Envelope   `json:"source"`
	Destination Envelope   `json:"destination"`
	Categories  []Category `json:"categories"`
}

// ResolveEnvelopeRef resolves an envelope reference for the budget. The
// reference is either an envelope UUID or the literal "unallocated".
func ResolveEnvelopeRef(db *gorm.DB, budgetID uuid.UUID, ref string) (Envelope, error) {
	ref = strings.TrimSpace(ref)

	var envelope Envelope
	if strings.EqualFold(ref, UnallocatedAlias) {
		err := db.First(&envelope, "budget_id = ? AND is_unallocated = ?", budgetID, true).Error
		return envelope, err
	}

	id, err := google_uuid.Parse(ref)
	if err != nil {
		return envelope, fmt.Errorf("%w: %q", ErrEnvelopeRefInvalid, ref)
	}

	err = db.First(&envelope, "id = ? AND budget_id = ?", uuid.UUID{UUID: id}, budgetID).Error
	return envelope, err
}

// transferBetween moves amount from one envelope to the other. Both
// envelopes have already been resolved, the caller supplies the surrounding
// database transaction.
func transferBetween(tx *gorm.DB, from, to Envelope, amount types.Amount) (TransferResult, error) {
	result := TransferResult{}

	if from.ID == to.ID {
		return result, ErrTransferSameEnvelope
	}

	err := from.addBalance(tx, amount.Neg())
	if err != nil {
		return result, err
	}

	err = to.addBalance(tx, amount)
	if err != nil {
		return result, err
	}

	result.Source = from
	result.Destination = to

	// Report the updated category caches, at most two
	seen := make(map[uuid.UUID]bool)
	for _, id := range []*uuid.UUID{from.CategoryID, to.CategoryID} {
		if id == nil || seen[*id] {
			continue
		}
		seen[*id] = true

		var category Category
		err = tx.First(&category, "id = ?", *id).Error
		if err != nil {
			return result, err
		}

		result.Categories = append(result.Categories, category)
	}

	return result, nil
}

// TransferFunds atomically moves a positive amount between two envelopes of
// the budget. There is no balance floor, the source may go negative.
func TransferFunds(db *gorm.DB, budgetID uuid.UUID, fromRef, toRef string, amount types.Amount) (TransferResult, error) {
	var result TransferResult

	if !amount.IsPositive() {
		return result, ErrTransferAmountNotPositive
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		from, err := ResolveEnvelopeRef(tx, budgetID, fromRef)
		if err != nil {
			return err
		}

		to, err := ResolveEnvelopeRef(tx, budgetID, toRef)
		if err != nil {
			return err
		}

		result, err = transferBetween(tx, from, to, amount)
		return err
	})

	return result, err
}

// QuickAllocate tops an overdrawn envelope up to exactly zero from the
// unallocated envelope. Envelopes with a non-negative balance are left
// alone, the second return value reports whether a transfer happened.
func QuickAllocate(db *gorm.DB, budgetID uuid.UUID, envelopeID uuid.UUID) (TransferResult, bool, error) {
	var result TransferResult
	transferred := false

	err := db.Transaction(func(tx *gorm.DB) error {
		var envelope Envelope
		err := tx.First(&envelope, "id = ? AND budget_id = ?", envelopeID, budgetID).Error
		if err != nil {
			return err
		}

		if !envelope.Balance.IsNegative() {
			result.Source = envelope
			result.Destination = envelope
			return nil
		}

		unallocated, err := ResolveEnvelopeRef(tx, budgetID, UnallocatedAlias)
		if err != nil {
			return err
		}

		result, err = transferBetween(tx, unallocated, envelope, envelope.Balance.Neg())
		if err != nil {
			return err
		}

		transferred = true
		return nil
	})

	return result, transferred, err
}

// Sweep moves the whole positive balance of the envelope back to the
// unallocated envelope. Envelopes with a non-positive balance are left
// alone.
func Sweep(db *gorm.DB, budgetID uuid.UUID, envelopeID uuid.UUID) (TransferResult, bool, error) {
	var result TransferResult
	transferred := false

	err := db.Transaction(func(tx *gorm.DB) error {
		var envelope Envelope
		err := tx.First(&envelope, "id = ? AND budget_id = ?", envelopeID, budgetID).Error
		if err != nil {
			return err
		}

		if !envelope.Balance.IsPositive() {
			result.Source = envelope
			result.Destination = envelope
			return nil
		}

		unallocated, err := ResolveEnvelopeRef(tx, budgetID, UnallocatedAlias)
		if err != nil {
			return err
		}

		result, err = transferBetween(tx, envelope, unallocated, envelope.Balance)
		if err != nil {
			return err
		}

		transferred = true
		return nil
	})

	return result, transferred, err
}

// Allocate moves a signed amount between the unallocated envelope and the
// envelope: positive amounts allocate funds to the envelope, negative
// amounts return funds to the unallocated envelope.
func Allocate(db *gorm.DB, budgetID uuid.UUID, envelopeID uuid.UUID, amount types.Amount) (TransferResult, error) {
	if amount.IsNegative() {
		return TransferFunds(db, budgetID, envelopeID.String(), UnallocatedAlias, amount.Abs())
	}

	return TransferFunds(db, budgetID, UnallocatedAlias, envelopeID.String(), amount)
}
