package models

import (
	"fmt"

	"github.com/pouchbudget/backend/internal/types"
	"github.com/pouchbudget/backend/internal/uuid"
	"gorm.io/gorm"
)

// SubtransactionInput is one requested line of a split transaction.
type SubtransactionInput struct {
	EnvelopeID *uuid.UUID
	Amount     types.Amount
	Memo       string
}

// validateSplit checks the split invariant: at least one line and an exact
// integer sum. There is no epsilon, amounts are milliunits.
func validateSplit(total types.Amount, subs []SubtransactionInput) error {
	if len(subs) == 0 {
		return ErrSplitEmpty
	}

	var sum types.Amount
	for _, sub := range subs {
		sum += sub.Amount
	}

	if sum != total {
		return fmt.Errorf("%w: the subtransactions sum to %s, the transaction amount is %s", ErrSplitSumMismatch, sum, total)
	}

	return nil
}

// validateSplitAmounts is validateSplit for stored subtransactions.
func validateSplitAmounts(total types.Amount, subs []Subtransaction) error {
	if len(subs) == 0 {
		return ErrSplitEmpty
	}

	var sum types.Amount
	for _, sub := range subs {
		sum += sub.Amount
	}

	if sum != total {
		return fmt.Errorf("%w: the subtransactions sum to %s, the transaction amount is %s", ErrSplitSumMismatch, sum, total)
	}

	return nil
}

// CreateSplit stores a transaction whose amount is distributed across
// envelopes by subtransactions.
func CreateSplit(db *gorm.DB, transaction Transaction, subs []SubtransactionInput) (Transaction, error) {
	if len(subs) == 0 {
		return transaction, ErrSplitEmpty
	}

	return CreateTransaction(db, transaction, subs)
}

// UpdateSplit replaces the subtransaction set of the transaction. The old
// lines' balance effects are reversed before the new ones apply, so editing
// a split never double-counts. Updating a transaction that had a single
// envelope converts it to a split, its single-envelope effect is reversed
// the same way.
func UpdateSplit(db *gorm.DB, transaction Transaction, subs []SubtransactionInput) (Transaction, error) {
	if len(subs) == 0 {
		return transaction, ErrSplitEmpty
	}

	updates := Transaction{EnvelopeID: nil}
	return UpdateTransaction(db, transaction, updates, []any{"EnvelopeID"}, &subs)
}

// ConvertSplitToRegular removes all subtransactions and assigns the full
// amount to the given envelope, or leaves the transaction unassigned when
// envelopeID is nil. Converting a transaction that is not split only updates
// the envelope assignment.
func ConvertSplitToRegular(db *gorm.DB, transaction Transaction, envelopeID *uuid.UUID) (Transaction, error) {
	updates := Transaction{EnvelopeID: envelopeID}
	empty := []SubtransactionInput{}

	return UpdateTransaction(db, transaction, updates, []any{"EnvelopeID"}, &empty)
}
