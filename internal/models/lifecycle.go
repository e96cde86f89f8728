package models

import (
	"github.com/pouchbudget/backend/internal/uuid"
	"gorm.io/gorm"
)

// ArchiveResult reports the outcome of a bulk archive.
type ArchiveResult struct {
	ArchivedCount int `json:"archivedCount"`
	SkippedCount  int `json:"skippedCount"`
}

// ToBudgetResult reports the outcome of a bulk to-budget move.
type ToBudgetResult struct {
	MovedCount   int `json:"movedCount"`
	IgnoredCount int `json:"ignoredCount"`
}

// ArchiveTransactions moves transactions out of the inbox. Only cleared,
// fully assigned transactions are archived, everything else is skipped and
// counted. Skipping is not an error, bulk operations always succeed.
func ArchiveTransactions(db *gorm.DB, budgetID uuid.UUID, ids []uuid.UUID) (ArchiveResult, error) {
	var result ArchiveResult

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			var transaction Transaction
			err := tx.Preload("Subtransactions").
				First(&transaction, "id = ? AND budget_id = ?", id, budgetID).Error
			if err != nil {
				result.SkippedCount++
				continue
			}

			if !transaction.Cleared || !transaction.FullyAssigned() {
				result.SkippedCount++
				continue
			}

			if transaction.InInbox {
				err = tx.Model(&transaction).Update("in_inbox", false).Error
				if err != nil {
					return err
				}
			}

			result.ArchivedCount++
		}

		return nil
	})

	return result, err
}

// MoveToBudget assigns inflow transactions to the unallocated envelope and
// moves them out of the inbox. Outflows are ignored and counted, never
// errors: assigning an outflow to the unallocated envelope would silently
// shrink the pool of assignable funds.
func MoveToBudget(db *gorm.DB, budgetID uuid.UUID, ids []uuid.UUID) (ToBudgetResult, error) {
	var result ToBudgetResult

	err := db.Transaction(func(tx *gorm.DB) error {
		unallocated, err := ResolveEnvelopeRef(tx, budgetID, UnallocatedAlias)
		if err != nil {
			return err
		}

		for _, id := range ids {
			var transaction Transaction
			err := tx.Preload("Subtransactions").
				First(&transaction, "id = ? AND budget_id = ?", id, budgetID).Error
			if err != nil {
				result.IgnoredCount++
				continue
			}

			if transaction.Amount.IsNegative() {
				result.IgnoredCount++
				continue
			}

			updates := Transaction{InInbox: false}
			unallocatedID := unallocated.ID
			updates.EnvelopeID = &unallocatedID

			empty := []SubtransactionInput{}
			_, err = UpdateTransaction(tx, transaction, updates, []any{"EnvelopeID", "InInbox"}, &empty)
			if err != nil {
				return err
			}

			result.MovedCount++
		}

		return nil
	})

	return result, err
}

// MergeTransactions merges exactly two transactions that represent the same
// real-world transaction. Both must share account and amount, the ledger
// ends up as if only one of them had ever existed.
//
// Survivor rules: the earliest date wins, payee and memo prefer the manually
// entered record over an imported one, cleared/approved/in_inbox are true if
// either was, pending only if both were.
func MergeTransactions(db *gorm.DB, budgetID uuid.UUID, ids []uuid.UUID) (Transaction, error) {
	var survivor Transaction

	if len(ids) != 2 {
		return survivor, ErrMergeTransactionCount
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var duplicate Transaction

		err := tx.Preload("Subtransactions").Preload("Payee").
			First(&survivor, "id = ? AND budget_id = ?", ids[0], budgetID).Error
		if err != nil {
			return err
		}

		err = tx.Preload("Subtransactions").Preload("Payee").
			First(&duplicate, "id = ? AND budget_id = ?", ids[1], budgetID).Error
		if err != nil {
			return err
		}

		if survivor.AccountID != duplicate.AccountID {
			return ErrMergeDifferentAccounts
		}

		if survivor.Amount != duplicate.Amount {
			return ErrMergeDifferentAmounts
		}

		bothAssigned := survivor.EnvelopeID != nil && duplicate.EnvelopeID != nil
		if bothAssigned && *survivor.EnvelopeID != *duplicate.EnvelopeID {
			return ErrMergeConflictingEnvelope
		}

		updates := Transaction{
			Date:     survivor.Date,
			Cleared:  survivor.Cleared || duplicate.Cleared,
			Pending:  survivor.Pending && duplicate.Pending,
			Approved: survivor.Approved || duplicate.Approved,
			InInbox:  survivor.InInbox || duplicate.InInbox,
		}

		if duplicate.Date.Before(survivor.Date) {
			updates.Date = duplicate.Date
		}

		// Prefer the manually entered payee and memo over imported ones
		updates.PayeeID = survivor.PayeeID
		updates.PayeeName = survivor.PayeeName
		if survivor.Imported() && !duplicate.Imported() {
			updates.PayeeID = duplicate.PayeeID
			updates.PayeeName = duplicate.PayeeName
		}

		updates.Memo = survivor.Memo
		if updates.Memo == "" || (survivor.Imported() && !duplicate.Imported() && duplicate.Memo != "") {
			updates.Memo = duplicate.Memo
		}

		// Take over the duplicate's envelope when the survivor has none
		updates.EnvelopeID = survivor.EnvelopeID
		if survivor.EnvelopeID == nil && !survivor.IsSplit() && duplicate.EnvelopeID != nil {
			updates.EnvelopeID = duplicate.EnvelopeID
		}

		// Remove the duplicate's ledger contribution, then delete it
		err = DeleteTransaction(tx, duplicate)
		if err != nil {
			return err
		}

		fields := []any{"Date", "Cleared", "Pending", "Approved", "InInbox", "PayeeID", "PayeeName", "Memo", "EnvelopeID"}
		survivor, err = UpdateTransaction(tx, survivor, updates, fields, nil)
		return err
	})

	return survivor, err
}
