package models

import (
	"strings"
	"time"

	"github.com/pouchbudget/backend/internal/types"
	"github.com/pouchbudget/backend/internal/uuid"
	"gorm.io/gorm"
)

// Transaction represents a transaction on an account.
//
// The amount is signed, negative amounts are outflows. A transaction is
// assigned to a single envelope, split across subtransactions, or unassigned
// while it waits in the inbox.
type Transaction struct {
	DefaultModel
	Budget    Budget    `json:"-"`
	BudgetID  uuid.UUID `json:"budgetId" example:"55eecbd8-7c46-4b06-ada9-f287802fb05e"`
	Account   Account   `json:"-"`
	AccountID uuid.UUID `json:"accountId" gorm:"uniqueIndex:transaction_account_id_import_id" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`
	Payee     *Payee    `json:"-"`
	PayeeID   *uuid.UUID `json:"payeeId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`
	// PayeeName is the free-text payee used when no payee resource is referenced
	PayeeName  string       `json:"payeeName" example:"Bakery Brümmer" default:""`
	Envelope   *Envelope    `json:"-"`
	EnvelopeID *uuid.UUID   `json:"envelopeId" example:"2649c965-8999-4873-adab-da7c570034ce"`
	Date       time.Time    `json:"date" example:"2022-10-12T00:00:00Z"`
	Amount     types.Amount `json:"amount" example:"-14250" default:"0"`
	Memo       string       `json:"memo" example:"Lunch" default:""`
	Cleared    bool         `json:"cleared" example:"true" default:"false"`
	Pending    bool         `json:"pending" example:"false" default:"false"`
	Approved   bool         `json:"approved" example:"true" default:"false"`
	InInbox    bool         `json:"inInbox" example:"true" default:"true"`
	// ImportID identifies an imported transaction within its account so that
	// re-running an import is idempotent
	ImportID        *string          `json:"importId" gorm:"uniqueIndex:transaction_account_id_import_id" example:"2022-10-12T-14250-lunch"`
	Subtransactions []Subtransaction `json:"subtransactions" gorm:"constraint:OnDelete:CASCADE"`
}

// Subtransaction is one line of a split transaction. Its amount counts
// toward the envelope it references, the parent transaction carries the
// account effect.
type Subtransaction struct {
	DefaultModel
	Transaction   Transaction  `json:"-"`
	TransactionID uuid.UUID    `json:"transactionId" example:"d2fd6bbe-63a0-4d5c-9e36-60b4b2b02a26"`
	Envelope      *Envelope    `json:"-"`
	EnvelopeID    *uuid.UUID   `json:"envelopeId" example:"2649c965-8999-4873-adab-da7c570034ce"`
	Amount        types.Amount `json:"amount" example:"-4250" default:"0"`
	Memo          string       `json:"memo" example:"Coffee" default:""`
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Memo = strings.TrimSpace(t.Memo)
	t.PayeeName = strings.TrimSpace(t.PayeeName)

	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	t.Date = t.Date.In(time.UTC)

	// Enable unsetting the references with an empty JSON value
	if t.EnvelopeID != nil && *t.EnvelopeID == uuid.Nil {
		t.EnvelopeID = nil
	}
	if t.PayeeID != nil && *t.PayeeID == uuid.Nil {
		t.PayeeID = nil
	}

	return nil
}

// BeforeCreate verifies that all referenced resources exist and belong to
// the transaction's budget.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	err := t.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	return t.checkReferences(tx)
}

// checkReferences verifies that the account, the payee and every referenced
// envelope, including subtransaction envelopes, belong to the transaction's
// budget. Balance effects only ever touch resources of one budget.
func (t Transaction) checkReferences(tx *gorm.DB) error {
	var account Account
	err := tx.First(&account, "id = ? AND budget_id = ?", t.AccountID, t.BudgetID).Error
	if err != nil {
		return err
	}

	if t.PayeeID != nil {
		var payee Payee
		err = tx.First(&payee, "id = ? AND budget_id = ?", *t.PayeeID, t.BudgetID).Error
		if err != nil {
			return err
		}
	}

	envelopeIDs := []*uuid.UUID{t.EnvelopeID}
	for _, sub := range t.Subtransactions {
		envelopeIDs = append(envelopeIDs, sub.EnvelopeID)
	}

	for _, id := range envelopeIDs {
		if id == nil {
			continue
		}

		var envelope Envelope
		err = tx.First(&envelope, "id = ? AND budget_id = ?", *id, t.BudgetID).Error
		if err != nil {
			return err
		}
	}

	return nil
}

func (t *Transaction) AfterFind(tx *gorm.DB) error {
	err := t.Timestamps.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

func (s *Subtransaction) BeforeSave(_ *gorm.DB) error {
	s.Memo = strings.TrimSpace(s.Memo)

	if s.EnvelopeID != nil && *s.EnvelopeID == uuid.Nil {
		s.EnvelopeID = nil
	}

	return nil
}

// IsSplit reports whether the transaction is split across subtransactions.
func (t Transaction) IsSplit() bool {
	return len(t.Subtransactions) > 0
}

// FullyAssigned reports whether every part of the transaction amount is
// bound to an envelope.
func (t Transaction) FullyAssigned() bool {
	if t.EnvelopeID != nil {
		return true
	}

	if !t.IsSplit() {
		return false
	}

	for _, sub := range t.Subtransactions {
		if sub.EnvelopeID == nil {
			return false
		}
	}

	return true
}

// PayeeLabel returns the payee display string, preferring the referenced
// payee resource over the free-text name. The Payee association has to be
// loaded for referenced payees.
func (t Transaction) PayeeLabel() string {
	if t.Payee != nil {
		return t.Payee.Name
	}

	return t.PayeeName
}

// Imported reports whether the transaction came from an import rather than
// manual entry.
func (t Transaction) Imported() bool {
	return t.ImportID != nil
}

// applyEffects adds the transaction's contribution to the account balance
// and to the assigned envelope balances.
func (t Transaction) applyEffects(tx *gorm.DB) error {
	var account Account
	err := tx.First(&account, "id = ?", t.AccountID).Error
	if err != nil {
		return err
	}

	err = account.addBalance(tx, t.Amount)
	if err != nil {
		return err
	}

	err = addEnvelopeBalance(tx, t.EnvelopeID, t.Amount)
	if err != nil {
		return err
	}

	for _, sub := range t.Subtransactions {
		err = addEnvelopeBalance(tx, sub.EnvelopeID, sub.Amount)
		if err != nil {
			return err
		}
	}

	return nil
}

// reverseEffects removes the transaction's contribution again. Reverse and
// apply always run inside the same database transaction as the change they
// bracket, the ledger never becomes externally visible in a half-updated
// state.
func (t Transaction) reverseEffects(tx *gorm.DB) error {
	var account Account
	err := tx.First(&account, "id = ?", t.AccountID).Error
	if err != nil {
		return err
	}

	err = account.addBalance(tx, t.Amount.Neg())
	if err != nil {
		return err
	}

	err = addEnvelopeBalance(tx, t.EnvelopeID, t.Amount.Neg())
	if err != nil {
		return err
	}

	for _, sub := range t.Subtransactions {
		err = addEnvelopeBalance(tx, sub.EnvelopeID, sub.Amount.Neg())
		if err != nil {
			return err
		}
	}

	return nil
}

// CreateTransaction stores the transaction together with its optional
// subtransactions and applies all balance effects in one database
// transaction.
func CreateTransaction(db *gorm.DB, transaction Transaction, subs []SubtransactionInput) (Transaction, error) {
	if transaction.EnvelopeID != nil && len(subs) > 0 {
		return transaction, ErrEnvelopeAndSubtransaction
	}

	if len(subs) > 0 {
		err := validateSplit(transaction.Amount, subs)
		if err != nil {
			return transaction, err
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&transaction).Error
		if err != nil {
			return err
		}

		for _, input := range subs {
			sub := Subtransaction{
				TransactionID: transaction.ID,
				EnvelopeID:    input.EnvelopeID,
				Amount:        input.Amount,
				Memo:          input.Memo,
			}

			err = tx.Create(&sub).Error
			if err != nil {
				return err
			}

			transaction.Subtransactions = append(transaction.Subtransactions, sub)
		}

		// BeforeCreate ran before the subtransactions existed
		if len(subs) > 0 {
			err = transaction.checkReferences(tx)
			if err != nil {
				return err
			}
		}

		return transaction.applyEffects(tx)
	})

	return transaction, err
}

// UpdateTransaction applies the requested field updates, reversing the old
// balance effects and applying the new ones atomically. A non-nil subs
// replaces the whole subtransaction set, nil leaves it untouched.
func UpdateTransaction(db *gorm.DB, transaction Transaction, updates Transaction, fields []any, subs *[]SubtransactionInput) (Transaction, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		err := transaction.reverseEffects(tx)
		if err != nil {
			return err
		}

		if len(fields) > 0 {
			err = tx.Model(&transaction).Select("", fields...).Updates(updates).Error
			if err != nil {
				return err
			}
		}

		if subs != nil {
			err = tx.Where("transaction_id = ?", transaction.ID).Delete(&Subtransaction{}).Error
			if err != nil {
				return err
			}

			for _, input := range *subs {
				sub := Subtransaction{
					TransactionID: transaction.ID,
					EnvelopeID:    input.EnvelopeID,
					Amount:        input.Amount,
					Memo:          input.Memo,
				}

				err = tx.Create(&sub).Error
				if err != nil {
					return err
				}
			}
		}

		// Reload so that validation and the new effects see the stored state
		transaction.Subtransactions = nil
		err = tx.Preload("Subtransactions").First(&transaction, "id = ?", transaction.ID).Error
		if err != nil {
			return err
		}

		if transaction.EnvelopeID != nil && transaction.IsSplit() {
			return ErrEnvelopeAndSubtransaction
		}

		if transaction.IsSplit() {
			err = validateSplitAmounts(transaction.Amount, transaction.Subtransactions)
			if err != nil {
				return err
			}
		}

		// Updates can repoint any reference, so the budget membership check
		// from creation has to run again
		err = transaction.checkReferences(tx)
		if err != nil {
			return err
		}

		return transaction.applyEffects(tx)
	})

	return transaction, err
}

// DeleteTransaction removes the transaction and reverses its balance
// effects.
func DeleteTransaction(db *gorm.DB, transaction Transaction) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := transaction.reverseEffects(tx)
		if err != nil {
			return err
		}

		err = tx.Where("transaction_id = ?", transaction.ID).Delete(&Subtransaction{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&transaction).Error
	})
}
