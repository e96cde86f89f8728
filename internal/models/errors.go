package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request, please contact your server administrator")
	ErrResourceNotFound = errors.New("there is no resource for the ID you specified")

	// ErrConflict is returned when an optimistic lock check fails because the
	// resource was modified concurrently.
	ErrConflict = errors.New("the resource was modified by another request, please retry")

	// Envelope errors
	ErrEnvelopeNotFound            = fmt.Errorf("%w: there is no envelope matching your query", ErrResourceNotFound)
	ErrEnvelopeNameNotUnique       = errors.New("the envelope name must be unique for the category")
	ErrUnallocatedEnvelopeExists   = errors.New("the budget already has an unallocated envelope")
	ErrUnallocatedEnvelopeReadOnly = errors.New("the unallocated envelope cannot be modified or deleted")

	// Account, category and payee errors
	ErrAccountNameNotUnique  = errors.New("the account name must be unique for the budget")
	ErrCategoryNotFound      = fmt.Errorf("%w: there is no category matching your query", ErrResourceNotFound)
	ErrCategoryNameNotUnique = errors.New("the category name must be unique for the budget")
	ErrPayeeNameNotUnique    = errors.New("the payee name must be unique for the budget")

	// Transfer errors
	ErrTransferAmountNotPositive = errors.New("the transfer amount must be positive")
	ErrTransferSameEnvelope      = errors.New("the source and destination envelope must be different")
	ErrEnvelopeRefInvalid        = errors.New("envelope references must be a valid UUID or \"unallocated\"")

	// Transaction and split errors
	ErrTransactionNotFound       = errors.New("there is no transaction matching your query")
	ErrTransactionImportIDInUse  = errors.New("a transaction with this import ID already exists for the account")
	ErrSplitSumMismatch          = errors.New("the subtransaction amounts must sum exactly to the transaction amount")
	ErrSplitEmpty                = errors.New("a split transaction needs at least one subtransaction")
	ErrEnvelopeAndSubtransaction = errors.New("a transaction cannot have both an envelope and subtransactions")

	// Merge errors
	ErrMergeTransactionCount    = errors.New("exactly two transactions are required for a merge")
	ErrMergeDifferentAccounts   = errors.New("transactions can only be merged when they belong to the same account")
	ErrMergeDifferentAmounts    = errors.New("transactions can only be merged when they have the same amount")
	ErrMergeConflictingEnvelope = errors.New("transactions assigned to different envelopes cannot be merged")
)
