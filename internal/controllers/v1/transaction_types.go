package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pouchbudget/backend/internal/models"
	"github.com/pouchbudget/backend/internal/types"
	pouch_uuid "github.com/pouchbudget/backend/internal/uuid"
)

type SubtransactionEditable struct {
	EnvelopeID *pouch_uuid.UUID `json:"envelopeId" example:"2649c965-8999-4873-adab-da7c570034ce"` // ID of the envelope this line counts toward
	Amount     types.Amount     `json:"amount" example:"-4250" default:"0"`                        // The amount in milliunits
	Memo       string           `json:"memo" example:"Coffee" default:""`                          // A memo for this line
}

type TransactionEditable struct {
	BudgetID  pouch_uuid.UUID  `json:"budgetId" example:"55eecbd8-7c46-4b06-ada9-f287802fb05e"`  // ID of the budget
	AccountID pouch_uuid.UUID  `json:"accountId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // ID of the account
	PayeeID   *pouch_uuid.UUID `json:"payeeId" example:"c9e4ee7a-71ad-4abd-8cc4-2dcf5a891f37"`   // ID of the payee resource, optional
	PayeeName string           `json:"payeeName" example:"Bakery Brümmer" default:""`            // Free-text payee, used when no payee resource is referenced
	// EnvelopeID is the single assigned envelope. A transaction has either
	// an envelope or subtransactions, never both
	EnvelopeID      *pouch_uuid.UUID         `json:"envelopeId" example:"2649c965-8999-4873-adab-da7c570034ce"`
	Date            time.Time                `json:"date" example:"2022-10-12T00:00:00Z"`     // Date of the transaction
	Amount          types.Amount             `json:"amount" example:"-14250" default:"0"`     // The signed amount in milliunits, negative is an outflow
	Memo            string                   `json:"memo" example:"Lunch" default:""`         // A memo
	Cleared         bool                     `json:"cleared" example:"true" default:"false"`  // Has the transaction cleared the account?
	Pending         bool                     `json:"pending" example:"false" default:"false"` // Is the transaction pending at the bank?
	Approved        bool                     `json:"approved" example:"true" default:"false"` // Has the user approved the transaction?
	InInbox         *bool                    `json:"inInbox" example:"true"`                  // Is the transaction in the inbox? Defaults to true on creation
	ImportID        *string                  `json:"importId" example:"2022-10-12T-14250-lunch"`
	Subtransactions []SubtransactionEditable `json:"subtransactions"` // Split lines, replaces the whole set on update
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	inInbox := true
	if editable.InInbox != nil {
		inInbox = *editable.InInbox
	}

	return models.Transaction{
		BudgetID:   editable.BudgetID,
		AccountID:  editable.AccountID,
		PayeeID:    editable.PayeeID,
		PayeeName:  editable.PayeeName,
		EnvelopeID: editable.EnvelopeID,
		Date:       editable.Date,
		Amount:     editable.Amount,
		Memo:       editable.Memo,
		Cleared:    editable.Cleared,
		Pending:    editable.Pending,
		Approved:   editable.Approved,
		InInbox:    inInbox,
		ImportID:   editable.ImportID,
	}
}

// subtransactionInputs returns the requested split lines for the engine.
func (editable TransactionEditable) subtransactionInputs() []models.SubtransactionInput {
	inputs := make([]models.SubtransactionInput, 0, len(editable.Subtransactions))
	for _, sub := range editable.Subtransactions {
		inputs = append(inputs, models.SubtransactionInput{
			EnvelopeID: sub.EnvelopeID,
			Amount:     sub.Amount,
			Memo:       sub.Memo,
		})
	}

	return inputs
}

// Subtransaction is the representation of a Subtransaction in API v1.
type Subtransaction struct {
	models.DefaultModel
	SubtransactionEditable
}

func newSubtransaction(model models.Subtransaction) Subtransaction {
	return Subtransaction{
		DefaultModel: model.DefaultModel,
		SubtransactionEditable: SubtransactionEditable{
			EnvelopeID: model.EnvelopeID,
			Amount:     model.Amount,
			Memo:       model.Memo,
		},
	}
}

type TransactionLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`            // The transaction itself
	Duplicates string `json:"duplicates" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673/duplicates"` // Potential duplicates of this transaction
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Subtransactions []Subtransaction `json:"subtransactions"` // The stored split lines
	Links           TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	inInbox := model.InInbox
	subtransactions := make([]Subtransaction, 0, len(model.Subtransactions))
	for _, sub := range model.Subtransactions {
		subtransactions = append(subtransactions, newSubtransaction(sub))
	}

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			BudgetID:   model.BudgetID,
			AccountID:  model.AccountID,
			PayeeID:    model.PayeeID,
			PayeeName:  model.PayeeName,
			EnvelopeID: model.EnvelopeID,
			Date:       model.Date,
			Amount:     model.Amount,
			Memo:       model.Memo,
			Cleared:    model.Cleared,
			Pending:    model.Pending,
			Approved:   model.Approved,
			InInbox:    &inInbox,
			ImportID:   model.ImportID,
		},
		Subtransactions: subtransactions,
		Links: TransactionLinks{
			Self:       fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Duplicates: fmt.Sprintf("%s/v1/transactions/%s/duplicates", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if the request was successful
}

// TransactionBulkRequest is the body for the bulk lifecycle endpoints.
type TransactionBulkRequest struct {
	BudgetID       pouch_uuid.UUID   `json:"budgetId" example:"55eecbd8-7c46-4b06-ada9-f287802fb05e"` // ID of the budget
	TransactionIDs []pouch_uuid.UUID `json:"transactionIds"`                                          // IDs of the transactions to process
}

type ArchiveResponse struct {
	Data  *models.ArchiveResult `json:"data"`                                                // Counts for the archive run
	Error *string               `json:"error" example:"the budgetId field must be set"`      // The error, if any occurred
}

type ToBudgetResponse struct {
	Data  *models.ToBudgetResult `json:"data"`                                           // Counts for the to-budget run
	Error *string                `json:"error" example:"the budgetId field must be set"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Date              time.Time       `form:"date" filterField:"false"`              // Exact date. Time is ignored.
	FromDate          time.Time       `form:"fromDate" filterField:"false"`          // From this date. Time is ignored.
	UntilDate         time.Time       `form:"untilDate" filterField:"false"`         // Until this date. Time is ignored.
	Amount            types.Amount    `form:"amount"`                                // Exact amount in milliunits
	AmountLessOrEqual *types.Amount   `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual *types.Amount   `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Memo              string          `form:"memo" filterField:"false"`              // Memo contains this string
	BudgetID          pouch_uuid.UUID `form:"budget"`                                // ID of the budget
	AccountID         pouch_uuid.UUID `form:"account"`                               // ID of the account
	EnvelopeID        pouch_uuid.UUID `form:"envelope"`                              // ID of the envelope
	PayeeID           pouch_uuid.UUID `form:"payee"`                                 // ID of the payee
	InInbox           bool            `form:"inbox"`                                 // Is the transaction in the inbox?
	Cleared           bool            `form:"cleared"`                               // Has the transaction cleared the account?
	Pending           bool            `form:"pending"`                               // Is the transaction pending?
	Approved          bool            `form:"approved"`                              // Has the user approved the transaction?
	Offset            uint            `form:"offset" filterField:"false"`            // The offset of the first Transaction returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`             // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// If the IDs are nil, use an actual nil, not uuid.Nil
	var envelopeID, payeeID *pouch_uuid.UUID
	if f.EnvelopeID != pouch_uuid.Nil {
		id := f.EnvelopeID
		envelopeID = &id
	}
	if f.PayeeID != pouch_uuid.Nil {
		id := f.PayeeID
		payeeID = &id
	}

	// This does not set the string and date fields since they are
	// handled in the controller function
	return models.Transaction{
		Amount:     f.Amount,
		BudgetID:   f.BudgetID,
		AccountID:  f.AccountID,
		EnvelopeID: envelopeID,
		PayeeID:    payeeID,
		InInbox:    f.InInbox,
		Cleared:    f.Cleared,
		Pending:    f.Pending,
		Approved:   f.Approved,
	}
}
