package v1

import (
	pouch_uuid "github.com/pouchbudget/backend/internal/uuid"
)

type URIID struct {
	ID pouch_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// OrderRequest sets the sort order of the listed resources to the order of
// the ID list.
type OrderRequest struct {
	BudgetID pouch_uuid.UUID   `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	IDs      []pouch_uuid.UUID `json:"ids"`                                                     // Resource IDs in the desired order
}

type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}
