package v1

import (
	"errors"
	"net/http"

	"github.com/pouchbudget/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrConflict) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errBudgetIDParameter = errors.New("the budgetId field must be set")
	errNoIDs             = errors.New("the transactionIds field must contain at least one ID")
)
