package v1

import (
	"errors"
	"net/http"

	"github.com/cofrinho-app/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrAccountNameNotUnique),
		errors.Is(err, models.ErrCategoryNameNotUnique),
		errors.Is(err, models.ErrBudgetMonthNotUnique),
		errors.Is(err, models.ErrCategoryInUse):
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// errCouldNotLoad is the only error message returned by the aggregation
// endpoints. The cause is logged.
var errCouldNotLoad = errors.New("could not load data")
