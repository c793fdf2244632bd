package server

import (
	"errors"
	"net/http"

	"careercoach/internal/coach"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Everything outside the pipeline taxonomy is an unclassified failure.
func HTTPStatus(err error) int {
	var verr *coach.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	var nferr *coach.NotFoundError
	if errors.As(err, &nferr) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
