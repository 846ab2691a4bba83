package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/cert-publisher/internal/controller"
)

// unavailableMessage is the single user-visible message for every
// pre-content failure. It never distinguishes cause.
const unavailableMessage = "page not available"

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var unavailable *controller.UnavailableError
	if errors.As(err, &unavailable) {
		return http.StatusNotFound
	}
	var unknownStep *controller.UnknownStepError
	if errors.As(err, &unknownStep) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
