package server

import (
	"errors"
	"net/http"

	"github.com/qatth/careerscan/internal/auth"
	"github.com/qatth/careerscan/internal/extraction"
	"github.com/qatth/careerscan/internal/webhook"
)

// HTTPStatus maps core error types to response status codes. Anything
// unrecognized is an internal error.
func HTTPStatus(err error) int {
	var (
		validation  *auth.ValidationError
		duplicate   *auth.DuplicateEmailError
		credentials *auth.InvalidCredentialsError
		unsupported *extraction.UnsupportedFileTypeError
		readErr     *extraction.DocumentReadError
		whErr       *webhook.Error
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &duplicate):
		return http.StatusConflict
	case errors.As(err, &credentials):
		return http.StatusUnauthorized
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &readErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &whErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
