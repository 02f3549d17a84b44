package graphql

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/comingup/marketplace-api/internal/core/domain"
)

// Error codes surfaced in extensions.code.
const (
	codeValidation   = "VALIDATION_ERROR"
	codeAuth         = "AUTH_ERROR"
	codeUnauthorized = "UNAUTHORIZED"
	codeNotFound     = "NOT_FOUND"
	codeInternal     = "INTERNAL"
)

// apiError carries a stable machine-readable code alongside the message.
// graphql-go picks up Extensions() via the gqlerrors.ExtendedError interface.
type apiError struct {
	code string
	msg  string
}

func (e *apiError) Error() string { return e.msg }

func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// translate maps domain errors to client-facing GraphQL errors. Unknown
// errors are logged with their real cause and surfaced as a generic
// internal error.
func translate(log zerolog.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return &apiError{code: codeValidation, msg: err.Error()}
	case errors.Is(err, domain.ErrEmailTaken):
		return &apiError{code: codeValidation, msg: "email already registered"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return &apiError{code: codeAuth, msg: "invalid credentials"}
	case errors.Is(err, domain.ErrUnauthorized):
		return &apiError{code: codeUnauthorized, msg: "Unauthorized"}
	case errors.Is(err, domain.ErrUserNotFound):
		return &apiError{code: codeNotFound, msg: "user not found"}
	case errors.Is(err, domain.ErrCourseNotFound):
		return &apiError{code: codeNotFound, msg: "course not found"}
	case errors.Is(err, domain.ErrReviewNotFound):
		return &apiError{code: codeNotFound, msg: "review not found"}
	}

	log.Error().Err(err).Msg("unhandled resolver error")
	return &apiError{code: codeInternal, msg: "internal server error"}
}
