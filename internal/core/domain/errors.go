package domain

import "errors"

// Sentinel errors shared across services, repositories, and the GraphQL
// error formatter. Existence errors always take precedence over
// ErrUnauthorized: services load the target first, so a caller can never
// learn about a resource's existence from an ownership denial.
var (
	// ErrValidation marks malformed input. Wrapped with field details.
	ErrValidation = errors.New("validation failed")
	// ErrEmailTaken is returned on signup/createUser with a registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is returned when an authenticated (or anonymous)
	// caller is not allowed to perform an action.
	ErrUnauthorized = errors.New("unauthorized")

	ErrUserNotFound   = errors.New("user not found")
	ErrCourseNotFound = errors.New("course not found")
	ErrReviewNotFound = errors.New("review not found")
)
