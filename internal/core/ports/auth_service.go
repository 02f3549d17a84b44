package ports

import (
	"context"

	"github.com/comingup/marketplace-api/internal/core/domain"
)

// SignupInput carries self-service registration data. Role is always
// student; privileged roles are assigned through the admin createUser path.
type SignupInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// AuthPayload is returned by signup and login.
type AuthPayload struct {
	Token string
	User  *domain.User
}

// AuthService handles registration, login, and token resolution.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthPayload, error)
	Login(ctx context.Context, email, password string) (*AuthPayload, error)
	// Authenticate resolves a bearer token to its user. Any failure
	// (malformed token, bad signature, expiry, unknown subject) yields nil,
	// an anonymous caller, never an error. Rejecting anonymous callers is
	// the authorization policy's job, not the gateway's.
	Authenticate(ctx context.Context, token string) *domain.User
}
