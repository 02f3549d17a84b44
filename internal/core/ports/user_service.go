package ports

import (
	"context"

	"github.com/comingup/marketplace-api/internal/core/domain"
)

// CreateUserInput carries admin-initiated account creation data. Unlike
// signup, any valid role may be assigned.
type CreateUserInput struct {
	Name     string      `validate:"required"`
	Email    string      `validate:"required,email"`
	Password string      `validate:"required,min=6"`
	Role     domain.Role `validate:"required,oneof=admin instructor student"`
}

// UserService defines user-management use cases. List, Get, Create, Update,
// and Delete are admin-only; Lookup is an unauthorized read used by the
// graph resolvers to attach instructors and review authors.
type UserService interface {
	List(ctx context.Context, actor *domain.User) ([]*domain.User, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error)
	Create(ctx context.Context, actor *domain.User, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, actor *domain.User, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	Lookup(ctx context.Context, id string) (*domain.User, error)
}
