package ports

import (
	"context"

	"github.com/comingup/marketplace-api/internal/core/domain"
)

// UserPatch is a partial update: nil fields are left untouched.
type UserPatch struct {
	Name  *string
	Email *string
	Role  *domain.Role
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	// Delete removes the user document only. Courses, reviews, and
	// enrollments referencing the user are left in place.
	Delete(ctx context.Context, id string) error

	// AddEnrolledCourse and AddToWishlist are idempotent set additions;
	// RemoveFromWishlist is an idempotent removal.
	AddEnrolledCourse(ctx context.Context, userID, courseID string) error
	AddToWishlist(ctx context.Context, userID, courseID string) error
	RemoveFromWishlist(ctx context.Context, userID, courseID string) error

	EnsureIndexes(ctx context.Context) error
}
