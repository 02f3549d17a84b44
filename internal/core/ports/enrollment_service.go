package ports

import (
	"context"

	"github.com/comingup/marketplace-api/internal/core/domain"
)

// EnrollmentService covers enrollment and wishlist membership. All three
// operations are idempotent and available to any authenticated caller.
type EnrollmentService interface {
	Enroll(ctx context.Context, actor *domain.User, courseID string) error
	AddToWishlist(ctx context.Context, actor *domain.User, courseID string) error
	RemoveFromWishlist(ctx context.Context, actor *domain.User, courseID string) error
}
