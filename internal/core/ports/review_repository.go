package ports

import (
	"context"

	"github.com/comingup/marketplace-api/internal/core/domain"
)

// ReviewPatch is a partial update: nil fields are left untouched.
type ReviewPatch struct {
	Rating  *int
	Comment *string
}

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	FindByCourse(ctx context.Context, courseID string) ([]*domain.Review, error)
	Update(ctx context.Context, id string, patch ReviewPatch) (*domain.Review, error)
	Delete(ctx context.Context, id string) error

	EnsureIndexes(ctx context.Context) error
}
