package ports

import (
	"context"

	"github.com/comingup/marketplace-api/internal/core/domain"
)

// AddReviewInput carries data for creating a review. The author is the
// acting user.
type AddReviewInput struct {
	CourseID string `validate:"required"`
	Rating   int    `validate:"gte=1,lte=5"`
	Comment  string
}

// ReviewService defines review use cases. Add requires any authenticated
// caller; Update and Delete are restricted to the review's author.
type ReviewService interface {
	Add(ctx context.Context, actor *domain.User, input AddReviewInput) (*domain.Review, error)
	Update(ctx context.Context, actor *domain.User, id string, patch ReviewPatch) (*domain.Review, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	// ForCourse backs the Course.reviews field resolver.
	ForCourse(ctx context.Context, courseID string) ([]*domain.Review, error)
}
