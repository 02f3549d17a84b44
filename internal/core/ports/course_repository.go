package ports

import (
	"context"

	"github.com/comingup/marketplace-api/internal/core/domain"
)

// CoursePatch is a partial update: nil fields are left untouched. Tags is a
// pointer to a slice so "replace with empty list" and "leave alone" stay
// distinguishable.
type CoursePatch struct {
	Title       *string
	Description *string
	Price       *float64
	Category    *string
	Tags        *[]string
}

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	FindAll(ctx context.Context) ([]*domain.Course, error)
	FindByInstructor(ctx context.Context, instructorID string) ([]*domain.Course, error)
	// FindByIDs returns the courses whose IDs are in the given set. IDs that
	// no longer resolve are silently skipped, which is how dangling
	// enrollment and wishlist references get filtered at read time.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Course, error)
	Update(ctx context.Context, id string, patch CoursePatch) (*domain.Course, error)
	// Delete removes the course document only; its reviews are not touched.
	Delete(ctx context.Context, id string) error

	// PushReview appends a review reference; PullReview removes one.
	PushReview(ctx context.Context, courseID, reviewID string) error
	PullReview(ctx context.Context, courseID, reviewID string) error

	EnsureIndexes(ctx context.Context) error
}
