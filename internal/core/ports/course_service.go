package ports

import (
	"context"

	"github.com/comingup/marketplace-api/internal/core/domain"
)

// CreateCourseInput carries all data needed to create a course. The owning
// instructor is the acting user, never a field of the input.
type CreateCourseInput struct {
	Title       string  `validate:"required"`
	Description string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Category    string  `validate:"required"`
	Tags        []string
}

// CourseService defines use-case operations for the course catalog.
// List, Get, and FindByIDs are public reads; the rest are authorized against
// the acting user (nil actor = anonymous).
type CourseService interface {
	List(ctx context.Context) ([]*domain.Course, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	// FindByIDs backs the enrolledCourses/wishlist field resolvers.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Course, error)
	MyCourses(ctx context.Context, actor *domain.User) ([]*domain.Course, error)
	Create(ctx context.Context, actor *domain.User, input CreateCourseInput) (*domain.Course, error)
	Update(ctx context.Context, actor *domain.User, id string, patch CoursePatch) (*domain.Course, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}
