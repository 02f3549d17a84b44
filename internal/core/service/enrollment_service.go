package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/comingup/marketplace-api/internal/core/auth"
	"github.com/comingup/marketplace-api/internal/core/domain"
	"github.com/comingup/marketplace-api/internal/core/ports"
)

// EnrollmentService implements enrollment and wishlist membership for the
// acting user. All writes are idempotent set operations.
type EnrollmentService struct {
	users   ports.UserRepository
	courses ports.CourseRepository
	log     zerolog.Logger
}

func NewEnrollmentService(users ports.UserRepository, courses ports.CourseRepository, log zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{users: users, courses: courses, log: log}
}

// Enroll adds the course to the actor's enrolled set. Enrolling twice leaves
// exactly one reference.
func (s *EnrollmentService) Enroll(ctx context.Context, actor *domain.User, courseID string) error {
	if err := auth.Authorize(actor, auth.ActionEnroll, nil); err != nil {
		return err
	}
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		return err
	}

	if err := s.users.AddEnrolledCourse(ctx, actor.ID, courseID); err != nil {
		return err
	}

	s.log.Info().Str("user_id", actor.ID).Str("course_id", courseID).Msg("user enrolled")
	return nil
}

// AddToWishlist adds the course to the actor's wishlist, idempotently.
func (s *EnrollmentService) AddToWishlist(ctx context.Context, actor *domain.User, courseID string) error {
	if err := auth.Authorize(actor, auth.ActionAddToWishlist, nil); err != nil {
		return err
	}
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		return err
	}

	return s.users.AddToWishlist(ctx, actor.ID, courseID)
}

// RemoveFromWishlist removes the course from the actor's wishlist. Removing
// an absent entry is a no-op, so no existence check is needed.
func (s *EnrollmentService) RemoveFromWishlist(ctx context.Context, actor *domain.User, courseID string) error {
	if err := auth.Authorize(actor, auth.ActionRemoveFromWishlist, nil); err != nil {
		return err
	}

	return s.users.RemoveFromWishlist(ctx, actor.ID, courseID)
}
