package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/comingup/marketplace-api/internal/core/auth"
	"github.com/comingup/marketplace-api/internal/core/domain"
	"github.com/comingup/marketplace-api/internal/core/ports"
)

// ReviewService implements the review lifecycle. Creating a review writes to
// two aggregates (the review collection and the course's reference list)
// sequentially and without a transaction; see Add.
type ReviewService struct {
	reviews ports.ReviewRepository
	courses ports.CourseRepository
	log     zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, courses ports.CourseRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, courses: courses, log: log}
}

// Add creates a review authored by the acting user. The course must exist at
// creation time. The review insert and the course reference push are two
// sequential writes: if the push fails the review exists unlinked, which is
// tolerated because reads resolve reviews by course id, not by the list.
// Nothing prevents the same user reviewing the same course twice.
func (s *ReviewService) Add(ctx context.Context, actor *domain.User, input ports.AddReviewInput) (*domain.Review, error) {
	if err := auth.Authorize(actor, auth.ActionAddReview, nil); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.courses.FindByID(ctx, input.CourseID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	review := &domain.Review{
		UserID:    actor.ID,
		CourseID:  input.CourseID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	if err := s.courses.PushReview(ctx, input.CourseID, created.ID); err != nil {
		s.log.Warn().Err(err).
			Str("review_id", created.ID).
			Str("course_id", input.CourseID).
			Msg("review created but not linked to course")
	}

	s.log.Info().Str("review_id", created.ID).Str("course_id", input.CourseID).Str("user_id", actor.ID).Msg("review added")
	return created, nil
}

// Update applies a partial update. Author-only: even admins are denied. The
// review is loaded first so not-found wins over the ownership denial.
func (s *ReviewService) Update(ctx context.Context, actor *domain.User, id string, patch ports.ReviewPatch) (*domain.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(actor, auth.ActionUpdateReview, review); err != nil {
		return nil, err
	}
	if patch.Rating != nil {
		if err := validateField("rating", *patch.Rating, "gte=1,lte=5"); err != nil {
			return nil, err
		}
	}

	return s.reviews.Update(ctx, id, patch)
}

// Delete removes a review (author-only) and then pulls the reference from
// the course document as an explicit cleanup step. The pull is best-effort:
// a failure leaves a dangling reference that reads already tolerate.
func (s *ReviewService) Delete(ctx context.Context, actor *domain.User, id string) error {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(actor, auth.ActionDeleteReview, review); err != nil {
		return err
	}

	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.courses.PullReview(ctx, review.CourseID, id); err != nil {
		s.log.Warn().Err(err).
			Str("review_id", id).
			Str("course_id", review.CourseID).
			Msg("review deleted but reference not removed from course")
	}

	s.log.Info().Str("review_id", id).Str("user_id", actor.ID).Msg("review deleted")
	return nil
}

// ForCourse returns the reviews of a course, queried by course id so stale
// entries in the course's reference list never surface.
func (s *ReviewService) ForCourse(ctx context.Context, courseID string) ([]*domain.Review, error) {
	return s.reviews.FindByCourse(ctx, courseID)
}
