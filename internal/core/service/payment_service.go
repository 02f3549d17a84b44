package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/comingup/marketplace-api/internal/core/auth"
	"github.com/comingup/marketplace-api/internal/core/domain"
	"github.com/comingup/marketplace-api/internal/core/ports"
)

// PaymentService is a stub payment processor: it validates the course and
// returns a confirmation string. No charge is made and no state changes.
type PaymentService struct {
	courses ports.CourseRepository
	log     zerolog.Logger
}

func NewPaymentService(courses ports.CourseRepository, log zerolog.Logger) *PaymentService {
	return &PaymentService{courses: courses, log: log}
}

func (s *PaymentService) Process(ctx context.Context, actor *domain.User, courseID, paymentMethod string) (string, error) {
	if err := auth.Authorize(actor, auth.ActionProcessPayment, nil); err != nil {
		return "", err
	}
	if paymentMethod == "" {
		return "", fmt.Errorf("%w: paymentmethod is required", domain.ErrValidation)
	}

	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return "", err
	}

	ref := uuid.NewString()
	s.log.Info().
		Str("payment_ref", ref).
		Str("course_id", courseID).
		Str("user_id", actor.ID).
		Str("method", paymentMethod).
		Float64("amount", course.Price).
		Msg("payment processed (mock)")

	return fmt.Sprintf("Payment of %.2f processed for course %s using %s (ref %s)", course.Price, courseID, paymentMethod, ref), nil
}
