package ports

import (
	"context"

	"github.com/comingup/marketplace-api/internal/core/domain"
)

// PaymentService is a stub: it validates the course and returns a
// confirmation string without touching any state.
type PaymentService interface {
	Process(ctx context.Context, actor *domain.User, courseID, paymentMethod string) (string, error)
}
