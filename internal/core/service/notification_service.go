package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/comingup/marketplace-api/internal/core/ports"
)

// DedupChecker abstracts the notification idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, userID, message string) (bool, error)
	Mark(ctx context.Context, userID, message string) error
}

type notificationService struct {
	dedup DedupChecker
	log   zerolog.Logger
}

// NewNotificationService returns the mock NotificationDeliverer. Delivery is
// a structured log line; identical (user, message) pairs within the dedup
// TTL are suppressed.
func NewNotificationService(dedup DedupChecker, log zerolog.Logger) ports.NotificationDeliverer {
	return &notificationService{dedup: dedup, log: log}
}

// Deliver performs one mock delivery.
func (s *notificationService) Deliver(ctx context.Context, n ports.Notification) error {
	isDup, err := s.dedup.IsDuplicate(ctx, n.UserID, n.Message)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", n.UserID).Msg("dedup check failed, delivering anyway")
	} else if isDup {
		s.log.Debug().Str("user_id", n.UserID).Msg("duplicate notification skipped")
		return nil
	}

	if markErr := s.dedup.Mark(ctx, n.UserID, n.Message); markErr != nil {
		s.log.Warn().Err(markErr).Str("user_id", n.UserID).Msg("failed to set dedup key")
	}

	// Mock delivery: log and move on. A real channel (email, push) would
	// hang off this point.
	s.log.Info().
		Str("user_id", n.UserID).
		Str("message", n.Message).
		Time("queued_at", n.QueuedAt).
		Msg("notification delivered (mock)")

	return nil
}
