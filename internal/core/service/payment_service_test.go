package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/comingup/marketplace-api/internal/core/domain"
)

func TestPaymentService_Process(t *testing.T) {
	courses := newStubCourseRepo()
	svc := NewPaymentService(courses, zerolog.Nop())
	course := courses.mustAddCourse(&domain.Course{Title: "T", Price: 49.99, InstructorID: "inst"})

	confirmation, err := svc.Process(context.Background(), testStudent, course.ID, "credit_card")
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if !strings.Contains(confirmation, "49.99") || !strings.Contains(confirmation, course.ID) {
		t.Fatalf("unexpected confirmation: %s", confirmation)
	}

	// No state changed: the stub never records a purchase.
	again, err := svc.Process(context.Background(), testStudent, course.ID, "credit_card")
	if err != nil {
		t.Fatalf("second Process failed: %v", err)
	}
	if again == confirmation {
		t.Fatalf("expected a fresh confirmation reference per call")
	}
}

func TestPaymentService_Process_Errors(t *testing.T) {
	courses := newStubCourseRepo()
	svc := NewPaymentService(courses, zerolog.Nop())
	course := courses.mustAddCourse(&domain.Course{Title: "T", Price: 10, InstructorID: "inst"})

	if _, err := svc.Process(context.Background(), nil, course.ID, "card"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.Process(context.Background(), testStudent, "missing", "card"); !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
	if _, err := svc.Process(context.Background(), testStudent, course.ID, ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty method, got %v", err)
	}
}
