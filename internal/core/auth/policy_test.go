package auth

import (
	"errors"
	"testing"

	"github.com/comingup/marketplace-api/internal/core/domain"
)

var (
	admin       = &domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	instructor  = &domain.User{ID: "inst-1", Role: domain.RoleInstructor}
	instructor2 = &domain.User{ID: "inst-2", Role: domain.RoleInstructor}
	student     = &domain.User{ID: "stud-1", Role: domain.RoleStudent}
)

func TestAuthorize_Anonymous(t *testing.T) {
	actions := []Action{
		ActionListUsers, ActionViewUser, ActionCreateUser, ActionUpdateUser, ActionDeleteUser,
		ActionListOwnCourses, ActionCreateCourse, ActionUpdateCourse, ActionDeleteCourse,
		ActionEnroll, ActionAddToWishlist, ActionRemoveFromWishlist,
		ActionAddReview, ActionUpdateReview, ActionDeleteReview,
		ActionProcessPayment, ActionSendNotification,
	}
	for _, action := range actions {
		if err := Authorize(nil, action, nil); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("action %d: expected deny for anonymous, got %v", action, err)
		}
	}
}

func TestAuthorize_UserManagement(t *testing.T) {
	for _, action := range []Action{ActionListUsers, ActionViewUser, ActionCreateUser, ActionUpdateUser, ActionDeleteUser} {
		if err := Authorize(admin, action, nil); err != nil {
			t.Fatalf("action %d: expected allow for admin, got %v", action, err)
		}
		if err := Authorize(instructor, action, nil); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("action %d: expected deny for instructor, got %v", action, err)
		}
		if err := Authorize(student, action, nil); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("action %d: expected deny for student, got %v", action, err)
		}
	}
}

func TestAuthorize_CourseCreation(t *testing.T) {
	for _, action := range []Action{ActionCreateCourse, ActionListOwnCourses} {
		if err := Authorize(instructor, action, nil); err != nil {
			t.Fatalf("expected allow for instructor, got %v", err)
		}
		// Admins manage users, not the catalog; they cannot author courses.
		if err := Authorize(admin, action, nil); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("expected deny for admin, got %v", err)
		}
		if err := Authorize(student, action, nil); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("expected deny for student, got %v", err)
		}
	}
}

func TestAuthorize_CourseOwnership(t *testing.T) {
	course := &domain.Course{ID: "c1", InstructorID: instructor.ID}

	cases := []struct {
		name  string
		actor *domain.User
		allow bool
	}{
		{"owner", instructor, true},
		{"admin override", admin, true},
		{"other instructor", instructor2, false},
		{"student", student, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, action := range []Action{ActionUpdateCourse, ActionDeleteCourse} {
				err := Authorize(tc.actor, action, course)
				if tc.allow && err != nil {
					t.Fatalf("expected allow, got %v", err)
				}
				if !tc.allow && !errors.Is(err, domain.ErrUnauthorized) {
					t.Fatalf("expected deny, got %v", err)
				}
			}
		})
	}
}

func TestAuthorize_AnyAuthenticated(t *testing.T) {
	actions := []Action{
		ActionEnroll, ActionAddToWishlist, ActionRemoveFromWishlist,
		ActionAddReview, ActionProcessPayment, ActionSendNotification,
	}
	for _, actor := range []*domain.User{admin, instructor, student} {
		for _, action := range actions {
			if err := Authorize(actor, action, nil); err != nil {
				t.Fatalf("role %s action %d: expected allow, got %v", actor.Role, action, err)
			}
		}
	}
}

func TestAuthorize_ReviewAuthorOnly(t *testing.T) {
	review := &domain.Review{ID: "r1", UserID: student.ID}

	for _, action := range []Action{ActionUpdateReview, ActionDeleteReview} {
		if err := Authorize(student, action, review); err != nil {
			t.Fatalf("expected allow for author, got %v", err)
		}
		// No admin override on review mutations.
		if err := Authorize(admin, action, review); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("expected deny for admin, got %v", err)
		}
		if err := Authorize(instructor, action, review); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("expected deny for non-author, got %v", err)
		}
	}
}

func TestAuthorize_MissingTarget(t *testing.T) {
	if err := Authorize(admin, ActionUpdateCourse, nil); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected deny without target, got %v", err)
	}
	if err := Authorize(student, ActionDeleteReview, nil); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected deny without target, got %v", err)
	}
}
