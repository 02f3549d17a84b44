// Package auth implements the authorization policy as a pure function over
// (actor, action, target). Services call Authorize before every mutation and
// before the admin/instructor-only queries, always after loading the target,
// so a not-found error is surfaced before an ownership denial.
package auth

import (
	"github.com/comingup/marketplace-api/internal/core/domain"
)

// Action identifies an operation subject to authorization.
type Action int

const (
	ActionListUsers Action = iota
	ActionViewUser
	ActionCreateUser
	ActionUpdateUser
	ActionDeleteUser

	ActionListOwnCourses
	ActionCreateCourse
	ActionUpdateCourse
	ActionDeleteCourse

	ActionEnroll
	ActionAddToWishlist
	ActionRemoveFromWishlist

	ActionAddReview
	ActionUpdateReview
	ActionDeleteReview

	ActionProcessPayment
	ActionSendNotification
)

// Authorize decides whether actor may perform action on target. A nil actor
// is an anonymous caller. Target is the loaded entity for ownership checks
// (*domain.Course or *domain.Review) and nil otherwise.
//
// Rule precedence:
//  1. anonymous → deny everything here (signup/login/browsing never reach
//     the policy)
//  2. admin → all user- and course-management actions, any owner
//  3. instructor → create courses; update/delete only owned courses
//  4. any authenticated → enroll, wishlist, add reviews, payments,
//     notifications; update/delete only own reviews (admins included: review
//     mutation stays author-only)
//  5. default deny
func Authorize(actor *domain.User, action Action, target any) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}

	switch action {
	case ActionListUsers, ActionViewUser, ActionCreateUser, ActionUpdateUser, ActionDeleteUser:
		if actor.Role == domain.RoleAdmin {
			return nil
		}
		return domain.ErrUnauthorized

	case ActionListOwnCourses, ActionCreateCourse:
		if actor.Role == domain.RoleInstructor {
			return nil
		}
		return domain.ErrUnauthorized

	case ActionUpdateCourse, ActionDeleteCourse:
		course, ok := target.(*domain.Course)
		if !ok {
			return domain.ErrUnauthorized
		}
		switch actor.Role {
		case domain.RoleAdmin:
			return nil
		case domain.RoleInstructor:
			if course.InstructorID == actor.ID {
				return nil
			}
			return domain.ErrUnauthorized
		case domain.RoleStudent:
			return domain.ErrUnauthorized
		}
		return domain.ErrUnauthorized

	case ActionEnroll, ActionAddToWishlist, ActionRemoveFromWishlist,
		ActionAddReview, ActionProcessPayment, ActionSendNotification:
		// Any authenticated caller.
		return nil

	case ActionUpdateReview, ActionDeleteReview:
		review, ok := target.(*domain.Review)
		if !ok {
			return domain.ErrUnauthorized
		}
		// Author-only, with no admin override.
		if review.UserID == actor.ID {
			return nil
		}
		return domain.ErrUnauthorized
	}

	return domain.ErrUnauthorized
}
