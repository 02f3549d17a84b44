package service

import (
	"context"
	"fmt"

	"github.com/comingup/marketplace-api/internal/core/domain"
	"github.com/comingup/marketplace-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests. All of them return
// clones so tests cannot mutate stored state by accident.

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.EnrolledCourses = append([]string(nil), u.EnrolledCourses...)
	clone.Wishlist = append([]string(nil), u.Wishlist...)
	return &clone
}

func cloneCourse(c *domain.Course) *domain.Course {
	if c == nil {
		return nil
	}
	clone := *c
	if c.Tags != nil {
		clone.Tags = append([]string{}, c.Tags...)
	}
	if c.ReviewIDs != nil {
		clone.ReviewIDs = append([]string{}, c.ReviewIDs...)
	}
	return &clone
}

func cloneReview(r *domain.Review) *domain.Review {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func remove(list []string, v string) []string {
	out := list[:0]
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	stored := cloneUser(user)
	stored.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) AddEnrolledCourse(_ context.Context, userID, courseID string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if !contains(u.EnrolledCourses, courseID) {
		u.EnrolledCourses = append(u.EnrolledCourses, courseID)
	}
	return nil
}

func (r *stubUserRepo) AddToWishlist(_ context.Context, userID, courseID string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if !contains(u.Wishlist, courseID) {
		u.Wishlist = append(u.Wishlist, courseID)
	}
	return nil
}

func (r *stubUserRepo) RemoveFromWishlist(_ context.Context, userID, courseID string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Wishlist = remove(u.Wishlist, courseID)
	return nil
}

func (r *stubUserRepo) EnsureIndexes(_ context.Context) error { return nil }

// mustAddUser seeds a user directly, bypassing Create's duplicate check.
func (r *stubUserRepo) mustAddUser(u *domain.User) *domain.User {
	r.seq++
	stored := cloneUser(u)
	if stored.ID == "" {
		stored.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[stored.ID] = stored
	return cloneUser(stored)
}

type stubCourseRepo struct {
	courses map[string]*domain.Course
	seq     int

	pushErr error
	pullErr error
}

func newStubCourseRepo() *stubCourseRepo {
	return &stubCourseRepo{courses: make(map[string]*domain.Course)}
}

func (r *stubCourseRepo) Create(_ context.Context, course *domain.Course) (*domain.Course, error) {
	r.seq++
	stored := cloneCourse(course)
	stored.ID = fmt.Sprintf("course-%d", r.seq)
	r.courses[stored.ID] = stored
	return cloneCourse(stored), nil
}

func (r *stubCourseRepo) FindByID(_ context.Context, id string) (*domain.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return cloneCourse(c), nil
}

func (r *stubCourseRepo) FindAll(_ context.Context) ([]*domain.Course, error) {
	out := make([]*domain.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, cloneCourse(c))
	}
	return out, nil
}

func (r *stubCourseRepo) FindByInstructor(_ context.Context, instructorID string) ([]*domain.Course, error) {
	var out []*domain.Course
	for _, c := range r.courses {
		if c.InstructorID == instructorID {
			out = append(out, cloneCourse(c))
		}
	}
	return out, nil
}

func (r *stubCourseRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Course, error) {
	var out []*domain.Course
	for _, id := range ids {
		if c, ok := r.courses[id]; ok {
			out = append(out, cloneCourse(c))
		}
	}
	return out, nil
}

func (r *stubCourseRepo) Update(_ context.Context, id string, patch ports.CoursePatch) (*domain.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	if patch.Title != nil {
		c.Title = *patch.Title
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Price != nil {
		c.Price = *patch.Price
	}
	if patch.Category != nil {
		c.Category = *patch.Category
	}
	if patch.Tags != nil {
		c.Tags = append([]string(nil), (*patch.Tags)...)
	}
	return cloneCourse(c), nil
}

func (r *stubCourseRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.courses[id]; !ok {
		return domain.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *stubCourseRepo) PushReview(_ context.Context, courseID, reviewID string) error {
	if r.pushErr != nil {
		return r.pushErr
	}
	c, ok := r.courses[courseID]
	if !ok {
		return domain.ErrCourseNotFound
	}
	if !contains(c.ReviewIDs, reviewID) {
		c.ReviewIDs = append(c.ReviewIDs, reviewID)
	}
	return nil
}

func (r *stubCourseRepo) PullReview(_ context.Context, courseID, reviewID string) error {
	if r.pullErr != nil {
		return r.pullErr
	}
	c, ok := r.courses[courseID]
	if !ok {
		return domain.ErrCourseNotFound
	}
	c.ReviewIDs = remove(c.ReviewIDs, reviewID)
	return nil
}

func (r *stubCourseRepo) EnsureIndexes(_ context.Context) error { return nil }

func (r *stubCourseRepo) mustAddCourse(c *domain.Course) *domain.Course {
	r.seq++
	stored := cloneCourse(c)
	if stored.ID == "" {
		stored.ID = fmt.Sprintf("course-%d", r.seq)
	}
	r.courses[stored.ID] = stored
	return cloneCourse(stored)
}

type stubReviewRepo struct {
	reviews map[string]*domain.Review
	seq     int
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	r.seq++
	stored := cloneReview(review)
	stored.ID = fmt.Sprintf("review-%d", r.seq)
	r.reviews[stored.ID] = stored
	return cloneReview(stored), nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	return cloneReview(rv), nil
}

func (r *stubReviewRepo) FindByCourse(_ context.Context, courseID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rv := range r.reviews {
		if rv.CourseID == courseID {
			out = append(out, cloneReview(rv))
		}
	}
	return out, nil
}

func (r *stubReviewRepo) Update(_ context.Context, id string, patch ports.ReviewPatch) (*domain.Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	if patch.Rating != nil {
		rv.Rating = *patch.Rating
	}
	if patch.Comment != nil {
		rv.Comment = *patch.Comment
	}
	return cloneReview(rv), nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *stubReviewRepo) EnsureIndexes(_ context.Context) error { return nil }
