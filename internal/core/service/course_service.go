package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/comingup/marketplace-api/internal/core/auth"
	"github.com/comingup/marketplace-api/internal/core/domain"
	"github.com/comingup/marketplace-api/internal/core/ports"
)

// CourseService implements catalog use cases.
type CourseService struct {
	courses ports.CourseRepository
	log     zerolog.Logger
}

func NewCourseService(courses ports.CourseRepository, log zerolog.Logger) *CourseService {
	return &CourseService{courses: courses, log: log}
}

// List returns all courses. Public.
func (s *CourseService) List(ctx context.Context) ([]*domain.Course, error) {
	return s.courses.FindAll(ctx)
}

// Get returns a single course by id. Public.
func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.courses.FindByID(ctx, id)
}

// FindByIDs resolves a set of course references, skipping dangling ones.
func (s *CourseService) FindByIDs(ctx context.Context, ids []string) ([]*domain.Course, error) {
	if len(ids) == 0 {
		return []*domain.Course{}, nil
	}
	return s.courses.FindByIDs(ctx, ids)
}

// MyCourses returns the courses owned by the acting instructor.
func (s *CourseService) MyCourses(ctx context.Context, actor *domain.User) ([]*domain.Course, error) {
	if err := auth.Authorize(actor, auth.ActionListOwnCourses, nil); err != nil {
		return nil, err
	}
	return s.courses.FindByInstructor(ctx, actor.ID)
}

// Create adds a course owned by the acting instructor. Ownership is fixed at
// creation and never re-assigned.
func (s *CourseService) Create(ctx context.Context, actor *domain.User, input ports.CreateCourseInput) (*domain.Course, error) {
	if err := auth.Authorize(actor, auth.ActionCreateCourse, nil); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	course := &domain.Course{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		InstructorID: actor.ID,
		Category:     input.Category,
		Tags:         tags,
		Rating:       0,
		ReviewIDs:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.courses.Create(ctx, course)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("course_id", created.ID).Str("instructor_id", actor.ID).Msg("course created")
	return created, nil
}

// Update applies a partial update. The course is loaded first so a missing
// course surfaces as not-found before any ownership denial.
func (s *CourseService) Update(ctx context.Context, actor *domain.User, id string, patch ports.CoursePatch) (*domain.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(actor, auth.ActionUpdateCourse, course); err != nil {
		return nil, err
	}
	if patch.Price != nil {
		if err := validateField("price", *patch.Price, "gte=0"); err != nil {
			return nil, err
		}
	}

	return s.courses.Update(ctx, id, patch)
}

// Delete removes a course. Reviews referencing it are left in place.
func (s *CourseService) Delete(ctx context.Context, actor *domain.User, id string) error {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(actor, auth.ActionDeleteCourse, course); err != nil {
		return err
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("course_id", id).Str("actor_id", actor.ID).Msg("course deleted")
	return nil
}
