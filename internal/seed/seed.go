// Package seed populates sample marketplace data for local development.
package seed

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/comingup/marketplace-api/internal/core/domain"
	"github.com/comingup/marketplace-api/internal/core/ports"
)

const samplePassword = "password123"

// Run inserts one admin, two instructors, and four sample courses. It is a
// no-op when any users already exist, so it is safe to leave enabled across
// restarts.
func Run(ctx context.Context, users ports.UserRepository, courses ports.CourseRepository, log zerolog.Logger) error {
	existing, err := users.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Debug().Int("users", len(existing)).Msg("seed skipped, data present")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(samplePassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	newUser := func(name, email string, role domain.Role) *domain.User {
		return &domain.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	if _, err := users.Create(ctx, newUser("Admin", "admin@example.com", domain.RoleAdmin)); err != nil {
		return err
	}
	john, err := users.Create(ctx, newUser("John Doe", "john@example.com", domain.RoleInstructor))
	if err != nil {
		return err
	}
	jane, err := users.Create(ctx, newUser("Jane Smith", "jane@example.com", domain.RoleInstructor))
	if err != nil {
		return err
	}

	sample := []*domain.Course{
		{
			Title:        "Introduction to React",
			Description:  "Learn the basics of React.js",
			Price:        49.99,
			InstructorID: john.ID,
			Category:     "Web Development",
			Tags:         []string{"React", "JavaScript", "Frontend"},
		},
		{
			Title:        "Advanced Node.js",
			Description:  "Master Node.js for backend development",
			Price:        79.99,
			InstructorID: jane.ID,
			Category:     "Backend Development",
			Tags:         []string{"Node.js", "JavaScript", "Backend"},
		},
		{
			Title:        "Data Science with Python",
			Description:  "Explore data science concepts using Python",
			Price:        99.99,
			InstructorID: john.ID,
			Category:     "Data Science",
			Tags:         []string{"Python", "Data Science", "Machine Learning"},
		},
		{
			Title:        "UI/UX Design Fundamentals",
			Description:  "Learn the principles of user interface and experience design",
			Price:        59.99,
			InstructorID: jane.ID,
			Category:     "Design",
			Tags:         []string{"UI", "UX", "Design"},
		},
	}

	for _, course := range sample {
		course.CreatedAt = now
		course.UpdatedAt = now
		course.ReviewIDs = []string{}
		if _, err := courses.Create(ctx, course); err != nil {
			return err
		}
	}

	log.Info().Int("courses", len(sample)).Msg("sample data seeded")
	return nil
}
