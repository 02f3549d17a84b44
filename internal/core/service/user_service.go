package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/comingup/marketplace-api/internal/core/auth"
	"github.com/comingup/marketplace-api/internal/core/domain"
	"github.com/comingup/marketplace-api/internal/core/ports"
)

// UserService implements admin user management plus the unauthorized lookup
// used by graph resolution.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) List(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
	if err := auth.Authorize(actor, auth.ActionListUsers, nil); err != nil {
		return nil, err
	}
	return s.users.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error) {
	if err := auth.Authorize(actor, auth.ActionViewUser, nil); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

// Create registers an account on behalf of an admin. Unlike signup, any
// valid role may be assigned.
func (s *UserService) Create(ctx context.Context, actor *domain.User, input ports.CreateUserInput) (*domain.User, error) {
	if err := auth.Authorize(actor, auth.ActionCreateUser, nil); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        strings.ToLower(input.Email),
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Str("actor_id", actor.ID).Msg("user created by admin")
	return created, nil
}

// Update applies a partial update to any user. Only fields present in the
// patch are touched.
func (s *UserService) Update(ctx context.Context, actor *domain.User, id string, patch ports.UserPatch) (*domain.User, error) {
	if err := auth.Authorize(actor, auth.ActionUpdateUser, nil); err != nil {
		return nil, err
	}
	if patch.Email != nil {
		if err := validateField("email", *patch.Email, "required,email"); err != nil {
			return nil, err
		}
		lower := strings.ToLower(*patch.Email)
		patch.Email = &lower
	}
	if patch.Role != nil {
		if err := validateField("role", string(*patch.Role), "oneof=admin instructor student"); err != nil {
			return nil, err
		}
	}

	return s.users.Update(ctx, id, patch)
}

// Delete removes a user. Courses they own, reviews they wrote, and
// enrollments pointing at them are left in place; reads filter the dangling
// references.
func (s *UserService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if err := auth.Authorize(actor, auth.ActionDeleteUser, nil); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Str("actor_id", actor.ID).Msg("user deleted")
	return nil
}

// Lookup fetches a user without an authorization check. Used by field
// resolvers to attach instructors and review authors to public reads.
func (s *UserService) Lookup(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}
