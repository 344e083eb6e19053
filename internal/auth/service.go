package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iamtheretronerd/levelup/internal/logger"
	"github.com/iamtheretronerd/levelup/internal/store"
)

// Credential handling is plaintext equality, carried over from the
// original backend unchanged. Hardening it is out of scope here.

var (
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials indicates a failed login. The caller gets no
	// hint whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound indicates no account exists for the email.
	ErrUserNotFound = errors.New("user not found")
)

// Service manages user accounts.
type Service struct {
	users store.UserRepo
	log   *logger.Logger
}

// NewService creates an auth service.
func NewService(users store.UserRepo, log *logger.Logger) *Service {
	return &Service{users: users, log: log.With("component", "auth")}
}

// SignupInput carries the fields for a new account.
type SignupInput struct {
	Name         string
	Email        string
	Password     string
	ProfileImage string
}

// Signup registers a new user and returns it.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*store.User, error) {
	existing, err := s.users.ByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	u := &store.User{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		Password:     in.Password,
		ProfileImage: in.ProfileImage,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user created", "user_id", u.ID)
	return u, nil
}

// Login checks the credentials and returns the user on success.
func (s *Service) Login(ctx context.Context, email, password string) (*store.User, error) {
	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil || u.Password != password {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// UpdateInput carries profile changes. CurrentEmail identifies the
// account; Email may differ to change the address. An empty Password
// leaves the stored one untouched.
type UpdateInput struct {
	CurrentEmail string
	Name         string
	Email        string
	Password     string
	ProfileImage string
}

// Update modifies a user's profile.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	u, err := s.users.ByEmail(ctx, in.CurrentEmail)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return ErrUserNotFound
	}

	if in.Email != in.CurrentEmail {
		taken, err := s.users.ByEmail(ctx, in.Email)
		if err != nil {
			return fmt.Errorf("check new email: %w", err)
		}
		if taken != nil {
			return ErrEmailTaken
		}
	}

	ok, err := s.users.Update(ctx, in.CurrentEmail, &store.User{
		Name:         in.Name,
		Email:        in.Email,
		Password:     in.Password,
		ProfileImage: in.ProfileImage,
	})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes the account for the email.
func (s *Service) Delete(ctx context.Context, email string) error {
	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return ErrUserNotFound
	}

	ok, err := s.users.DeleteByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !ok {
		return ErrUserNotFound
	}

	s.log.Info("user deleted", "user_id", u.ID)
	return nil
}
