// Package service provides application business logic (accounts, tags,
// content and share links).
package service

import (
	"context"
	"errors"

	"brainly/internal/auth"
	"brainly/internal/models"
	"brainly/internal/repository"
	"brainly/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// Credentials is the signup and signin request body.
type Credentials struct {
	Username string `json:"username" validate:"required,min=3,max=10"`
	Password string `json:"password" validate:"required,password"`
}

// UserService handles account creation and signin.
type UserService struct {
	users      repository.UserRepository
	tokens     *auth.TokenService
	validator  *validation.Validator
	bcryptCost int
}

// NewUserService returns a new UserService. A bcryptCost outside bcrypt's
// accepted range falls back to bcrypt.DefaultCost.
func NewUserService(users repository.UserRepository, tokens *auth.TokenService, v *validation.Validator, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{users: users, tokens: tokens, validator: v, bcryptCost: bcryptCost}
}

// Signup validates the credentials and stores a new user.
func (s *UserService) Signup(ctx context.Context, in Credentials) error {
	if violations := s.validator.Validate(in); len(violations) > 0 {
		return models.NewValidationError("Error in inputs", violations...)
	}

	existing, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.NewConflictError("User already exists with this username")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return models.NewInternalError(err)
	}

	return s.users.Create(ctx, &models.User{Username: in.Username, Password: string(hashed)})
}

// Signin checks the credentials and returns a token for the user.
func (s *UserService) Signin(ctx context.Context, in Credentials) (string, error) {
	user, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.NewUnauthorizedError("No User with this username exists")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", models.NewUnauthorizedError("Wrong password entered")
		}
		return "", models.NewInternalError(err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return token, nil
}
