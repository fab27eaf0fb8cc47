package service

import (
	"context"
	"strings"

	"scamwatch/internal/models"
	"scamwatch/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

type CreateUserInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.NewValidationError("Name is required")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, models.NewValidationError("Email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, models.NewValidationError("Email is invalid")
	}
	if in.Secret == "" {
		return nil, models.NewValidationError("Secret is required")
	}

	user := &models.User{
		Name:   in.Name,
		Email:  email,
		Secret: in.Secret,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

type UpdateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUser changes name and email. The secret is not updatable here.
func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.NewValidationError("Name is required")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, models.NewValidationError("Email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, models.NewValidationError("Email is invalid")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = in.Name
	user.Email = email
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}
