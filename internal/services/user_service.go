package services

import (
	"context"

	"film-catalog/internal/apperr"
	"film-catalog/internal/database"
	"film-catalog/internal/models"
	"film-catalog/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, username, password string) (uint, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo   repository.UserRepository
	logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// Register creates a user with a bcrypt-hashed password. The username
// pre-check gives the friendly conflict message; the unique index on
// users.username closes the race between two concurrent registrations.
func (s *userService) Register(ctx context.Context, username, password string) (uint, error) {
	if username == "" || password == "" {
		return 0, apperr.New(apperr.Validation, "username and password are required")
	}

	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, apperr.New(apperr.Conflict, "Username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if database.IsDuplicateKey(err) {
			return 0, apperr.Wrap(apperr.Conflict, "Username already exists", err)
		}
		return 0, err
	}

	s.logger.WithField("user_id", user.ID).Info("User registered")
	return user.ID, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "Failed to fetch users", err)
	}
	return users, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.New(apperr.NotFound, "User not found")
	}

	// Removes the user's favorites and the user row atomically.
	return s.repo.DeleteCascade(ctx, id)
}
