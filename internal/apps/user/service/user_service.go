package service

import (
	"errors"
	"strings"

	"eduportal-backend/internal/apps/user/models"
	"eduportal-backend/internal/apps/user/repository"
	"eduportal-backend/pkg/secure"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for a bad email/password pair. The same
// error covers both cases so responses do not leak which one was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrUserNotFound is returned when no user matches the id.
var ErrUserNotFound = errors.New("user not found")

// UserService defines business logic for admin users and authentication
type UserService interface {
	Register(req models.RegisterRequest) (*models.User, error)
	Login(req models.LoginRequest) (*models.LoginResponse, error)
	GetByID(id uuid.UUID) (*models.User, error)
	ListAll() ([]models.User, error)
	Delete(id uuid.UUID) error
}

// userService implements UserService
type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new instance of UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register creates a new admin user with a bcrypt-hashed password
func (s *userService) Register(req models.RegisterRequest) (*models.User, error) {
	hash, err := secure.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = "editor"
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a session token
func (s *userService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.repo.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !secure.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := secure.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

// GetByID retrieves a user by ID
func (s *userService) GetByID(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ListAll retrieves every admin user
func (s *userService) ListAll() ([]models.User, error) {
	return s.repo.ListAll()
}

// Delete removes an admin user
func (s *userService) Delete(id uuid.UUID) error {
	return s.repo.Delete(id)
}
