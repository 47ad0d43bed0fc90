package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "splashshine/database/repository/user"
	"splashshine/models"
	"splashshine/utils"
)

const tokenDuration = 72 * time.Hour

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a new customer account and logs them in.
func (s *DefaultUserService) Register(in RegisterInput) (*AuthResponse, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	existing, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Mobile:       in.Mobile,
		PasswordHash: string(hashed),
	}
	if err := s.Repo.Create(u); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{UserID: u.ID, Name: u.Name, Email: u.Email, Token: token}, nil
}

// Authenticate verifies credentials and issues a JWT.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if u == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{UserID: u.ID, Name: u.Name, Email: u.Email, Token: token}, nil
}

// GetByID loads a user by ID.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	return u, nil
}
