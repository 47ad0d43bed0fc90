package user

import "splashshine/models"

// RegisterInput is the request body for /register.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// AuthResponse is returned on successful login or registration.
type AuthResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// UserService owns customer accounts and authentication.
type UserService interface {
	Register(in RegisterInput) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	ForgotPassword(email string) error
	ResetPassword(email, code, newPassword string) error
	GetByID(id string) (*models.User, error)
}
