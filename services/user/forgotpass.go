package user

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"splashshine/utils"
)

// ForgotPassword initiates a password reset by sending a 6-digit code to the
// account's mobile number. It does not reveal whether the email exists.
func (s *DefaultUserService) ForgotPassword(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("ForgotPassword: failed to fetch user", zap.Error(err))
		return fmt.Errorf("failed to start password reset, please try again")
	}
	if u == nil {
		// Respond as if a code was sent so the endpoint cannot be used to
		// probe for registered emails.
		return nil
	}

	return utils.InitiatePasswordReset(u.Email, u.Mobile)
}

// ResetPassword verifies the reset code and sets a new password.
func (s *DefaultUserService) ResetPassword(email, code, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(newPassword) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("ResetPassword: failed to fetch user", zap.Error(err))
		return fmt.Errorf("failed to reset password, please try again")
	}
	if u == nil {
		return fmt.Errorf("invalid reset code")
	}

	if err := utils.VerifyPasswordResetCode(u.Email, code); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hashed)
	if err := s.Repo.Update(u); err != nil {
		utils.GetLogger().Error("ResetPassword: failed to update user", zap.Error(err))
		return fmt.Errorf("failed to reset password, please try again")
	}
	return nil
}
