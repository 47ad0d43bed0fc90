package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"splashshine/services/user"
)

// RegisterHandler handles customer registration.
func RegisterHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req user.RegisterInput
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid registration request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.Register(req)
		if err != nil {
			logger.Error("User registration failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Registration failed: " + err.Error()})
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// LoginHandler handles customer login and returns a session token.
func LoginHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid login request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.Authenticate(req.Email, req.Password)
		if err != nil {
			logger.Error("Login failed", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login failed: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ForgotPasswordHandler issues a 6-digit reset code. The response is the same
// whether or not the email is registered.
func ForgotPasswordHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}

		if err := svc.ForgotPassword(req.Email); err != nil {
			logger.Error("Failed to initiate password reset", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate password reset"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "If the email is registered, a reset code has been sent"})
	}
}

// ResetPasswordHandler verifies the reset code and sets the new password.
func ResetPasswordHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Email       string `json:"email"`
			Code        string `json:"code"`
			NewPassword string `json:"new_password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.ResetPassword(req.Email, req.Code, req.NewPassword); err != nil {
			logger.Warn("Password reset failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
	}
}
