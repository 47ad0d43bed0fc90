package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
)

const resetCodeTTL = 10 * time.Minute

// generateResetCode generates a secure random numeric code of the specified length.
func generateResetCode(length int) (string, error) {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}

// SendCustomerMessage delivers a message to the given phone number.
// Replace the body with an actual WhatsApp/SMS gateway integration.
func SendCustomerMessage(phoneNumber, message string) error {
	GetLogger().Sugar().Infof("Sending message to %s: %s", phoneNumber, message)
	return nil
}

// InitiatePasswordReset generates a 6-digit reset code, stores it in Redis with
// a 10-minute TTL keyed by email, and sends it to the customer's phone.
func InitiatePasswordReset(email, phoneNumber string) error {
	code, err := generateResetCode(6)
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	ctx := context.Background()
	client := GetOTPCacheClient()
	key := fmt.Sprintf("reset:%s", email)
	if err := client.Set(ctx, key, code, resetCodeTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache reset code", zap.Error(err))
		return fmt.Errorf("failed to initiate password reset")
	}

	msg := fmt.Sprintf("Your Splash Shine password reset code is %s. It expires in 10 minutes.", code)
	if err := SendCustomerMessage(phoneNumber, msg); err != nil {
		return fmt.Errorf("failed to send reset code: %w", err)
	}
	return nil
}

// VerifyPasswordResetCode checks the provided code against the stored one and
// deletes it on success so a code can only be used once.
func VerifyPasswordResetCode(email, providedCode string) error {
	ctx := context.Background()
	client := GetOTPCacheClient()
	key := fmt.Sprintf("reset:%s", email)

	stored, err := client.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("reset code expired or not found")
	}
	if stored != providedCode {
		return fmt.Errorf("invalid reset code")
	}
	if err := client.Del(ctx, key).Err(); err != nil {
		GetLogger().Warn("Failed to delete used reset code", zap.Error(err))
	}
	return nil
}
