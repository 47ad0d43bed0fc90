package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"splashshine/models"
)

const paymentSessionTTL = 30 * time.Minute

// PaymentSession carries a booking's computed values forward to the payment
// phase so the confirm-payment call does not have to recompute them. It is a
// cache only; the persisted booking remains the source of truth.
type PaymentSession struct {
	BookingID    string                 `json:"booking_id"`
	CustomerName string                 `json:"customer_name"`
	Mobile       string                 `json:"mobile"`
	Service      string                 `json:"service"`
	TotalPrice   float64                `json:"total_price"`
	Settlement   models.SettlementLines `json:"settlement"`
	CreatedAt    time.Time              `json:"created_at"`
}

func paymentSessionKey(bookingID string) string {
	return fmt.Sprintf("payment_session:%s", bookingID)
}

// SavePaymentSession caches a payment session for 30 minutes.
func SavePaymentSession(client *redis.Client, session PaymentSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal payment session: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Set(ctx, paymentSessionKey(session.BookingID), data, paymentSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache payment session: %w", err)
	}
	return nil
}

// GetPaymentSession loads a cached payment session, if one is still live.
func GetPaymentSession(client *redis.Client, bookingID string) (*PaymentSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	data, err := client.Get(ctx, paymentSessionKey(bookingID)).Result()
	if err != nil {
		return nil, fmt.Errorf("payment session not found or expired: %w", err)
	}
	var session PaymentSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse payment session: %w", err)
	}
	return &session, nil
}
