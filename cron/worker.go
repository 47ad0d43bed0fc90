package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"splashshine/config"
	"splashshine/models"
	"splashshine/services/pricing"
	"splashshine/utils"
)

const TypeDueReminderSend = "reminder:due_payment"

// DueReminderPayload is the task payload for a due-payment reminder.
type DueReminderPayload struct {
	BookingID    string  `json:"booking_id"`
	CustomerName string  `json:"customer_name"`
	Mobile       string  `json:"mobile"`
	DueAmount    float64 `json:"due_amount"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderScheduler enqueues due-payment reminders onto the async queue.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates a scheduler backed by the reminder queue.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleDueReminder queues a reminder for the remaining 50%, delivered a day
// after the advance is approved.
func (s *ReminderScheduler) ScheduleDueReminder(p *models.Payment) error {
	payload, err := json.Marshal(DueReminderPayload{
		BookingID:    p.BookingID,
		CustomerName: p.CustomerName,
		Mobile:       p.Mobile,
		DueAmount:    pricing.Round2(p.TotalAmount - p.AdvanceAmount),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeDueReminderSend, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessIn(24*time.Hour), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue due reminder: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker() {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDueReminderSend, handleDueReminderTask)

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

func handleDueReminderTask(ctx context.Context, t *asynq.Task) error {
	var payload DueReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to parse reminder payload: %w", err)
	}

	msg := fmt.Sprintf("Hi %s, a reminder from Splash Shine: the balance of Rs. %.2f for booking %s is due on service completion.",
		payload.CustomerName, payload.DueAmount, payload.BookingID)
	return utils.SendCustomerMessage(payload.Mobile, msg)
}
