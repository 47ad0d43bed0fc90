package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"splashshine/database"
	"splashshine/models"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	coll := database.MongoClient.Database("splashshine").Collection("payments")
	repo := &MongoPaymentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new payment document.
func (r *MongoPaymentRepo) Create(payment *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of a payment document.
func (r *MongoPaymentRepo) Update(payment *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	payment.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": payment.ID}, bson.M{"$set": payment})
	if err != nil {
		return fmt.Errorf("failed to update payment with id %s: %w", payment.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("payment with id %s not found", payment.ID)
	}
	return nil
}

// GetByID fetches a payment by ID. Returns (nil, nil) when no payment matches.
func (r *MongoPaymentRepo) GetByID(id string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var payment models.Payment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&payment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment with id %s: %w", id, err)
	}
	return &payment, nil
}

// GetByBookingID fetches the payment attached to a booking.
// Returns (nil, nil) when the booking has no payment yet.
func (r *MongoPaymentRepo) GetByBookingID(bookingID string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var payment models.Payment
	err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&payment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment for booking %s: %w", bookingID, err)
	}
	return &payment, nil
}

// GetAll fetches every payment, newest first.
func (r *MongoPaymentRepo) GetAll() ([]models.Payment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

// Count returns the total number of payments.
func (r *MongoPaymentRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return n, nil
}
