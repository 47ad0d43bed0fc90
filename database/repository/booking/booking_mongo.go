package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.MongoClient.Database("splashshine").Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "mobile", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID fetches a booking by ID. Returns (nil, nil) when no booking matches.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// GetAll fetches every booking, newest first.
func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// UpdateStatus sets the workflow status of a booking.
func (r *MongoBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}

// Count returns the total number of bookings.
func (r *MongoBookingRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return n, nil
}
