package userRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"splashshine/models"
)

// GetByID fetches a user by ID. Returns (nil, nil) when no user matches.
func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) when no user matches.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &user, nil
}

// GetAll fetches every user, newest first.
func (r *MongoUserRepo) GetAll() ([]models.User, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// Count returns the total number of users.
func (r *MongoUserRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
