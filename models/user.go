package models

import "time"

// User represents a registered customer.
type User struct {
	ID           string    `bson:"id" json:"user_id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Mobile       string    `bson:"mobile" json:"mobile"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
