package userRepo

import "splashshine/models"

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Count() (int64, error)
}
