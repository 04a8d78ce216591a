package userRepo

import "barberly/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns (nil, nil) when
	// no record matches.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns (nil, nil)
	// when no record matches.
	GetByEmail(email string) (*models.User, error)
	// GetByTokenHash retrieves the user holding the given auth token hash.
	GetByTokenHash(tokenHash string) (*models.User, error)
	// Create inserts a new user record and fills in its ID.
	Create(user *models.User) error
	// UpdateTokenHash stores the hash of the user's active auth token.
	UpdateTokenHash(id, tokenHash string) error
}
