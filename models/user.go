package models

import "time"

// User represents a platform user. The booking flow only needs the
// identifiers and the dorm label; the remaining fields back the
// authentication endpoints.
type User struct {
	ID       string `bson:"_id,omitempty" json:"_id"`
	UserID   string `bson:"user_id" json:"user_id"`
	UserName string `bson:"user_name" json:"user_name"`
	Dorm     string `bson:"dorm" json:"dorm"`

	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash,omitempty" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt,omitzero" json:"createdAt,omitzero"`
	UpdatedAt    time.Time `bson:"updatedAt,omitzero" json:"updatedAt,omitzero"`
}
