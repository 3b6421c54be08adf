package models

import "time"

// User is a principal of the record store. Login doubles as the owner name
// of every zone the user creates.
type User struct {
	// UserID is the internal identifier assigned by the store.
	UserID int64 `json:"-"`

	// Login is the unique principal name.
	Login string `json:"login"`

	// Password is the plaintext password sent on register and login. It is
	// never persisted or returned.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash kept by the store.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table backing User.
func (u User) TableName() string {
	return "users"
}
