// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key used to store the user identifier in the context.
	//
	//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
	UserIDCtxKey = contextKey("userID")

	// LoginCtxKey is the key used to store the principal login in the context.
	// The login is the owner name of every zone the principal creates.
	LoginCtxKey = contextKey("login")
)

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetLoginFromContext retrieves the principal login from the context.
// An empty login is reported as missing.
func GetLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(LoginCtxKey).(string)
	return login, ok && login != ""
}

// WithPrincipal returns a copy of ctx carrying both the user ID and the login.
func WithPrincipal(ctx context.Context, userID int64, login string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, LoginCtxKey, login)
}
