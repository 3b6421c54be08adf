package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
)

// Record store errors.
var (
	// ErrNoPrincipal is returned when the request context carries no
	// authenticated login.
	ErrNoPrincipal = errors.New("no authenticated principal")

	// ErrZoneNotFound is returned for zones that do not exist or that the
	// principal cannot see in the requested scope.
	ErrZoneNotFound = errors.New("zone not found in scope")

	// ErrInvalidChangeToken is returned for change tokens that were forged,
	// corrupted or minted for another zone.
	ErrInvalidChangeToken = errors.New("invalid change token")

	// ErrContainerMismatch is returned when a request or share metadata
	// names another container than the one the server hosts.
	ErrContainerMismatch = errors.New("container mismatch")

	// ErrInvalidScopeOperation is returned for writes the scope does not
	// allow, such as creating zones in the shared scope.
	ErrInvalidScopeOperation = errors.New("operation not allowed in scope")

	ErrValidation = errors.New("validation failed")
)
