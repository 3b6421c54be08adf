package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the requested login.
	ErrNoUserWasFound = errors.New("no user was found")

	ErrZoneNotFound   = errors.New("zone was not found")
	ErrRecordNotFound = errors.New("record was not found")
	ErrShareNotFound  = errors.New("share was not found")

	// ErrShareAlreadyExists is returned when a zone already has a share.
	ErrShareAlreadyExists = errors.New("zone is already shared")

	// ErrVersionConflict is returned when the change tag supplied with a
	// record does not match the stored one: somebody saved the record since
	// the caller last fetched it.
	ErrVersionConflict = errors.New("record change tag conflict")

	// ErrRecordTypeMismatch is returned when a save would change the type of
	// an existing record.
	ErrRecordTypeMismatch = errors.New("record type mismatch")

	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
