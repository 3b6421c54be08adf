package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification tells [DB.WithinTransaction] whether a failed
// transaction is worth another attempt.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] on top of the SQLSTATE
// codes reported by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that do not come from the
// server are never retried.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	return classifyPostgresCode(postgresError(err))
}

// IsUniqueViolation implements [ErrorClassificator].
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}

// classifyPostgresCode retries lost connections, rolled back transactions
// (serialization failures and deadlocks included), lock timeouts hit while
// two saves bump the same zone sequence, and a server that is still starting.
func classifyPostgresCode(code string) ErrorClassification {
	switch {
	case code == "":
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.LockNotAvailable,
		code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}
