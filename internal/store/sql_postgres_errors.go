package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is what [ErrorClassificator.Classify] makes of a
// driver error: whether WithinTx may retry the transaction, and whether a
// constraint rejected the write.
type ErrorClassification int

const (
	// NonRetryable is the default for anything not recognised.
	NonRetryable ErrorClassification = iota

	// Retryable errors are transient: lost connections, serialization
	// failures and deadlocks. WithinTx runs the transaction again.
	Retryable

	// UniqueViolation is a duplicate key, in practice users.email.
	UniqueViolation

	// IntegrityViolation is any other class 23 constraint failure
	// (not null, foreign key, check).
	IntegrityViolation
)

// retryablePgCodes lists the SQLSTATEs of transient failures.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {}, // 08000
	pgerrcode.ConnectionDoesNotExist: {}, // 08003
	pgerrcode.ConnectionFailure:      {}, // 08006
	pgerrcode.TransactionRollback:    {}, // 40000
	pgerrcode.SerializationFailure:   {}, // 40001
	pgerrcode.DeadlockDetected:       {}, // 40P01
	pgerrcode.CannotConnectNow:       {}, // 57P03
}

// PostgresErrorClassifier implements [ErrorClassificator] for errors coming
// from the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify returns [NonRetryable] for nil and for errors that carry no
// *pgconn.PgError.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if _, ok := retryablePgCodes[pgErr.Code]; ok {
		return Retryable
	}

	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
		return IntegrityViolation
	default:
		return NonRetryable
	}
}
