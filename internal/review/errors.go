package review

import "errors"

// Sentinel errors for the review submission surface. Callers match with
// errors.Is; everything else wraps one of these.
var (
	// ErrInvalidInput reports a malformed submission (bad quality rating,
	// missing card identifier). Raised before any lock or state is touched.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound reports a card without an initialized review state, or an
	// unknown learner profile. Fatal to the single request; never retried.
	ErrNotFound = errors.New("not found")

	// ErrTransactionFailure reports a failure inside the transactional write
	// path, including a timed-out lock acquisition. Nothing was committed.
	ErrTransactionFailure = errors.New("transaction failure")
)
