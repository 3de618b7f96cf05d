package distributions

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound = errors.New("Project not found")
	ErrInvalidPeriod   = errors.New("Invalid payout period")
)

// PersistenceError means the durable-write step failed after a successful
// calculation. Retryable: the caller can re-invoke persist with the already
// computed result; same-period upserts overwrite rather than duplicate.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist distributions: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
