package service

import (
	"errors"
	"fmt"
)

// ErrQueryExecution marks generated SQL that could not be run. It never
// leaves QueryExecutor; the keyword fallback answers instead.
var ErrQueryExecution = errors.New("query execution failed")

// ModelError is a failed call to the external language model.
type ModelError struct {
	Stage string // classify | generate_sql
	Err   error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("language model failed during %s: %v", e.Stage, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}
