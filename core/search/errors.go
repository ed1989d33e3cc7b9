package search

import "fmt"

// NotFoundError is returned when no entity is registered under the
// requested name.
type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no searchable entity registered with name %q", e.Entity)
}

// InvalidError wraps a filter validation failure.
type InvalidError struct {
	Err error
}

func (e InvalidError) Error() string {
	return fmt.Sprintf("invalid search filter: %s", e.Err)
}

func (e InvalidError) Unwrap() error {
	return e.Err
}
