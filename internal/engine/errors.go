package engine

import (
	"errors"
	"fmt"
)

// ErrClientNotFound is returned when a mission names a client that does not exist.
var ErrClientNotFound = errors.New("client not found")

// ValidationError reports an invalid field on mission or client input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
