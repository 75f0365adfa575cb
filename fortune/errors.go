package fortune

import "fmt"

// ErrNoThoughts is the message returned for a missing or blank request.
const ErrNoThoughts = "No thoughts provided"

// ValidationError reports client input that cannot produce a fortune.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// GenerationError wraps any failure while producing a fortune upstream.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
