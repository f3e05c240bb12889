package pqrs

import "fmt"

// GenerationError wraps a failure of the external text-generation
// provider. It is a displayable, recoverable error: the caller keeps
// the session alive and offers a retry.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating reply: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
