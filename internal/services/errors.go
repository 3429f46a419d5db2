package services

import "errors"

// Terminal errors surfaced to handlers. Store failures are returned
// as-is and mapped to a generic 500 at the boundary.
var (
	ErrNotFound                = errors.New("not found or expired")
	ErrPairCodeNotFound        = errors.New("pair code not found or expired")
	ErrRoomNotFound            = errors.New("room not found or expired")
	ErrCodeGenerationExhausted = errors.New("code generation exhausted")
	ErrTextTooLarge            = errors.New("text exceeds maximum size")
)

// ValidationError marks client input the user has to correct.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
