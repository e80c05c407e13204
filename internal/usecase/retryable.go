package usecase

import (
	"fmt"

	"huddle/internal/errors"
)

// retryableError marks a failure that a message broker should redeliver
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps err as retryable. A nil err stays nil.
func NewRetryableError(err error) error {
	if err == nil {
		return nil
	}

	return &retryableError{err: err}
}

// IsRetryable reports whether err or anything it wraps is retryable
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}
