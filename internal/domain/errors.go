package domain

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrConfiguration signals a misdeployment, not a client fault.
	ErrConfiguration = errors.New("configuration error")
	// ErrAuthentication signals a missing or wrong credential.
	ErrAuthentication = errors.New("authentication error")
	// ErrInvalidInput signals a request rejected by admission.
	ErrInvalidInput = errors.New("invalid input")
	// ErrRetrieval signals a failure reading history from the store.
	ErrRetrieval = errors.New("retrieval error")
	// ErrWrite signals a failure persisting a message.
	ErrWrite = errors.New("write error")
	// ErrCompletion signals a failure calling the completion API.
	ErrCompletion = errors.New("completion error")
)

// DomainError carries a kind, a message safe to show callers and the underlying cause.
type DomainError struct {
	Kind    error
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Is matches the error kind so errors.Is(err, ErrWrite) works through wrapping.
func (e *DomainError) Is(target error) bool {
	return e.Kind == target
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewConfigurationError reports a missing required setting.
func NewConfigurationError(message string) error {
	return &DomainError{Kind: ErrConfiguration, Message: message}
}

// NewAuthenticationError reports a rejected credential.
func NewAuthenticationError(message string) error {
	return &DomainError{Kind: ErrAuthentication, Message: message}
}

// NewInvalidInputError reports a request rejected by admission.
func NewInvalidInputError(message string) error {
	return &DomainError{Kind: ErrInvalidInput, Message: message}
}

// NewRetrievalError wraps a store read failure.
func NewRetrievalError(err error) error {
	return &DomainError{Kind: ErrRetrieval, Message: "failed to fetch conversation history", Err: err}
}

// NewWriteError wraps a store write failure.
func NewWriteError(err error) error {
	return &DomainError{Kind: ErrWrite, Message: "failed to store message", Err: err}
}

// NewCompletionError wraps a completion API failure.
func NewCompletionError(err error) error {
	return &DomainError{Kind: ErrCompletion, Message: "completion request failed", Err: err}
}

func IsConfiguration(err error) bool  { return errors.Is(err, ErrConfiguration) }
func IsAuthentication(err error) bool { return errors.Is(err, ErrAuthentication) }
func IsInvalidInput(err error) bool   { return errors.Is(err, ErrInvalidInput) }
func IsRetrieval(err error) bool      { return errors.Is(err, ErrRetrieval) }
func IsWrite(err error) bool          { return errors.Is(err, ErrWrite) }
func IsCompletion(err error) bool     { return errors.Is(err, ErrCompletion) }
