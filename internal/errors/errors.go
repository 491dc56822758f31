package errors

import (
	stderrors "errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeNotFound     ErrorType = "NOT_FOUND"
	ErrTypeInvalidInput ErrorType = "INVALID_INPUT"
	ErrTypePersistence  ErrorType = "PERSISTENCE"
	ErrTypeInternal     ErrorType = "INTERNAL"
)

type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

// Details is the cause message, empty when there is no cause.
func (e *DomainError) Details() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func NotFound(message string, err error) *DomainError {
	return New(ErrTypeNotFound, message, err)
}

// Validation marks bad or missing client input.
func Validation(message string, err error) *DomainError {
	return New(ErrTypeInvalidInput, message, err)
}

// Persistence marks a failure of the backing store: unreachable engine,
// unexpected constraint violation or timeout.
func Persistence(message string, err error) *DomainError {
	return New(ErrTypePersistence, message, err)
}

// Internal wraps a failure that carries no domain type of its own.
func Internal(message string, err error) *DomainError {
	return New(ErrTypeInternal, message, err)
}

// As finds the first DomainError in err's chain.
func As(err error) (*DomainError, bool) {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// TypeOf returns the type of the outermost DomainError in err's chain, or
// ErrTypeInternal when there is none.
func TypeOf(err error) ErrorType {
	if de, ok := As(err); ok {
		return de.Type
	}
	return ErrTypeInternal
}

func IsNotFound(err error) bool {
	return TypeOf(err) == ErrTypeNotFound
}

func IsValidation(err error) bool {
	return TypeOf(err) == ErrTypeInvalidInput
}

func IsPersistence(err error) bool {
	return TypeOf(err) == ErrTypePersistence
}
