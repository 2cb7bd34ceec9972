package operators

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is matched by every *DomainError via errors.Is.
	ErrDomain = errors.New("input outside operator domain")

	// ErrUnknownOperator is returned by Lookup for unregistered names.
	ErrUnknownOperator = errors.New("unknown operator")
)

// DomainError reports an operator evaluated where it is mathematically undefined.
type DomainError struct {
	Op    string  // Operator name, e.g. "log".
	Input float64 // Offending input, widened to float64.
}

// Error implements error.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v: %g", e.Op, ErrDomain, e.Input)
}

// Unwrap returns ErrDomain.
func (e *DomainError) Unwrap() error {
	return ErrDomain
}

func domainError[T Float](op string, input T) error {
	return &DomainError{Op: op, Input: float64(input)}
}
