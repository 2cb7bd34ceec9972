// Package operators provides the scalar operators of the minitorch kernel.
//
// Every operator is a pure function of one or two scalars. Forward operators
// that are undefined somewhere in their domain (Log, Inv) return a *DomainError
// there instead of producing an IEEE-754 infinity. Backward functions take the
// forward input and the upstream gradient and return the local gradient
// contribution.
package operators

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is a constraint for scalar types supported by the kernel.
//
// The constraint is exact (no ~) so the float32 path can be dispatched to math32.
type Float interface {
	float32 | float64
}

// Unary is an operator of one scalar.
type Unary[T Float] func(a T) T

// Binary is an operator of two scalars.
type Binary[T Float] func(a, b T) T

// closeTolerance is the absolute tolerance used by IsClose.
const closeTolerance = 1e-2

// Mul returns a * b.
func Mul[T Float](a, b T) T {
	return a * b
}

// ID returns a unchanged.
func ID[T Float](a T) T {
	return a
}

// Add returns a + b.
func Add[T Float](a, b T) T {
	return a + b
}

// Neg returns -a.
func Neg[T Float](a T) T {
	return -a
}

// LT reports whether a < b.
func LT[T Float](a, b T) bool {
	return a < b
}

// EQ reports whether a == b, using exact floating-point equality.
func EQ[T Float](a, b T) bool {
	return a == b
}

// Max returns a if a > b, otherwise b. Ties (and NaN comparisons) return b.
func Max[T Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// IsClose reports whether |a - b| < 1e-2.
func IsClose[T Float](a, b T) bool {
	return Max(a-b, b-a) < closeTolerance
}

// exp dispatches e^a to math32 for float32 and to math for float64.
func exp[T Float](a T) T {
	if v, ok := any(a).(float32); ok {
		return T(math32.Exp(v))
	}
	return T(math.Exp(float64(a)))
}

// log dispatches ln(a) the same way as exp. No domain check.
func log[T Float](a T) T {
	if v, ok := any(a).(float32); ok {
		return T(math32.Log(v))
	}
	return T(math.Log(float64(a)))
}
