// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package operators provides the public API for the scalar operators of minitorch.
//
// Forward operators:
//   - Arithmetic: Mul, Add, Neg, ID
//   - Comparison: LT, EQ, Max, IsClose
//   - Activation and math: Sigmoid, ReLU, Exp, Log, Inv
//
// Backward operators take the forward input and the upstream gradient:
//   - LogBack, InvBack, ReLUBack, ExpBack, SigmoidBack
//
// Log, Inv, LogBack and InvBack return a *DomainError where the operation is
// undefined.
//
// Example:
//
//	s := operators.Sigmoid(0.0)         // 0.5
//	g := operators.ReLUBack(-1.0, 5.0)  // 0
//	if _, err := operators.Log(0.0); errors.Is(err, operators.ErrDomain) {
//	    // handle
//	}
package operators

import (
	"github.com/born-ml/minitorch/internal/operators"
)

// Float is a constraint for supported scalar types: float32 and float64.
type Float = operators.Float

// DomainError reports an operator evaluated outside its domain.
type DomainError = operators.DomainError

// ErrDomain is matched by every *DomainError via errors.Is.
var ErrDomain = operators.ErrDomain

// Mul returns a * b.
func Mul[T Float](a, b T) T { return operators.Mul(a, b) }

// ID returns a unchanged.
func ID[T Float](a T) T { return operators.ID(a) }

// Add returns a + b.
func Add[T Float](a, b T) T { return operators.Add(a, b) }

// Neg returns -a.
func Neg[T Float](a T) T { return operators.Neg(a) }

// LT reports whether a < b.
func LT[T Float](a, b T) bool { return operators.LT(a, b) }

// EQ reports whether a == b exactly.
func EQ[T Float](a, b T) bool { return operators.EQ(a, b) }

// Max returns a if a > b, otherwise b.
func Max[T Float](a, b T) T { return operators.Max(a, b) }

// IsClose reports whether |a - b| < 1e-2.
func IsClose[T Float](a, b T) bool { return operators.IsClose(a, b) }

// Sigmoid returns the logistic function of a.
func Sigmoid[T Float](a T) T { return operators.Sigmoid(a) }

// ReLU returns max(0, a).
func ReLU[T Float](a T) T { return operators.ReLU(a) }

// Exp returns e^a.
func Exp[T Float](a T) T { return operators.Exp(a) }

// Log returns ln(a), or a *DomainError if a ≤ 0.
func Log[T Float](a T) (T, error) { return operators.Log(a) }

// Inv returns 1/a, or a *DomainError if a == 0.
func Inv[T Float](a T) (T, error) { return operators.Inv(a) }

// LogBack returns d / x, or a *DomainError if x == 0.
func LogBack[T Float](x, d T) (T, error) { return operators.LogBack(x, d) }

// InvBack returns -d / x², or a *DomainError if x == 0.
func InvBack[T Float](x, d T) (T, error) { return operators.InvBack(x, d) }

// ReLUBack returns d if x ≥ 0, otherwise 0.
func ReLUBack[T Float](x, d T) T { return operators.ReLUBack(x, d) }

// ExpBack returns d * e^x.
func ExpBack[T Float](x, d T) T { return operators.ExpBack(x, d) }

// SigmoidBack returns d * σ(x) * (1 - σ(x)).
func SigmoidBack[T Float](x, d T) T { return operators.SigmoidBack(x, d) }
