// Package funcs provides higher-order functions over sequences and the
// list operations built from them.
//
// None of the functions mutate their inputs; results are freshly allocated.
package funcs

import (
	"context"
	"errors"
	"fmt"

	"github.com/born-ml/minitorch/internal/operators"
	"github.com/born-ml/minitorch/internal/parallel"
)

// ErrLengthMismatch is returned by ZipWithExact when the sequences differ in length.
var ErrLengthMismatch = errors.New("sequence length mismatch")

// Map applies fn to each element of seq, in order.
func Map[T, U any](fn func(T) U, seq []T) []U {
	out := make([]U, len(seq))
	for i, v := range seq {
		out[i] = fn(v)
	}
	return out
}

// ZipWith applies fn pairwise to a and b in lockstep.
// The result has the length of the shorter input; trailing elements of the
// longer one are dropped.
func ZipWith[A, B, C any](a []A, b []B, fn func(A, B) C) []C {
	n := min(len(a), len(b))
	out := make([]C, n)
	for i := range n {
		out[i] = fn(a[i], b[i])
	}
	return out
}

// ZipWithExact is ZipWith for inputs that must have equal length.
func ZipWithExact[A, B, C any](a []A, b []B, fn func(A, B) C) ([]C, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	return ZipWith(a, b, fn), nil
}

// Reduce folds seq from the left starting at init.
//
// For each element e the accumulator becomes fn(e, acc): the element is the
// first argument. An empty seq returns init without calling fn.
func Reduce[T, A any](seq []T, fn func(T, A) A, init A) A {
	acc := init
	for _, v := range seq {
		acc = fn(v, acc)
	}
	return acc
}

// MapParallel computes the same result as Map, splitting seq into chunks
// processed by up to cfg.NumWorkers goroutines. fn must be safe for
// concurrent use.
func MapParallel[T, U any](ctx context.Context, fn func(T) U, seq []T, cfg parallel.Config) ([]U, error) {
	out := make([]U, len(seq))
	err := parallel.For(ctx, len(seq), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = fn(seq[i])
		}
	}, cfg)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// NegList negates every element.
func NegList[T operators.Float](seq []T) []T {
	return Map(operators.Neg[T], seq)
}

// AddLists adds a and b elementwise, truncating to the shorter length.
func AddLists[T operators.Float](a, b []T) []T {
	return ZipWith(a, b, operators.Add[T])
}

// Sum returns the sum of seq, 0 when empty.
func Sum[T operators.Float](seq []T) T {
	return Reduce(seq, operators.Add[T], 0)
}

// Prod returns the product of seq, 1 when empty.
func Prod[T operators.Float](seq []T) T {
	return Reduce(seq, operators.Mul[T], 1)
}
