// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package funcs provides the public API for the sequence combinators of minitorch.
//
// Combinators:
//   - Map: apply a function to every element
//   - ZipWith: combine two sequences pairwise, truncating to the shorter
//   - ZipWithExact: ZipWith that rejects sequences of different length
//   - Reduce: left fold calling fn(element, accumulator)
//   - MapParallel: Map computed by a bounded set of goroutines
//
// List operations: NegList, AddLists, Sum, Prod.
//
// Example:
//
//	funcs.Sum([]float64{1, 2, 3})                         // 6
//	funcs.AddLists([]float64{1, 2, 3}, []float64{10, 20}) // [11 22]
//	funcs.Reduce([]float64{1, 2, 3}, func(e, acc float64) float64 {
//	    return e - acc
//	}, 0) // 2
package funcs

import (
	"context"

	"github.com/born-ml/minitorch/internal/funcs"
	"github.com/born-ml/minitorch/internal/parallel"
	"github.com/born-ml/minitorch/operators"
)

// ErrLengthMismatch is returned by ZipWithExact for sequences of different length.
var ErrLengthMismatch = funcs.ErrLengthMismatch

// ParallelConfig controls MapParallel.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns a config using all CPUs.
func DefaultParallelConfig() ParallelConfig { return parallel.DefaultConfig() }

// Map applies fn to each element of seq.
func Map[T, U any](fn func(T) U, seq []T) []U { return funcs.Map(fn, seq) }

// ZipWith applies fn pairwise, stopping at the shorter sequence.
func ZipWith[A, B, C any](a []A, b []B, fn func(A, B) C) []C { return funcs.ZipWith(a, b, fn) }

// ZipWithExact applies fn pairwise and fails if the lengths differ.
func ZipWithExact[A, B, C any](a []A, b []B, fn func(A, B) C) ([]C, error) {
	return funcs.ZipWithExact(a, b, fn)
}

// Reduce folds seq with acc = fn(element, acc), starting at init.
func Reduce[T, A any](seq []T, fn func(T, A) A, init A) A { return funcs.Reduce(seq, fn, init) }

// MapParallel is Map computed concurrently. fn must be safe for concurrent use.
func MapParallel[T, U any](ctx context.Context, fn func(T) U, seq []T, cfg ParallelConfig) ([]U, error) {
	return funcs.MapParallel(ctx, fn, seq, cfg)
}

// NegList negates every element.
func NegList[T operators.Float](seq []T) []T { return funcs.NegList(seq) }

// AddLists adds two sequences elementwise, truncating to the shorter.
func AddLists[T operators.Float](a, b []T) []T { return funcs.AddLists(a, b) }

// Sum returns the sum of seq, 0 when empty.
func Sum[T operators.Float](seq []T) T { return funcs.Sum(seq) }

// Prod returns the product of seq, 1 when empty.
func Prod[T operators.Float](seq []T) T { return funcs.Prod(seq) }
