// Copyright 2026 go-minigrad Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package functional provides the higher-order combinators (Map, ZipWith,
// Reduce) and the list helpers built from them. Combinators capture their
// combining function by value at construction time and hold no other state,
// so the returned functions are safe for concurrent use.
package functional

import "github.com/ajroetker/go-minigrad/operators"

// Map returns a function that applies fn to each element of a slice,
// producing a fresh slice of the same length. The input is never mutated.
func Map[T operators.Floats](fn func(T) T) func([]T) []T {
	return func(xs []T) []T {
		out := make([]T, len(xs))
		for i, x := range xs {
			out[i] = fn(x)
		}
		return out
	}
}

// ZipWith returns a function that combines two slices element-wise with fn.
// The result is truncated to the shorter input; length skew is not an error.
func ZipWith[T operators.Floats](fn func(T, T) T) func([]T, []T) []T {
	return func(a, b []T) []T {
		n := min(len(a), len(b))
		out := make([]T, n)
		for i := 0; i < n; i++ {
			out[i] = fn(a[i], b[i])
		}
		return out
	}
}

// Reduce returns a function that folds a slice into a single value starting
// from start.
//
// Elements are consumed first to last with the accumulator threaded as the
// SECOND argument: for [x1, ..., xn] the result is
// fn(xn, fn(x(n-1), ... fn(x1, start))). The argument order is observable
// with non-commutative fn and must not change. An empty slice returns start.
func Reduce[T operators.Floats](fn func(T, T) T, start T) func([]T) T {
	return func(xs []T) T {
		acc := start
		for _, x := range xs {
			acc = fn(x, acc)
		}
		return acc
	}
}

// NegList negates each element of xs.
func NegList[T operators.Floats](xs []T) []T {
	return Map(operators.Neg[T])(xs)
}

// AddLists adds the elements of a and b pairwise.
func AddLists[T operators.Floats](a, b []T) []T {
	return ZipWith(operators.Add[T])(a, b)
}

// Sum adds up the elements of xs. Sum of an empty slice is 0.
func Sum[T operators.Floats](xs []T) T {
	return Reduce(operators.Add[T], 0)(xs)
}

// Prod multiplies the elements of xs. Prod of an empty slice is 1.
func Prod[T operators.Floats](xs []T) T {
	return Reduce(operators.Mul[T], 1)(xs)
}
