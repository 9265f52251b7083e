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

package operators

import "math"

// Floats is the set of floating-point types the prelude operates on.
type Floats interface {
	float32 | float64
}

// EPS offsets logarithm arguments so Log stays finite at zero.
const EPS = 1e-6

// Mul computes f(x, y) = x * y.
func Mul[T Floats](x, y T) T { return x * y }

// Identity computes f(x) = x.
func Identity[T Floats](x T) T { return x }

// Add computes f(x, y) = x + y.
func Add[T Floats](x, y T) T { return x + y }

// Neg computes f(x) = -x.
func Neg[T Floats](x T) T { return -x }

// Lt returns 1 if x < y, else 0.
func Lt[T Floats](x, y T) T {
	if x < y {
		return 1
	}
	return 0
}

// Eq returns 1 if x == y, else 0.
func Eq[T Floats](x, y T) T {
	if x == y {
		return 1
	}
	return 0
}

// Max returns x if x > y, else y.
func Max[T Floats](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// IsClose reports whether |x - y| < 0.01.
func IsClose[T Floats](x, y T) bool {
	d := x - y
	if d < 0 {
		d = -d
	}
	return d < 0.01
}

// Sigmoid computes the logistic function 1 / (1 + e^(-x)).
//
// Calculated as 1/(1+exp(-x)) for x >= 0 and exp(x)/(1+exp(x)) for x < 0.
// The branches are algebraically identical; choosing one per sign keeps the
// exponential's argument non-positive so it never overflows.
func Sigmoid[T Floats](x T) T {
	if x >= 0 {
		return T(1 / (1 + math.Exp(float64(Neg(x)))))
	}
	e := math.Exp(float64(x))
	return T(e / (1 + e))
}

// ReLU computes f(x) = x if x > 0, else 0.
func ReLU[T Floats](x T) T { return Max(x, 0) }

// Log computes ln(x + EPS).
//
// Special cases follow math.Log:
//   - Log(0) = ln(EPS) ≈ -13.8155
//   - Log(x) = NaN for x <= -EPS
func Log[T Floats](x T) T { return T(math.Log(float64(x) + EPS)) }

// Exp computes e^x.
func Exp[T Floats](x T) T { return T(math.Exp(float64(x))) }

// Inv computes f(x) = 1 / x.
//
// Inv(0) = +Inf per IEEE-754 float division; no error is raised.
func Inv[T Floats](x T) T { return 1 / x }
