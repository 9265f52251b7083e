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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/dual"
)

// deriv evaluates f'(x) with a dual number, for use as an oracle against the
// hand-written backward helpers.
func deriv(f func(dual.Number) dual.Number, x float64) float64 {
	return f(dual.Number{Real: x, Emag: 1}).Emag
}

func TestInvBack(t *testing.T) {
	for _, x := range []float64{-3, -0.7, 0.2, 1, 4, 50} {
		for _, d := range []float64{1, -0.5, 2.25} {
			want := deriv(dual.Inv, x) * d
			assert.InDelta(t, want, InvBack(x, d), 1e-12, "InvBack(%v, %v)", x, d)
		}
	}
	assert.True(t, math.IsInf(InvBack(0.0, 1.0), -1), "InvBack(0, 1) = %v", InvBack(0.0, 1.0))
}

func TestLogBack(t *testing.T) {
	for _, x := range []float64{0.5, 1, 2, 10} {
		for _, d := range []float64{1, -2, 0.125} {
			assert.InDelta(t, d/x, LogBack(x, d), 1e-12, "LogBack(%v, %v)", x, d)
		}
	}
}

func TestLogBackUsesUnshiftedDerivative(t *testing.T) {
	// The forward pass computes ln(x + EPS) but the backward pass is d/x,
	// not d/(x + EPS). Pin the discrepancy so nobody "fixes" one side
	// without the other: far from zero the two agree, near EPS they do not.
	shifted := func(x float64) float64 {
		return deriv(dual.Log, x+EPS)
	}

	for _, x := range []float64{0.1, 1, 100} {
		assert.InDelta(t, shifted(x), LogBack(x, 1.0), 1e-4, "x = %v", x)
	}

	// At x = 1e-7 the unshifted derivative is 1e7 while the shifted one is
	// below 1e6.
	x := 1e-7
	got := LogBack(x, 1.0)
	want := shifted(x)
	assert.Greater(t, got, 2*want, "LogBack(%v, 1) = %v tracks the shifted derivative %v", x, got, want)
}

func TestReLUBack(t *testing.T) {
	tests := []struct {
		x, d, want float64
	}{
		{2, 3, 3},
		{0.001, -1.5, -1.5},
		{0, 3, 0},
		{-0.001, 3, 0},
		{-100, 3, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ReLUBack(tt.x, tt.d), "ReLUBack(%v, %v)", tt.x, tt.d)
	}

	// float32 instantiation
	assert.Equal(t, float32(3), ReLUBack[float32](2, 3))
	assert.Equal(t, float32(0), ReLUBack[float32](-2, 3))
}
