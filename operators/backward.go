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

// Derivative-weighted helpers for reverse-mode differentiation. Each computes
// d * f'(x) for the matching forward operator, where d is the gradient
// arriving from downstream.

// LogBack computes d * f'(x) for f = Log.
//
// The derivative is taken as 1/x via Inv. The forward pass applies the EPS
// offset but the backward pass does not, so the two diverge for |x| near EPS.
func LogBack[T Floats](x, d T) T { return Mul(Inv(x), d) }

// InvBack computes d * f'(x) for f = Inv, where f'(x) = -1/x².
func InvBack[T Floats](x, d T) T {
	i := Inv(x)
	return Mul(Neg(Mul(i, i)), d)
}

// ReLUBack computes d * f'(x) for f = ReLU: d where x > 0, else 0.
// ReLU is treated as non-differentiable at 0 and takes the zero branch there.
func ReLUBack[T Floats](x, d T) T {
	if x > 0 {
		return d
	}
	return 0
}
