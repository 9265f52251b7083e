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

// Package operators provides the scalar mathematical prelude used throughout
// the library: elementary arithmetic and comparison operators, numerically
// stable activations, and the derivative-weighted backward helpers consumed
// by the reverse-mode autodiff engine.
//
// All functions are pure, generic over float32 and float64, and follow
// IEEE-754 semantics for out-of-domain inputs:
//   - Inv(0) = +Inf (float division never traps)
//   - Log(0) = ln(EPS) ≈ -13.8155
//   - Log(x) = NaN for x <= -EPS
//
// # Example Usage
//
//	y := operators.Sigmoid(0.0)        // 0.5
//	g := operators.ReLUBack(2.0, 0.25) // 0.25
//
// Comparison operators (Lt, Eq) return 1 or 0 rather than a bool so their
// results compose arithmetically with other operator outputs.
package operators
