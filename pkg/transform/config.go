// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package transform lowers signed bit-vector arithmetic and array
// read/write into pure unsigned bit-vector terms.
package transform

// Config collects the read-only flags that change how term rebuilding
// behaves. A zero Config performs eager Ackermannization with no
// division-by-zero guard and no post-condition check, which is the
// cheapest, least surprising default for a library caller that hasn't
// opted into anything.
type Config struct {
	// DivisionByZeroReturnsOne makes every division/modulus (signed or
	// unsigned) whose divisor evaluates to zero at solve time return the
	// width-matched constant 1, applied after signed forms have already
	// been lowered to unsigned ones.
	DivisionByZeroReturnsOne bool
	// ArrayReadRefinement defers ITE-chain construction for array reads to
	// a separate refinement loop: a read lowers to a bare Ackermann
	// variable here, nothing more.
	ArrayReadRefinement bool
	// Debug runs the post-condition checker after every top-level
	// transform and panics with a diagnostic on violation.
	Debug bool
}
