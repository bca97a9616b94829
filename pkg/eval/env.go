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

// Package eval is a small reference bit-vector interpreter used to check
// that a lowered formula remains semantically equivalent to the formula
// it was lowered from. It is not part of the transform's production call
// graph; tests are its only caller.
package eval

import "math/big"

// Env binds symbol names to values: bit-vector symbols to a *big.Int,
// Boolean symbols to a bool, and array symbols to a sparse index->value
// table (an absent index defaults to the zero value, the same default an
// unconstrained model cell would get).
type Env struct {
	Vars   map[string]*big.Int
	Bools  map[string]bool
	Arrays map[string]map[string]*big.Int
}

// NewEnv constructs an empty Env.
func NewEnv() *Env {
	return &Env{
		Vars:   make(map[string]*big.Int),
		Bools:  make(map[string]bool),
		Arrays: make(map[string]map[string]*big.Int),
	}
}

// BindVar binds a bit-vector symbol to a value.
func (e *Env) BindVar(name string, value *big.Int) {
	e.Vars[name] = value
}

// BindBool binds a Boolean symbol to a value.
func (e *Env) BindBool(name string, value bool) {
	e.Bools[name] = value
}

// BindArrayCell sets array[index] = value.
func (e *Env) BindArrayCell(array string, index, value *big.Int) {
	cells, ok := e.Arrays[array]
	if !ok {
		cells = make(map[string]*big.Int)
		e.Arrays[array] = cells
	}

	cells[index.String()] = value
}
