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
package eval

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zaddach/s2e2-stp/pkg/ast"
	"github.com/zaddach/s2e2-stp/pkg/util/hash"
)

func TestBindAckermannVariablesBindsEachSymbolToItsReadValue(t *testing.T) {
	f := ast.NewFactory()
	env := NewEnv()
	env.BindArrayCell("A", big.NewInt(2), big.NewInt(99))

	a := f.CreateArraySymbol("A", 8, 4)
	i := f.CreateBVConst(4, big.NewInt(2))
	sym := f.CreateSymbol("Aarray_1", 8)
	read := f.CreateTerm(ast.READ, 8, a, i)

	reads := []hash.Entry[*ast.Node, *ast.Node]{{Key: read, Value: sym}}
	BindAckermannVariables(reads, env)

	v, ok := env.Vars["Aarray_1"]
	assert.True(t, ok)
	assert.Equal(t, big.NewInt(99), v)
}

func TestBindAckermannVariablesBindsZeroForSymbolBaseWithNoCells(t *testing.T) {
	f := ast.NewFactory()
	env := NewEnv()

	a := f.CreateSymbol("notAnArray", 8) // bit-vector typed, but its Kind is SYMBOL, so lookupArray treats it as an array with no bound cells: zero default
	i := f.CreateBVConst(4, big.NewInt(0))
	sym := f.CreateSymbol("s", 8)
	read := f.CreateTerm(ast.READ, 8, a, i)

	BindAckermannVariables([]hash.Entry[*ast.Node, *ast.Node]{{Key: read, Value: sym}}, env)

	v, ok := env.Vars["s"]
	assert.True(t, ok)
	assert.Equal(t, big.NewInt(0), v)
}

func TestBindAckermannVariablesSkipsUnboundIndex(t *testing.T) {
	f := ast.NewFactory()
	env := NewEnv()

	a := f.CreateArraySymbol("A", 8, 4)
	i := f.CreateSymbol("i", 4) // unbound in env
	sym := f.CreateSymbol("s", 8)
	read := f.CreateTerm(ast.READ, 8, a, i)

	BindAckermannVariables([]hash.Entry[*ast.Node, *ast.Node]{{Key: read, Value: sym}}, env)

	_, ok := env.Vars["s"]
	assert.False(t, ok)
}
