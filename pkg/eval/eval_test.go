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
	"github.com/stretchr/testify/require"
	"github.com/zaddach/s2e2-stp/pkg/ast"
)

func TestEvalSignedDivRemModMatchSMTLIBSemantics(t *testing.T) {
	f := ast.NewFactory()
	env := NewEnv()

	a := f.CreateBVConst(4, big.NewInt(0b1110)) // -2
	b := f.CreateBVConst(4, big.NewInt(0b0011)) // 3

	div, err := Eval(f.CreateTerm(ast.SBVDIV, 4, a, b), env)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0), div)

	rem, err := Eval(f.CreateTerm(ast.SBVREM, 4, a, b), env)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0b1110), rem)

	mod, err := Eval(f.CreateTerm(ast.SBVMOD, 4, a, b), env)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), mod)
}

func TestEvalSignedDivisionByZeroErrors(t *testing.T) {
	f := ast.NewFactory()
	env := NewEnv()
	a := f.CreateSymbol("a", 4)
	zero := f.CreateZeroConst(4)
	env.BindVar("a", big.NewInt(5))

	_, err := Eval(f.CreateTerm(ast.SBVDIV, 4, a, zero), env)
	assert.Error(t, err)
}

func TestEvalUnboundSymbolErrors(t *testing.T) {
	f := ast.NewFactory()
	_, err := Eval(f.CreateSymbol("x", 4), NewEnv())
	assert.Error(t, err)
}

func TestEvalExtractAndConcatRoundTrip(t *testing.T) {
	f := ast.NewFactory()
	env := NewEnv()
	x := f.CreateBVConst(8, big.NewInt(0b10110100))

	hi := f.CreateTerm(ast.BVEXTRACT, 4, x, f.CreateBVConst(32, big.NewInt(7)), f.CreateBVConst(32, big.NewInt(4)))
	lo := f.CreateTerm(ast.BVEXTRACT, 4, x, f.CreateBVConst(32, big.NewInt(3)), f.CreateBVConst(32, big.NewInt(0)))

	hiVal, err := Eval(hi, env)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0b1011), hiVal)

	loVal, err := Eval(lo, env)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0b0100), loVal)

	concat := f.CreateTerm(ast.BVCONCAT, 8, hi, lo)
	concatVal, err := Eval(concat, env)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0b10110100), concatVal)
}

func TestEvalTermITEShortCircuitsAroundDivisionByZero(t *testing.T) {
	f := ast.NewFactory()
	env := NewEnv()
	x := f.CreateSymbol("x", 4)
	zero := f.CreateZeroConst(4)
	env.BindVar("x", big.NewInt(6))

	cond := f.CreateNode(ast.EQ, x, zero)
	ite := f.CreateTerm(ast.TERM_ITE, 4, cond, f.CreateOneConst(4), f.CreateTerm(ast.BVDIV, 4, x, zero))

	// x=6: cond is false, so the BVDIV-by-zero branch is selected and errors.
	_, err := Eval(ite, env)
	assert.Error(t, err)

	// x=0: cond is true, so only the safe branch is evaluated; the
	// BVDIV-by-zero branch must never run even though it shares the env.
	env.BindVar("x", big.NewInt(0))
	v, err := Eval(ite, env)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), v)
}

func TestEvalBoolConnectives(t *testing.T) {
	f := ast.NewFactory()
	env := NewEnv()
	env.BindBool("p", true)
	env.BindBool("q", false)
	p := f.CreateBooleanSymbol("p")
	q := f.CreateBooleanSymbol("q")

	and, err := EvalBool(f.CreateNode(ast.AND, p, q), env)
	require.NoError(t, err)
	assert.False(t, and)

	xor, err := EvalBool(f.CreateNode(ast.XOR, p, q), env)
	require.NoError(t, err)
	assert.True(t, xor)

	implies, err := EvalBool(f.CreateNode(ast.IMPLIES, q, p), env)
	require.NoError(t, err)
	assert.True(t, implies)
}

func TestLookupArrayWalksWriteChainToFirstMatch(t *testing.T) {
	f := ast.NewFactory()
	env := NewEnv()
	env.BindArrayCell("A", big.NewInt(1), big.NewInt(100))

	a := f.CreateArraySymbol("A", 8, 4)
	i1 := f.CreateBVConst(4, big.NewInt(1))
	i2 := f.CreateBVConst(4, big.NewInt(2))
	v1 := f.CreateBVConst(8, big.NewInt(7))
	v2 := f.CreateBVConst(8, big.NewInt(8))

	write := f.CreateArrayTerm(ast.WRITE, 8, 4, f.CreateArrayTerm(ast.WRITE, 8, 4, a, i1, v1), i2, v2)

	atI2, err := lookupArray(write, big.NewInt(2), env)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(8), atI2)

	atI1, err := lookupArray(write, big.NewInt(1), env)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(7), atI1)

	atMiss, err := lookupArray(write, big.NewInt(9), env)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0), atMiss)
}
