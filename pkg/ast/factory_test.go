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
package ast

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactoryInterningByIdentity(t *testing.T) {
	f := NewFactory()

	a1 := f.CreateSymbol("a", 4)
	a2 := f.CreateSymbol("a", 4)
	assert.True(t, a1 == a2, "identical symbols must intern to the same pointer")

	b := f.CreateSymbol("a", 8)
	assert.False(t, a1 == b, "differing width must not intern to the same pointer")

	c1 := f.CreateBVConst(4, big.NewInt(3))
	c2 := f.CreateBVConst(4, big.NewInt(3))
	assert.True(t, c1 == c2)

	t1 := f.CreateTerm(BVPLUS, 4, a1, c1)
	t2 := f.CreateTerm(BVPLUS, 4, a1, c1)
	assert.True(t, t1 == t2, "structurally identical terms must intern")

	t3 := f.CreateTerm(BVPLUS, 4, c1, a1)
	assert.False(t, t1 == t3, "argument order matters for identity")
}

func TestCreateBVConstTruncatesModuloWidth(t *testing.T) {
	f := NewFactory()

	n := f.CreateBVConst(4, big.NewInt(19)) // 19 mod 16 = 3
	assert.Equal(t, int64(3), n.Value.Int64())

	neg := f.CreateBVConst(4, big.NewInt(-1)) // -1 mod 16 = 15
	assert.Equal(t, int64(15), neg.Value.Int64())
}

func TestCreateSimplifiedEQ(t *testing.T) {
	f := NewFactory()
	x := f.CreateSymbol("x", 4)

	assert.Equal(t, f.trueNode, f.CreateSimplifiedEQ(x, x))

	three := f.CreateBVConst(4, big.NewInt(3))
	threeAgain := f.CreateBVConst(4, big.NewInt(3))
	four := f.CreateBVConst(4, big.NewInt(4))

	assert.Equal(t, f.trueNode, f.CreateSimplifiedEQ(three, threeAgain))
	assert.Equal(t, f.falseNode, f.CreateSimplifiedEQ(three, four))

	eq := f.CreateSimplifiedEQ(x, three)
	assert.Equal(t, EQ, eq.Kind)
}

func TestCreateSimplifiedTermITE(t *testing.T) {
	f := NewFactory()
	x := f.CreateSymbol("x", 4)
	y := f.CreateSymbol("y", 4)

	assert.Equal(t, x, f.CreateSimplifiedTermITE(f.True(), x, y))
	assert.Equal(t, y, f.CreateSimplifiedTermITE(f.False(), x, y))
	assert.Equal(t, x, f.CreateSimplifiedTermITE(f.CreateBooleanSymbol("c"), x, x))

	cond := f.CreateBooleanSymbol("c")
	ite := f.CreateSimplifiedTermITE(cond, x, y)
	assert.Equal(t, TERM_ITE, ite.Kind)
	assert.Equal(t, uint(4), ite.ValueWidth)
}

func TestSimplifyTermTopLevelConstantFolding(t *testing.T) {
	f := NewFactory()

	three := f.CreateBVConst(4, big.NewInt(3))
	negThree := f.CreateTerm(BVUMINUS, 4, three)
	simplified := f.SimplifyTerm_TopLevel(negThree)

	assert.Equal(t, BVCONST, simplified.Kind)
	assert.Equal(t, int64(13), simplified.Value.Int64()) // -3 mod 16

	doubleNeg := f.CreateTerm(BVUMINUS, 4, f.CreateTerm(BVUMINUS, 4, f.CreateSymbol("x", 4)))
	assert.Equal(t, SYMBOL, f.SimplifyTerm_TopLevel(doubleNeg).Kind)
}

func TestStringRendering(t *testing.T) {
	f := NewFactory()
	x := f.CreateSymbol("x", 4)
	y := f.CreateSymbol("y", 4)
	sum := f.CreateTerm(BVPLUS, 4, x, y)

	assert.Equal(t, "(bvplus x y)", sum.String())
}
