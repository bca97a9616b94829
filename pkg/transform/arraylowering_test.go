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
package transform

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zaddach/s2e2-stp/pkg/ast"
)

func TestTransformArraySecondReadBuildsITEChainAgainstFirst(t *testing.T) {
	w, f := newTestWalker(Config{})
	a := f.CreateArraySymbol("A", 8, 4)
	i := f.CreateSymbol("i", 4)
	j := f.CreateSymbol("j", 4)

	first := w.TermTransform(f.CreateTerm(ast.READ, 8, a, i))
	assert.Equal(t, ast.SYMBOL, first.Kind)

	second := w.TermTransform(f.CreateTerm(ast.READ, 8, a, j))
	assert.Equal(t, ast.TERM_ITE, second.Kind)
	assert.Equal(t, ast.EQ, second.Children[0].Kind)
	assert.Same(t, j, second.Children[0].Children[0])
	assert.Same(t, i, second.Children[0].Children[1])
	assert.Same(t, first, second.Children[1])
	assert.Equal(t, ast.SYMBOL, second.Children[2].Kind)
	assert.NotSame(t, first, second.Children[2])
}

func TestTransformArrayReadOfWriteRewritesToConditional(t *testing.T) {
	w, f := newTestWalker(Config{})
	a := f.CreateArraySymbol("A", 8, 4)
	i := f.CreateSymbol("i", 4)
	j := f.CreateSymbol("j", 4)
	v := f.CreateSymbol("v", 8)
	write := f.CreateArrayTerm(ast.WRITE, 8, 4, a, i, v)

	out := w.TermTransform(f.CreateTerm(ast.READ, 8, write, j))
	assert.Equal(t, ast.TERM_ITE, out.Kind)
	assert.Equal(t, ast.EQ, out.Children[0].Kind)
	assert.Same(t, i, out.Children[0].Children[0])
	assert.Same(t, j, out.Children[0].Children[1])
	assert.Same(t, v, out.Children[1])
	assert.Equal(t, ast.SYMBOL, out.Children[2].Kind)
}

func TestTransformArraySameReadIsMemoisedByArrayReadITE(t *testing.T) {
	w, f := newTestWalker(Config{})
	a := f.CreateArraySymbol("A", 8, 4)
	i := f.CreateSymbol("i", 4)

	read := f.CreateTerm(ast.READ, 8, a, i)
	first := w.TermTransform(read)

	w2 := &walker{state: w.state, cache: newCache(), log: w.log}
	second := w2.TermTransform(f.CreateTerm(ast.READ, 8, a, i))

	assert.Same(t, first, second)
}

func TestTransformArrayReadOnNonArrayPanics(t *testing.T) {
	w, f := newTestWalker(Config{})
	notAnArray := f.CreateBVConst(8, big.NewInt(5))
	bogus := f.CreateTerm(ast.READ, 8, notAnArray, f.CreateSymbol("i", 4))

	assert.PanicsWithValue(t, Error{Kind: ReadOnNonArray, Node: bogus}, func() {
		w.TermTransform(bogus)
	})
}
