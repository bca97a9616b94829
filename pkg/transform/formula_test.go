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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zaddach/s2e2-stp/pkg/ast"
)

func newTestWalker(cfg Config) (*walker, *ast.Factory) {
	f := ast.NewFactory()
	s := NewState(f, cfg)

	return &walker{state: s, cache: newCache(), log: s.Log.WithField("test", true)}, f
}

func TestFormulaTransformLeavesReturnThemselves(t *testing.T) {
	w, f := newTestWalker(Config{})

	assert.Same(t, f.True(), w.FormulaTransform(f.True()))
	assert.Same(t, f.False(), w.FormulaTransform(f.False()))

	s := f.CreateBooleanSymbol("p")
	assert.Same(t, s, w.FormulaTransform(s))
}

func TestFormulaTransformRebuildsConnectives(t *testing.T) {
	w, f := newTestWalker(Config{})
	p := f.CreateBooleanSymbol("p")
	q := f.CreateBooleanSymbol("q")

	out := w.FormulaTransform(f.CreateNode(ast.AND, p, q))
	assert.Equal(t, ast.AND, out.Kind)
	assert.Same(t, p, out.Children[0])
	assert.Same(t, q, out.Children[1])
}

func TestFormulaTransformEQCollapsesIdenticalSides(t *testing.T) {
	w, f := newTestWalker(Config{})
	x := f.CreateSymbol("x", 4)

	out := w.FormulaTransform(f.CreateNode(ast.EQ, x, x))
	assert.Same(t, f.True(), out)
}

func TestFormulaTransformNonBooleanSymbolPanics(t *testing.T) {
	w, f := newTestWalker(Config{})
	x := f.CreateSymbol("x", 4)

	assert.PanicsWithValue(t, Error{Kind: IllegalKind, Node: x}, func() {
		w.FormulaTransform(x)
	})
}

func TestFormulaTransformIllegalKindPanics(t *testing.T) {
	w, f := newTestWalker(Config{})
	bogus := f.CreateTerm(ast.BVPLUS, 4, f.CreateSymbol("x", 4), f.CreateSymbol("y", 4))
	// A term-typed node reaching formula position is illegal.
	bogus.Type = ast.BooleanType

	assert.PanicsWithValue(t, Error{Kind: IllegalKind, Node: bogus}, func() {
		w.FormulaTransform(bogus)
	})
}

func TestFormulaTransformMemoisesWithinOneCall(t *testing.T) {
	w, f := newTestWalker(Config{})
	x := f.CreateSymbol("x", 4)
	y := f.CreateSymbol("y", 4)
	shared := f.CreateNode(ast.EQ, x, y)
	outer := f.CreateNode(ast.AND, shared, shared)

	out := w.FormulaTransform(outer)
	assert.Same(t, out.Children[0], out.Children[1])
}
