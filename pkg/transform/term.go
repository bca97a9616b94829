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

import "github.com/zaddach/s2e2-stp/pkg/ast"

// TermTransform walks a term recursively, returning its lowered image.
// Cache lookup first; on a miss, dispatch by Kind.
func (w *walker) TermTransform(n *ast.Node) *ast.Node {
	if out, ok := w.cache.get(n); ok {
		return out
	}

	var out *ast.Node

	switch n.Kind {
	case ast.SYMBOL, ast.BVCONST:
		out = n
	case ast.WRITE:
		fail(UnsupportedTermWrite, n)
	case ast.READ:
		out = w.transformArray(n)
	case ast.TERM_ITE:
		cond := w.FormulaTransform(n.Children[0])
		thn := w.TermTransform(n.Children[1])
		els := w.TermTransform(n.Children[2])
		out = w.factory().CreateSimplifiedTermITE(cond, thn, els)
	default:
		children := make([]*ast.Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = w.TermTransform(c)
		}

		rebuilt := w.factory().CreateTerm(n.Kind, n.ValueWidth, children...)
		out = w.postProcessArithmetic(n, rebuilt)
	}

	checkWidths(n, out)
	w.cache.put(n, out)

	return out
}

// postProcessArithmetic applies sign lowering and the division-by-zero
// guard to a freshly rebuilt arithmetic node, in that order: the guard
// must run after sign lowering so it also protects the unsigned division
// SignLowering introduces internally.
func (w *walker) postProcessArithmetic(original, rebuilt *ast.Node) *ast.Node {
	if !rebuilt.Kind.IsDivisionOrModulus() {
		return rebuilt
	}

	result := rebuilt
	divisor := rebuilt.Children[1]

	if rebuilt.Kind.IsSignedArithmetic() {
		result = w.translate(rebuilt)
	}

	if w.state.Config.DivisionByZeroReturnsOne {
		f := w.factory()
		zero := f.CreateZeroConst(divisor.ValueWidth)
		one := f.CreateOneConst(original.ValueWidth)
		isZero := f.CreateSimplifiedEQ(divisor, zero)
		result = f.CreateSimplifiedTermITE(isZero, one, result)
	}

	return result
}

func checkWidths(input, output *ast.Node) {
	if input.ValueWidth != output.ValueWidth || input.IndexWidth != output.IndexWidth {
		fail(WidthMismatch, input)
	}
}
