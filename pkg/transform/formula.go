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

// FormulaTransform walks a Boolean-typed node recursively, returning its
// lowered image. It looks the node up in the call-scoped cache first;
// on a miss, it dispatches by Kind.
func (w *walker) FormulaTransform(n *ast.Node) *ast.Node {
	if out, ok := w.cache.get(n); ok {
		return out
	}

	var out *ast.Node

	switch n.Kind {
	case ast.TRUE, ast.FALSE:
		out = n
	case ast.SYMBOL:
		if n.Type != ast.BooleanType {
			fail(IllegalKind, n)
		}

		out = n
	case ast.NOT:
		child := w.FormulaTransform(n.Children[0])
		out = w.factory().CreateNode(ast.NOT, child)
	case ast.AND, ast.OR, ast.NAND, ast.NOR, ast.XOR, ast.IFF, ast.IMPLIES, ast.FORMULA_ITE:
		children := make([]*ast.Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = w.FormulaTransform(c)
		}

		out = w.factory().CreateNode(n.Kind, children...)
	case ast.EQ:
		lhs := w.TermTransform(n.Children[0])
		rhs := w.TermTransform(n.Children[1])
		out = w.factory().CreateSimplifiedEQ(lhs, rhs)
	default:
		if n.Kind.IsBVComparison() {
			lhs := w.TermTransform(n.Children[0])
			rhs := w.TermTransform(n.Children[1])
			out = w.factory().CreateNode(n.Kind, lhs, rhs)
		} else {
			fail(IllegalKind, n)
		}
	}

	w.cache.put(n, out)

	return out
}
