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

	"github.com/zaddach/s2e2-stp/pkg/ast"
)

// translate rewrites a node of kind SBVDIV, SBVREM or SBVMOD into an
// equivalent expression built only from unsigned BVDIV/BVMOD, absolute
// value, sign test and conditional selection. Both children must already
// be transformed, bit-vector-typed and of equal width.
//
//	SBVREM(a,b) = ITE(msb(a), -BVMOD(|a|,|b|),  BVMOD(|a|,|b|))
//	SBVMOD(a,b) = let r = SBVREM(a,b) in ITE(msb(a) xor msb(b), r+b, r)
//	SBVDIV(a,b) = ITE(msb(a) xor msb(b), -BVDIV(|a|,|b|), BVDIV(|a|,|b|))
//
// A single BVMOD/BVDIV call over positive operands is shared by both
// branches of the relevant ITE (negating only at the end), rather than
// materialising two divisions.
func (w *walker) translate(n *ast.Node) *ast.Node {
	f := w.factory()
	a, b := n.Children[0], n.Children[1]
	width := n.ValueWidth
	hi := width - 1

	msb := func(x *ast.Node) *ast.Node {
		idx := f.CreateBVConst(32, big.NewInt(int64(hi)))
		bit := f.CreateTerm(ast.BVEXTRACT, 1, x, idx, idx)

		return f.CreateSimplifiedEQ(bit, f.CreateBVConst(1, big.NewInt(1)))
	}

	abs := func(x *ast.Node) *ast.Node {
		neg := f.CreateTerm(ast.BVUMINUS, width, x)
		return f.CreateSimplifiedTermITE(msb(x), neg, x)
	}

	msbA, msbB := msb(a), msb(b)
	absA, absB := abs(a), abs(b)

	var u *ast.Node
	if n.Kind == ast.SBVDIV {
		u = f.CreateTerm(ast.BVDIV, width, absA, absB)
	} else {
		u = f.CreateTerm(ast.BVMOD, width, absA, absB)
	}

	negU := f.CreateTerm(ast.BVUMINUS, width, u)

	var result *ast.Node

	switch n.Kind {
	case ast.SBVREM:
		result = f.CreateSimplifiedTermITE(msbA, negU, u)
	case ast.SBVMOD:
		r := f.CreateSimplifiedTermITE(msbA, negU, u)
		signsDiffer := f.CreateNode(ast.XOR, msbA, msbB)
		sum := f.CreateTerm(ast.BVPLUS, width, r, b)
		result = f.CreateSimplifiedTermITE(signsDiffer, sum, r)
	case ast.SBVDIV:
		signsDiffer := f.CreateNode(ast.XOR, msbA, msbB)
		result = f.CreateSimplifiedTermITE(signsDiffer, negU, u)
	default:
		fail(IllegalKind, n)
	}

	return f.SimplifyTerm_TopLevel(result)
}
