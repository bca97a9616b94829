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

import "math/big"

// CreateSimplifiedEQ builds lhs == rhs, collapsing syntactically identical
// sides (by node identity) and constant/constant comparisons.  It is not a
// general equality-rewriting pass, only the minimum folding the formula and
// array transforms rely on.
func (f *Factory) CreateSimplifiedEQ(lhs, rhs *Node) *Node {
	if lhs == rhs {
		return f.trueNode
	}

	if lhs.Kind == BVCONST && rhs.Kind == BVCONST {
		if lhs.Value.Cmp(rhs.Value) == 0 {
			return f.trueNode
		}

		return f.falseNode
	}

	return f.CreateNode(EQ, lhs, rhs)
}

// CreateSimplifiedTermITE builds ITE(cond, thn, els), collapsing a
// statically-known condition and identical branches: ITE(TRUE,t,e),
// ITE(FALSE,t,e) and ITE(c,t,t) all fold away.
func (f *Factory) CreateSimplifiedTermITE(cond, thn, els *Node) *Node {
	switch cond {
	case f.trueNode:
		return thn
	case f.falseNode:
		return els
	}

	if thn == els {
		return thn
	}

	if thn.Type == ArrayType {
		return f.CreateArrayTerm(TERM_ITE, thn.ValueWidth, thn.IndexWidth, cond, thn, els)
	}

	return f.CreateTerm(TERM_ITE, thn.ValueWidth, cond, thn, els)
}

// SimplifyTerm_TopLevel recursively simplifies a term bottom-up, folding
// constant unsigned arithmetic and re-applying the ITE/EQ simplifications
// above to any sub-ITE a fold exposes.  Sign lowering passes its
// freshly-built expression through this before returning.
func (f *Factory) SimplifyTerm_TopLevel(n *Node) *Node {
	if n.IsLeaf() {
		return n
	}

	children := make([]*Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = f.SimplifyTerm_TopLevel(c)
	}

	switch n.Kind {
	case TERM_ITE:
		return f.CreateSimplifiedTermITE(children[0], children[1], children[2])
	case EQ:
		if n.Type == BooleanType {
			return f.CreateSimplifiedEQ(children[0], children[1])
		}
	case BVUMINUS:
		if children[0].Kind == BVCONST {
			return f.CreateBVConst(n.ValueWidth, new(big.Int).Neg(children[0].Value))
		}
		// Double negation cancels.
		if children[0].Kind == BVUMINUS {
			return children[0].Children[0]
		}
	case BVPLUS:
		if children[0].Kind == BVCONST && children[1].Kind == BVCONST {
			return f.CreateBVConst(n.ValueWidth, new(big.Int).Add(children[0].Value, children[1].Value))
		}
	case BVMINUS:
		if children[0].Kind == BVCONST && children[1].Kind == BVCONST {
			return f.CreateBVConst(n.ValueWidth, new(big.Int).Sub(children[0].Value, children[1].Value))
		}
	case BVDIV:
		if children[0].Kind == BVCONST && children[1].Kind == BVCONST && children[1].Value.Sign() != 0 {
			return f.CreateBVConst(n.ValueWidth, new(big.Int).Div(children[0].Value, children[1].Value))
		}
	case BVMOD:
		if children[0].Kind == BVCONST && children[1].Kind == BVCONST && children[1].Value.Sign() != 0 {
			return f.CreateBVConst(n.ValueWidth, new(big.Int).Mod(children[0].Value, children[1].Value))
		}
	}

	if n.Type == ArrayType {
		return f.CreateArrayTerm(n.Kind, n.ValueWidth, n.IndexWidth, children...)
	}

	return f.CreateTerm(n.Kind, n.ValueWidth, children...)
}
