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

import "fmt"

// BVTypeCheck asserts the minimal well-formedness the transform relies on:
// children of bit-vector operators are themselves bit-vector typed and of
// the node's declared width for binary arithmetic, and ITE/READ nodes have
// the right arity and condition/array operand.  Comparison nodes are not
// checked.  It panics on violation.  This is not a full type-checker;
// general type-checking is the caller's responsibility.
func BVTypeCheck(n *Node) {
	switch n.Kind {
	case BVPLUS, BVMINUS, BVDIV, BVMOD, SBVDIV, SBVREM, SBVMOD:
		for _, c := range n.Children {
			if c.Type != BitvectorType {
				panic(fmt.Sprintf("BVTypeCheck: non-bitvector child of %s", n.Kind))
			}

			if c.ValueWidth != n.ValueWidth {
				panic(fmt.Sprintf("BVTypeCheck: width mismatch in %s (%d vs %d)", n.Kind, c.ValueWidth, n.ValueWidth))
			}
		}
	case TERM_ITE:
		if len(n.Children) != 3 {
			panic("BVTypeCheck: ITE requires 3 children")
		}

		if n.Children[0].Type != BooleanType {
			panic("BVTypeCheck: ITE condition must be Boolean")
		}
	case READ:
		if len(n.Children) != 2 {
			panic("BVTypeCheck: READ requires 2 children")
		}

		if n.Children[0].Type != ArrayType {
			panic("BVTypeCheck: READ over non-array")
		}
	}
}
