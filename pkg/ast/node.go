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

// Package ast implements the hash-consed expression DAG consumed and
// produced by the transform layer: a closed Kind/Type enumeration, node
// construction with structural interning, and the minimal simplifying
// constructors the transform calls into (CreateSimplifiedEQ,
// CreateSimplifiedTermITE, SimplifyTerm_TopLevel).  Full algebraic
// simplification, parsing and type-checking beyond width assertions remain
// the caller's responsibility.
package ast

import (
	"fmt"
	"math/big"
	"strings"
)

// Node is a single entry in the hash-consed expression DAG.  Two *Node
// handles denote the same node iff they are the same pointer, which the
// Factory's interning guarantees for any two structurally-identical
// constructions.
type Node struct {
	Kind Kind
	Type Type
	// ValueWidth is the bit-width of the value (0 for Boolean, w for a BV of
	// width w, element width for arrays).
	ValueWidth uint
	// IndexWidth is 0 for non-arrays, the index bit-width for arrays.
	IndexWidth uint
	// Children is the ordered list of child nodes; arity is determined by
	// Kind.
	Children []*Node
	// Name holds the symbol name for SYMBOL nodes.
	Name string
	// Value holds the constant payload for BVCONST nodes, already reduced
	// modulo 2^ValueWidth.
	Value *big.Int
}

// IsLeaf reports whether this node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// interningKey is the structural identity a Factory interns nodes by.  Two
// distinct *Node values with equal interningKeys are collapsed to the same
// pointer.
type interningKey struct {
	kind       Kind
	valueWidth uint
	indexWidth uint
	name       string
	value      string
	children   string
}

func keyOf(n *Node) interningKey {
	var value string
	if n.Value != nil {
		value = n.Value.String()
	}

	var children strings.Builder

	for _, c := range n.Children {
		fmt.Fprintf(&children, "%p|", c)
	}

	return interningKey{
		kind:       n.Kind,
		valueWidth: n.ValueWidth,
		indexWidth: n.IndexWidth,
		name:       n.Name,
		value:      value,
		children:   children.String(),
	}
}
