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

// Factory is the hash-consing table: every node it constructs is interned,
// so two structurally-identical constructions return the same *Node.  A
// Factory is shared for the lifetime of a solving session (it underlies
// every formula a solver ever builds, not just the ones passed through the
// transform).
type Factory struct {
	table map[interningKey]*Node
	// Cached singletons for the Boolean constants.
	trueNode  *Node
	falseNode *Node
}

// NewFactory constructs an empty, ready-to-use Factory.
func NewFactory() *Factory {
	f := &Factory{table: make(map[interningKey]*Node)}
	f.trueNode = f.intern(&Node{Kind: TRUE, Type: BooleanType})
	f.falseNode = f.intern(&Node{Kind: FALSE, Type: BooleanType})

	return f
}

func (f *Factory) intern(n *Node) *Node {
	key := keyOf(n)
	if existing, ok := f.table[key]; ok {
		return existing
	}

	f.table[key] = n

	return n
}

// True returns the canonical TRUE node.
func (f *Factory) True() *Node { return f.trueNode }

// False returns the canonical FALSE node.
func (f *Factory) False() *Node { return f.falseNode }

// CreateNode builds a formula-level (Boolean-typed) node of the given kind
// over the given children, with no value width.
func (f *Factory) CreateNode(kind Kind, children ...*Node) *Node {
	switch kind {
	case TRUE:
		return f.trueNode
	case FALSE:
		return f.falseNode
	}

	return f.intern(&Node{
		Kind:     kind,
		Type:     BooleanType,
		Children: children,
	})
}

// CreateTerm builds a bit-vector-typed term node of the given kind, width
// and children, with no array index component (IndexWidth 0). Use
// CreateArrayTerm for WRITE nodes and array-valued ITEs.
func (f *Factory) CreateTerm(kind Kind, width uint, children ...*Node) *Node {
	return f.intern(&Node{
		Kind:       kind,
		Type:       BitvectorType,
		ValueWidth: width,
		Children:   children,
	})
}

// CreateArrayTerm builds an array-typed term node (WRITE, or an ITE
// selecting between two arrays) of the given element width and index
// width.
func (f *Factory) CreateArrayTerm(kind Kind, valueWidth, indexWidth uint, children ...*Node) *Node {
	return f.intern(&Node{
		Kind:       kind,
		Type:       ArrayType,
		ValueWidth: valueWidth,
		IndexWidth: indexWidth,
		Children:   children,
	})
}

// CreateArraySymbol builds an array symbol of the given element/index
// widths.  Like every other node it is interned, so identical (name,
// widths) pairs return the same node.
func (f *Factory) CreateArraySymbol(name string, valueWidth, indexWidth uint) *Node {
	return f.intern(&Node{
		Kind:       SYMBOL,
		Type:       ArrayType,
		Name:       name,
		ValueWidth: valueWidth,
		IndexWidth: indexWidth,
	})
}

// CreateSymbol builds a bit-vector-typed symbol of the given width.
func (f *Factory) CreateSymbol(name string, width uint) *Node {
	return f.intern(&Node{
		Kind:       SYMBOL,
		Type:       BitvectorType,
		Name:       name,
		ValueWidth: width,
	})
}

// CreateBooleanSymbol builds a Boolean-typed symbol.
func (f *Factory) CreateBooleanSymbol(name string) *Node {
	return f.intern(&Node{
		Kind: SYMBOL,
		Type: BooleanType,
		Name: name,
	})
}

// truncate reduces v modulo 2^width, as every BVCONST value is stored
// truncated to its declared width.
func truncate(v *big.Int, width uint) *big.Int {
	if width == 0 {
		return big.NewInt(0)
	}

	mod := new(big.Int).Lsh(big.NewInt(1), width)
	r := new(big.Int).Mod(v, mod)

	if r.Sign() < 0 {
		r.Add(r, mod)
	}

	return r
}

// CreateBVConst builds a constant bit-vector node of the given width,
// reducing value modulo 2^width.
func (f *Factory) CreateBVConst(width uint, value *big.Int) *Node {
	return f.intern(&Node{
		Kind:       BVCONST,
		Type:       BitvectorType,
		ValueWidth: width,
		Value:      truncate(value, width),
	})
}

// CreateZeroConst builds the all-zero constant of the given width.
func (f *Factory) CreateZeroConst(width uint) *Node {
	return f.CreateBVConst(width, big.NewInt(0))
}

// CreateOneConst builds the constant 1 of the given width.
func (f *Factory) CreateOneConst(width uint) *Node {
	return f.CreateBVConst(width, big.NewInt(1))
}
