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

// SubstitutionMap binds a READ node (over a statically-known, already
// transformed index) to a concrete replacement node.  Building and
// populating it is the caller's job; this type only defines the lookup
// shape array lowering consults.
type SubstitutionMap struct {
	bindings map[*Node]*Node
}

// NewSubstitutionMap constructs an empty substitution map.
func NewSubstitutionMap() *SubstitutionMap {
	return &SubstitutionMap{bindings: make(map[*Node]*Node)}
}

// Bind records that read should be replaced by value whenever encountered.
func (m *SubstitutionMap) Bind(read, value *Node) {
	m.bindings[read] = value
}

// CheckSubstitutionMap reports whether processedTerm (a READ node with an
// already-transformed index) has a statically bound replacement, returning
// it if so.
func CheckSubstitutionMap(m *SubstitutionMap, processedTerm *Node) (*Node, bool) {
	if m == nil {
		return nil, false
	}

	v, ok := m.bindings[processedTerm]

	return v, ok
}
