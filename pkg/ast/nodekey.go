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

import (
	"hash/fnv"
	"unsafe"
)

// Equals and Hash make *Node satisfy pkg/util/hash.Hasher[*Node], keyed on
// pointer identity rather than structural content.  Because every Node a
// Factory produces is interned, pointer identity already is node identity,
// so no field of Node is inspected here at all.
func (n *Node) Equals(other *Node) bool {
	return n == other
}

// Hash returns a hashcode derived from n's address.  Two distinct *Node
// pointers may still collide; pkg/util/hash.Map resolves that with bucket
// chaining rather than assuming otherwise.
func (n *Node) Hash() uint64 {
	h := fnv.New64a()

	addr := uint64(uintptr(unsafe.Pointer(n)))
	buf := [8]byte{
		byte(addr), byte(addr >> 8), byte(addr >> 16), byte(addr >> 24),
		byte(addr >> 32), byte(addr >> 40), byte(addr >> 48), byte(addr >> 56),
	}
	_, _ = h.Write(buf[:])

	return h.Sum64()
}
