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
package hash

// A reasonably simple hashtable implementation which permits collisions.
// Observe that, for example, hashicorp's go-set is *not* a suitable
// replacement here, since that does not handle collisions.  Specifically, it
// assumes the hash function always uniquely identifies the data in question.
// We don't want to make that assumption here: two distinct *ast.Node
// pointers can, in principle, collide under any fixed-width hash of their
// address.

// Hasher provides a generic definition of a hashing function suitable for
// use within Map.  This is similar to the Hasher interface go-set provides,
// except that it additionally includes equality.
type Hasher[T any] interface {
	// Equals checks whether two items are equal (or not).
	Equals(T) bool
	// Hash returns a suitable hashcode.
	Hash() uint64
}
