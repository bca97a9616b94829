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
package eval

import (
	"github.com/zaddach/s2e2-stp/pkg/ast"
	"github.com/zaddach/s2e2-stp/pkg/util/hash"
)

// BindAckermannVariables gives every Ackermann variable in reads the value
// its corresponding array read would actually have under env, computed
// via the same functional array semantics lookupArray uses. reads is
// typically solver.Context.ArrayReadSymbol().Entries() — a table of
// READ(array, index) -> fresh symbol pairs.
//
// This is what lets a semantic-equivalence test evaluate a lowered
// formula and compare it against evaluating the original, un-lowered
// one: the lowered formula only agrees with the original under a model
// where its Ackermann variables satisfy the read they stand in for,
// which is exactly the consistency a downstream SAT solver would
// otherwise have to discover from the ITE-chain equalities.
func BindAckermannVariables(reads []hash.Entry[*ast.Node, *ast.Node], env *Env) {
	for _, entry := range reads {
		read, sym := entry.Key, entry.Value
		array, index := read.Children[0], read.Children[1]

		idx, err := Eval(index, env)
		if err != nil {
			continue
		}

		v, err := lookupArray(array, idx, env)
		if err != nil {
			continue
		}

		env.BindVar(sym.Name, v)
	}
}
