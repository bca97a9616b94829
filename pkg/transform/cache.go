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
	"github.com/zaddach/s2e2-stp/pkg/ast"
	"github.com/zaddach/s2e2-stp/pkg/util/hash"
)

// cache is the per-invocation memo table from input node to transformed
// node. Its lifecycle is tied to a single top-level call: allocated fresh
// on entry, discarded on exit, never shared across calls or goroutines.
// Only non-leaf nodes are ever written, since leaves are cheap enough that
// caching them buys nothing.
type cache struct {
	table *hash.Map[*ast.Node, *ast.Node]
}

func newCache() *cache {
	return &cache{table: hash.NewMap[*ast.Node, *ast.Node](256)}
}

func (c *cache) get(n *ast.Node) (*ast.Node, bool) {
	return c.table.Get(n)
}

func (c *cache) put(in, out *ast.Node) {
	if len(in.Children) == 0 {
		return
	}

	c.table.Insert(in, out)
}
