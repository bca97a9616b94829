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

// Package solver bundles the AST factory and the array-lowering state a
// solving session owns for as long as it's open.
package solver

import (
	"github.com/zaddach/s2e2-stp/pkg/ast"
	"github.com/zaddach/s2e2-stp/pkg/transform"
)

// Context is the long-lived object a solving session owns one of. It
// holds the node factory, the lowering configuration and the
// solver-lifetime array-lowering tables (*transform.State), so that a
// query issued after several Transform calls still sees the Ackermann
// variables earlier calls introduced.
type Context struct {
	Factory *ast.Factory
	*transform.State
}

// NewContext constructs a Context with a fresh factory and array-lowering
// state, ready to transform formulas under cfg.
func NewContext(cfg transform.Config) *Context {
	factory := ast.NewFactory()
	return &Context{Factory: factory, State: transform.NewState(factory, cfg)}
}

// Transform lowers form into a pure unsigned bit-vector formula,
// threading a fresh call-scoped cache through the recursion and
// extending the Context's array-lowering tables with whatever new
// Ackermann variables this call introduces.
func (c *Context) Transform(form *ast.Node) *ast.Node {
	return c.State.TopLevel(form)
}
