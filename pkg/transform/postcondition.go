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
	"fmt"

	"github.com/zaddach/s2e2-stp/pkg/ast"
)

// PostCondition traverses a transformed formula and reports the first
// node that still carries a signed-arithmetic or array-elimination kind,
// or a nonzero IndexWidth. It is a debug aid, run only when Config.Debug
// is set; a nil result means the output DAG is in normal form.
func PostCondition(n *ast.Node) error {
	return checkPostCondition(n, make(map[*ast.Node]struct{}))
}

func checkPostCondition(n *ast.Node, visited map[*ast.Node]struct{}) error {
	if _, ok := visited[n]; ok {
		return nil
	}

	visited[n] = struct{}{}

	switch n.Kind {
	case ast.SBVDIV, ast.SBVMOD, ast.SBVREM, ast.READ, ast.WRITE:
		return fmt.Errorf("postcondition: illegal kind %s survived transform at %s", n.Kind, n)
	}

	if n.IndexWidth != 0 {
		return fmt.Errorf("postcondition: nonzero IndexWidth survived transform at %s", n)
	}

	for _, c := range n.Children {
		if err := checkPostCondition(c, visited); err != nil {
			return err
		}
	}

	return nil
}
