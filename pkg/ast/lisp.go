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
	"fmt"
	"strings"
)

// String renders n as a lisp-style s-expression for diagnostics.  This is a
// debug aid, not a parseable wire format.
func (n *Node) String() string {
	switch n.Kind {
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case SYMBOL:
		return n.Name
	case BVCONST:
		return fmt.Sprintf("0b%s[%d]", n.Value.Text(2), n.ValueWidth)
	}

	var b strings.Builder

	b.WriteByte('(')
	b.WriteString(strings.ToLower(n.Kind.String()))

	for _, c := range n.Children {
		b.WriteByte(' ')
		b.WriteString(c.String())
	}

	b.WriteByte(')')

	return b.String()
}
