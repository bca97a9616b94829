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

// ErrorKind identifies why a transform invocation gave up. Every value here
// names a programmer error or a broken solver invariant: none of them are
// recoverable within the transform itself.
type ErrorKind uint8

const (
	// NotAFormula means the top-level input is not Boolean-typed.
	NotAFormula ErrorKind = iota
	// IllegalKind means the formula walk hit an unrecognised kind at
	// formula position, or the term walk hit a non-term kind.
	IllegalKind
	// UnsupportedTermWrite means a WRITE was reached outside of a parent
	// READ, where array lowering can't resolve it.
	UnsupportedTermWrite
	// WidthMismatch means a rebuilt term disagrees with its input on
	// ValueWidth or IndexWidth.
	WidthMismatch
	// WriteOnNonArray means WRITE's first child is not array-typed.
	WriteOnNonArray
	// BadArrayShape means READ's array argument is not SYMBOL, WRITE or
	// ITE.
	BadArrayShape
	// MissingAckermannSymbol means ITE-chain construction couldn't find a
	// previously recorded Ackermann variable for an index it has already
	// seen.
	MissingAckermannSymbol
	// ReadOnNonArray means READ reached the default branch over a kind
	// array lowering doesn't support.
	ReadOnNonArray
	// Reentrant means a top-level transform was invoked while another one
	// was already running against the same state.
	Reentrant
)

var errorKindNames = map[ErrorKind]string{
	NotAFormula:            "NotAFormula",
	IllegalKind:            "IllegalKind",
	UnsupportedTermWrite:   "UnsupportedTermWrite",
	WidthMismatch:          "WidthMismatch",
	WriteOnNonArray:        "WriteOnNonArray",
	BadArrayShape:          "BadArrayShape",
	MissingAckermannSymbol: "MissingAckermannSymbol",
	ReadOnNonArray:         "ReadOnNonArray",
	Reentrant:              "Reentrant",
}

// String renders an ErrorKind for diagnostics.
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}

	return "UnknownErrorKind"
}

// Error is the sum-typed error the transform walk raises. Every fatal
// condition of the walk is panic(Error{...}) rather than a bare string, so
// callers that do recover can assert on Kind instead of matching message
// text. The one exception is the Config.Debug post-condition check in
// State.TopLevel, which panics with the plain error PostCondition returns.
type Error struct {
	Kind ErrorKind
	Node *ast.Node
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("transform: %s", e.Kind)
	}

	return fmt.Sprintf("transform: %s at %s", e.Kind, e.Node)
}

func fail(kind ErrorKind, node *ast.Node) {
	panic(Error{Kind: kind, Node: node})
}
