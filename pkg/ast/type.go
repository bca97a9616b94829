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

// Type is the closed enumeration of node value types.
type Type uint8

const (
	// BooleanType is the type of TRUE/FALSE and every formula.
	BooleanType Type = iota
	// BitvectorType is the type of every fixed-width term.
	BitvectorType
	// ArrayType is the type of array-valued symbols and WRITE results.
	ArrayType
)

// String renders a Type for diagnostics.
func (t Type) String() string {
	switch t {
	case BooleanType:
		return "BOOLEAN_TYPE"
	case BitvectorType:
		return "BITVECTOR_TYPE"
	case ArrayType:
		return "ARRAY_TYPE"
	default:
		return "UNKNOWN_TYPE"
	}
}
