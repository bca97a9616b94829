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
package cmd

import (
	"fmt"
	"math/big"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zaddach/s2e2-stp/pkg/ast"
	"github.com/zaddach/s2e2-stp/pkg/solver"
	"github.com/zaddach/s2e2-stp/pkg/transform"
)

// demoScenario builds one formula against a fresh factory and reports what
// it asserts, purely for display purposes.
type demoScenario struct {
	name        string
	description string
	build       func(f *ast.Factory) *ast.Node
}

var demoScenarios = []demoScenario{
	{
		name:        "signed-division",
		description: "SBVDIV truncates toward zero",
		build: func(f *ast.Factory) *ast.Node {
			a := f.CreateBVConst(4, big.NewInt(0b1110)) // -2
			b := f.CreateBVConst(4, big.NewInt(0b0011)) // 3
			return f.CreateNode(ast.EQ, f.CreateTerm(ast.SBVDIV, 4, a, b), f.CreateZeroConst(4))
		},
	},
	{
		name:        "signed-remainder",
		description: "SBVREM takes the sign of the dividend",
		build: func(f *ast.Factory) *ast.Node {
			a := f.CreateBVConst(4, big.NewInt(0b1110)) // -2
			b := f.CreateBVConst(4, big.NewInt(0b0011)) // 3
			return f.CreateNode(ast.EQ, f.CreateTerm(ast.SBVREM, 4, a, b), f.CreateBVConst(4, big.NewInt(0b1110)))
		},
	},
	{
		name:        "signed-modulus",
		description: "SBVMOD takes the sign of the divisor",
		build: func(f *ast.Factory) *ast.Node {
			a := f.CreateBVConst(4, big.NewInt(0b1110)) // -2
			b := f.CreateBVConst(4, big.NewInt(0b0011)) // 3
			return f.CreateNode(ast.EQ, f.CreateTerm(ast.SBVMOD, 4, a, b), f.CreateOneConst(4))
		},
	},
	{
		name:        "division-by-zero",
		description: "division by zero is defined to be one",
		build: func(f *ast.Factory) *ast.Node {
			x := f.CreateSymbol("x", 4)
			return f.CreateNode(ast.EQ, f.CreateTerm(ast.BVDIV, 4, x, f.CreateZeroConst(4)), f.CreateOneConst(4))
		},
	},
	{
		name:        "repeated-array-read",
		description: "a second read against the same array refines against the first",
		build: func(f *ast.Factory) *ast.Node {
			a := f.CreateArraySymbol("A", 8, 4)
			i := f.CreateSymbol("i", 4)
			j := f.CreateSymbol("j", 4)
			return f.CreateNode(ast.EQ, f.CreateTerm(ast.READ, 8, a, i), f.CreateTerm(ast.READ, 8, a, j))
		},
	},
	{
		name:        "read-of-write",
		description: "READ(WRITE(A,i,v),j) becomes ITE(i=j, v, READ(A,j))",
		build: func(f *ast.Factory) *ast.Node {
			a := f.CreateArraySymbol("A", 8, 4)
			i := f.CreateSymbol("i", 4)
			j := f.CreateSymbol("j", 4)
			v := f.CreateSymbol("v", 8)
			write := f.CreateArrayTerm(ast.WRITE, 8, 4, a, i, v)

			return f.CreateNode(ast.EQ, f.CreateTerm(ast.READ, 8, write, j), f.CreateSymbol("result", 8))
		},
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "run a fixed set of example formulas through the transform and print before/after",
	Long: `demo builds a handful of formulas exercising signed arithmetic lowering,
the division-by-zero guard and array-read Ackermannization, runs each
through the transform and prints its lisp-style rendering before and
after.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkPost := GetFlag(cmd, "debug-postcondition")
		oneReturnsOne := GetFlag(cmd, "division-by-zero-returns-one")

		cfg := transform.Config{
			DivisionByZeroReturnsOne: oneReturnsOne,
			Debug:                    checkPost,
		}

		for _, s := range demoScenarios {
			ctx := solver.NewContext(cfg)

			if GetFlag(cmd, "verbose") {
				ctx.Log.SetLevel(logrus.DebugLevel)
			}

			before := s.build(ctx.Factory)

			fmt.Println(colour(termYellow, fmt.Sprintf("== %s: %s ==", s.name, s.description)))
			fmt.Printf("before: %s\n", before)

			after := ctx.Transform(before)
			fmt.Printf("after:  %s\n", after)

			if checkPost {
				if err := transform.PostCondition(after); err != nil {
					fmt.Println(colour(termRed, fmt.Sprintf("FAIL: %s", err)))
				} else {
					fmt.Println(colour(termGreen, "PASS: no signed arithmetic or array operator survived"))
				}
			}

			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().Bool("debug-postcondition", false, "verify no signed-arithmetic or array kind survives each transform")
	demoCmd.Flags().Bool("division-by-zero-returns-one", false, "make division/modulus by zero return 1 instead of being left unguarded")
}
