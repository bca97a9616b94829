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

// transformArray eliminates a single READ(A, i) node, dispatching on A's
// kind. It is called both from TermTransform (for a top-level READ) and
// recursively on synthetic READ nodes it builds itself while pushing
// writes and conditionals through.
func (w *walker) transformArray(n *ast.Node) *ast.Node {
	f := w.factory()
	a, i := n.Children[0], n.Children[1]
	iPrime := w.TermTransform(i)
	p := f.CreateTerm(ast.READ, a.ValueWidth, a, iPrime)

	if out, ok := w.state.arrayReadITE.Get(p); ok {
		w.cache.put(n, out)
		return out
	}

	var out *ast.Node

	switch a.Kind {
	case ast.SYMBOL:
		out = w.transformArrayReadSymbol(a, p, iPrime)
	case ast.WRITE:
		out = w.transformArrayWrite(a, iPrime)
	case ast.TERM_ITE:
		out = w.transformArrayITE(a, iPrime)
	default:
		fail(ReadOnNonArray, n)
	}

	w.state.arrayReadITE.Insert(p, out)
	w.cache.put(n, out)

	return out
}

// transformArrayReadSymbol implements ArrayLowering branch (a): A is a
// plain array symbol. It resolves p's Ackermann variable, then either
// returns it bare (read refinement deferred) or folds it into an
// ITE-chain against every previously seen read of the same array, most
// recent first.
func (w *walker) transformArrayReadSymbol(a, p, iPrime *ast.Node) *ast.Node {
	f := w.factory()
	v := w.resolveAckermannVariable(a, p)

	e := v

	if !w.state.Config.ArrayReadRefinement {
		indices := w.state.arrayNameReadIndices[a]

		for k := len(indices) - 1; k >= 0; k-- {
			j := indices[k]
			cond := f.CreateSimplifiedEQ(iPrime, j)

			if cond == f.False() {
				w.log.Debugf("skipping always-false index equality against %s", j)
				continue
			}

			readJ := f.CreateTerm(ast.READ, a.ValueWidth, a, j)
			ast.BVTypeCheck(readJ)

			vj, ok := w.state.arrayReadSymbol.Get(readJ)
			if !ok {
				fail(MissingAckermannSymbol, p)
			}

			e = f.CreateSimplifiedTermITE(cond, vj, e)
			ast.BVTypeCheck(e)
		}
	}

	w.state.arrayNameReadIndices[a] = append(w.state.arrayNameReadIndices[a], iPrime)

	return e
}

// resolveAckermannVariable returns the symbol that stands in for read p
// over array a, preferring a statically bound substitution, then a
// previously created symbol, and only then minting a fresh one.
func (w *walker) resolveAckermannVariable(a, p *ast.Node) *ast.Node {
	if w.state.Substitutions != nil {
		if v, ok := ast.CheckSubstitutionMap(w.state.Substitutions, p); ok {
			// Recorded into arrayReadSymbol but deliberately not into
			// introducedSymbols, mirroring the asymmetry of the path this
			// was ported from.
			w.state.arrayReadSymbol.Insert(p, v)
			return v
		}
	}

	if v, ok := w.state.arrayReadSymbol.Get(p); ok {
		return v
	}

	w.state.symbolCount++
	name := fmt.Sprintf("%sarray_%d", a.Name, w.state.symbolCount)
	v := w.factory().CreateSymbol(name, p.ValueWidth)

	w.state.arrayReadSymbol.Insert(p, v)
	w.state.introducedSymbols[v] = struct{}{}
	w.log.Debugf("introduced Ackermann variable %s for read of %s", name, a.Name)

	return v
}

// transformArrayWrite implements ArrayLowering branch (b): A is
// WRITE(B, wi, wv). A symbol or write base resolves by the standard
// READ(WRITE(B,wi,wv),i) = ITE(wi=i, wv, READ(B,i)) rewrite; a
// conditional base has the write pushed into both branches first.
func (w *walker) transformArrayWrite(write, iPrime *ast.Node) *ast.Node {
	f := w.factory()
	base, wi, wv := write.Children[0], write.Children[1], write.Children[2]

	if base.Type != ast.ArrayType {
		fail(WriteOnNonArray, write)
	}

	wiPrime := w.TermTransform(wi)
	wvPrime := w.TermTransform(wv)

	switch base.Kind {
	case ast.SYMBOL, ast.WRITE:
		cond := f.CreateSimplifiedEQ(wiPrime, iPrime)
		innerRead := f.CreateTerm(ast.READ, base.ValueWidth, base, iPrime)
		ast.BVTypeCheck(innerRead)
		inner := w.transformArray(innerRead)

		out := f.CreateSimplifiedTermITE(cond, wvPrime, inner)
		ast.BVTypeCheck(out)

		return out
	case ast.TERM_ITE:
		c, t, e := base.Children[0], base.Children[1], base.Children[2]
		tPrime := f.CreateArrayTerm(ast.WRITE, base.ValueWidth, base.IndexWidth, t, wiPrime, wvPrime)
		ePrime := f.CreateArrayTerm(ast.WRITE, base.ValueWidth, base.IndexWidth, e, wiPrime, wvPrime)
		cPrime := w.FormulaTransform(c)
		aPrime := f.CreateArrayTerm(ast.TERM_ITE, base.ValueWidth, base.IndexWidth, cPrime, tPrime, ePrime)

		w.log.Debugf("pushed write through ITE base")

		innerRead := f.CreateTerm(ast.READ, aPrime.ValueWidth, aPrime, iPrime)
		ast.BVTypeCheck(innerRead)

		return w.transformArray(innerRead)
	default:
		fail(BadArrayShape, write)
		return nil
	}
}

// transformArrayITE implements ArrayLowering branch (c): A is
// ITE(c, t, e); the read distributes into both branches.
func (w *walker) transformArrayITE(a, iPrime *ast.Node) *ast.Node {
	f := w.factory()
	c, t, e := a.Children[0], a.Children[1], a.Children[2]

	cPrime := w.FormulaTransform(c)
	tRead := f.CreateTerm(ast.READ, t.ValueWidth, t, iPrime)
	ast.BVTypeCheck(tRead)
	rt := w.transformArray(tRead)

	eRead := f.CreateTerm(ast.READ, e.ValueWidth, e, iPrime)
	ast.BVTypeCheck(eRead)
	re := w.transformArray(eRead)

	out := f.CreateSimplifiedTermITE(cPrime, rt, re)
	ast.BVTypeCheck(out)

	return out
}
