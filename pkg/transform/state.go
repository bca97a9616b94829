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
	"github.com/sirupsen/logrus"
	"github.com/zaddach/s2e2-stp/pkg/ast"
	"github.com/zaddach/s2e2-stp/pkg/util/hash"
)

// State is the solver-lifetime object array lowering mutates: it outlives
// any single top-level transform call, so that a later query against the
// same array sees the Ackermann variables an earlier one introduced.
//
// This is distinct from the per-call cache, which State.TopLevel allocates
// fresh on every invocation and never lets leak across calls.
type State struct {
	// Factory is shared with whatever else is building formulas in this
	// solving session.
	Factory *ast.Factory
	// Config holds the read-only behavioural flags.
	Config Config
	// Substitutions, if non-nil, lets a constant-index READ adopt a
	// statically known value instead of allocating a fresh Ackermann
	// variable.
	Substitutions *ast.SubstitutionMap
	// Log receives structured debug/trace output; defaults to a logger at
	// Warn level so an embedding caller sees nothing unless it asks.
	Log *logrus.Logger

	// arrayReadSymbol maps a canonical READ(A, i') to the fresh symbol
	// representing it.
	arrayReadSymbol *hash.Map[*ast.Node, *ast.Node]
	// arrayReadITE maps a canonical READ(A, i') to the ITE-expanded
	// expression produced the first time it was lowered.
	arrayReadITE *hash.Map[*ast.Node, *ast.Node]
	// arrayNameReadIndices maps an array symbol to the ordered list of
	// transformed read indices seen against it so far, in DAG-traversal
	// (i.e. insertion) order.
	arrayNameReadIndices map[*ast.Node][]*ast.Node
	// introducedSymbols is the set of symbols array lowering has ever
	// created, exposed for downstream model reconstruction.
	introducedSymbols map[*ast.Node]struct{}
	// symbolCount is the monotonically increasing counter fresh Ackermann
	// names are drawn from.
	symbolCount uint

	running bool
}

// NewState constructs an empty State ready to back a solving session.
func NewState(factory *ast.Factory, cfg Config) *State {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	return &State{
		Factory:              factory,
		Config:               cfg,
		Log:                  log,
		arrayReadSymbol:      hash.NewMap[*ast.Node, *ast.Node](64),
		arrayReadITE:         hash.NewMap[*ast.Node, *ast.Node](64),
		arrayNameReadIndices: make(map[*ast.Node][]*ast.Node),
		introducedSymbols:    make(map[*ast.Node]struct{}),
	}
}

// ArrayReadSymbol exposes the Ackermann-variable table for downstream
// collaborators such as counter-example reconstruction.
func (s *State) ArrayReadSymbol() *hash.Map[*ast.Node, *ast.Node] { return s.arrayReadSymbol }

// ArrayReadITE exposes the ITE-expansion memo for downstream collaborators.
func (s *State) ArrayReadITE() *hash.Map[*ast.Node, *ast.Node] { return s.arrayReadITE }

// ArrayNameReadIndices returns array's recorded read-index history, in
// insertion order. The returned slice is shared with State; callers must
// not mutate it.
func (s *State) ArrayNameReadIndices(array *ast.Node) []*ast.Node {
	return s.arrayNameReadIndices[array]
}

// IntroducedSymbols reports whether sym was ever created by array
// lowering in this session.
func (s *State) IntroducedSymbols(sym *ast.Node) bool {
	_, ok := s.introducedSymbols[sym]
	return ok
}

// SymbolCount returns the number of fresh Ackermann symbols minted so far.
func (s *State) SymbolCount() uint { return s.symbolCount }

// TopLevel is the single entry point: it allocates a fresh call-scoped
// cache, runs FormulaTransform, optionally checks the post-condition, then
// discards the cache. form must be Boolean-typed. Concurrent or nested
// calls against the same State are rejected.
func (s *State) TopLevel(form *ast.Node) *ast.Node {
	if form.Type != ast.BooleanType {
		fail(NotAFormula, form)
	}

	if s.running {
		fail(Reentrant, form)
	}

	s.running = true
	defer func() { s.running = false }()

	c := newCache()
	entry := s.Log.WithField("call", "TransformFormula_TopLevel")

	w := &walker{state: s, cache: c, log: entry}
	out := w.FormulaTransform(form)

	if s.Config.Debug {
		if err := PostCondition(out); err != nil {
			panic(err)
		}
	}

	return out
}

// walker bundles the solver-lifetime state, the call-scoped cache and a
// logging context through a single top-level call's mutual recursion. It
// is never retained past the call that created it.
type walker struct {
	state *State
	cache *cache
	log   *logrus.Entry
}

func (w *walker) factory() *ast.Factory { return w.state.Factory }
