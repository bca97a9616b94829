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
	"fmt"
	"math/big"

	"github.com/zaddach/s2e2-stp/pkg/ast"
)

func trunc(v *big.Int, width uint) *big.Int {
	if width == 0 {
		return big.NewInt(0)
	}

	mod := new(big.Int).Lsh(big.NewInt(1), width)
	r := new(big.Int).Mod(v, mod)

	if r.Sign() < 0 {
		r.Add(r, mod)
	}

	return r
}

// signed reinterprets an unsigned, width-truncated value as a
// two's-complement signed integer.
func signed(v *big.Int, width uint) *big.Int {
	half := new(big.Int).Lsh(big.NewInt(1), width-1)
	if v.Cmp(half) < 0 {
		return new(big.Int).Set(v)
	}

	full := new(big.Int).Lsh(big.NewInt(1), width)

	return new(big.Int).Sub(v, full)
}

// EvalBool evaluates a Boolean-typed node under env.
func EvalBool(n *ast.Node, env *Env) (bool, error) {
	switch n.Kind {
	case ast.TRUE:
		return true, nil
	case ast.FALSE:
		return false, nil
	case ast.SYMBOL:
		v, ok := env.Bools[n.Name]
		if !ok {
			return false, fmt.Errorf("eval: unbound boolean symbol %q", n.Name)
		}

		return v, nil
	case ast.NOT:
		v, err := EvalBool(n.Children[0], env)
		return !v, err
	case ast.AND:
		return evalBoolFold(n.Children, env, true, func(acc, v bool) bool { return acc && v })
	case ast.OR:
		return evalBoolFold(n.Children, env, false, func(acc, v bool) bool { return acc || v })
	case ast.NAND:
		v, err := evalBoolFold(n.Children, env, true, func(acc, v bool) bool { return acc && v })
		return !v, err
	case ast.NOR:
		v, err := evalBoolFold(n.Children, env, false, func(acc, v bool) bool { return acc || v })
		return !v, err
	case ast.XOR:
		return evalBoolFold(n.Children, env, false, func(acc, v bool) bool { return acc != v })
	case ast.IFF:
		a, err := EvalBool(n.Children[0], env)
		if err != nil {
			return false, err
		}

		b, err := EvalBool(n.Children[1], env)

		return a == b, err
	case ast.IMPLIES:
		a, err := EvalBool(n.Children[0], env)
		if err != nil {
			return false, err
		}

		if !a {
			return true, nil
		}

		return EvalBool(n.Children[1], env)
	case ast.FORMULA_ITE:
		c, err := EvalBool(n.Children[0], env)
		if err != nil {
			return false, err
		}

		if c {
			return EvalBool(n.Children[1], env)
		}

		return EvalBool(n.Children[2], env)
	case ast.EQ, ast.NEQ:
		lhs, err := Eval(n.Children[0], env)
		if err != nil {
			return false, err
		}

		rhs, err := Eval(n.Children[1], env)
		if err != nil {
			return false, err
		}

		eq := lhs.Cmp(rhs) == 0
		if n.Kind == ast.NEQ {
			return !eq, nil
		}

		return eq, nil
	case ast.BVLT, ast.BVLE, ast.BVGT, ast.BVGE:
		return evalUnsignedCompare(n, env)
	case ast.BVSLT, ast.BVSLE, ast.BVSGT, ast.BVSGE:
		return evalSignedCompare(n, env)
	default:
		return false, fmt.Errorf("eval: %s is not a boolean-position kind", n.Kind)
	}
}

func evalBoolFold(children []*ast.Node, env *Env, seed bool, step func(acc, v bool) bool) (bool, error) {
	acc := seed
	for _, c := range children {
		v, err := EvalBool(c, env)
		if err != nil {
			return false, err
		}

		acc = step(acc, v)
	}

	return acc, nil
}

func evalUnsignedCompare(n *ast.Node, env *Env) (bool, error) {
	lhs, err := Eval(n.Children[0], env)
	if err != nil {
		return false, err
	}

	rhs, err := Eval(n.Children[1], env)
	if err != nil {
		return false, err
	}

	c := lhs.Cmp(rhs)

	switch n.Kind {
	case ast.BVLT:
		return c < 0, nil
	case ast.BVLE:
		return c <= 0, nil
	case ast.BVGT:
		return c > 0, nil
	default:
		return c >= 0, nil
	}
}

func evalSignedCompare(n *ast.Node, env *Env) (bool, error) {
	width := n.Children[0].ValueWidth

	lhs, err := Eval(n.Children[0], env)
	if err != nil {
		return false, err
	}

	rhs, err := Eval(n.Children[1], env)
	if err != nil {
		return false, err
	}

	c := signed(lhs, width).Cmp(signed(rhs, width))

	switch n.Kind {
	case ast.BVSLT:
		return c < 0, nil
	case ast.BVSLE:
		return c <= 0, nil
	case ast.BVSGT:
		return c > 0, nil
	default:
		return c >= 0, nil
	}
}

// Eval evaluates a bit-vector-typed node under env, returning its value
// reduced modulo 2^ValueWidth.
func Eval(n *ast.Node, env *Env) (*big.Int, error) {
	switch n.Kind {
	case ast.SYMBOL:
		v, ok := env.Vars[n.Name]
		if !ok {
			return nil, fmt.Errorf("eval: unbound symbol %q", n.Name)
		}

		return v, nil
	case ast.BVCONST:
		return n.Value, nil
	case ast.TERM_ITE:
		c, err := EvalBool(n.Children[0], env)
		if err != nil {
			return nil, err
		}

		if c {
			return Eval(n.Children[1], env)
		}

		return Eval(n.Children[2], env)
	case ast.READ:
		idx, err := Eval(n.Children[1], env)
		if err != nil {
			return nil, err
		}

		return lookupArray(n.Children[0], idx, env)
	case ast.BVUMINUS:
		x, err := Eval(n.Children[0], env)
		if err != nil {
			return nil, err
		}

		return trunc(new(big.Int).Neg(x), n.ValueWidth), nil
	case ast.BVEXTRACT:
		return evalExtract(n, env)
	case ast.BVCONCAT:
		return evalConcat(n, env)
	case ast.BVPLUS, ast.BVMINUS, ast.BVDIV, ast.BVMOD:
		return evalUnsignedBinary(n, env)
	case ast.SBVDIV, ast.SBVREM, ast.SBVMOD:
		return evalSignedBinary(n, env)
	default:
		return nil, fmt.Errorf("eval: %s is not a term-position kind", n.Kind)
	}
}

func evalUnsignedBinary(n *ast.Node, env *Env) (*big.Int, error) {
	a, err := Eval(n.Children[0], env)
	if err != nil {
		return nil, err
	}

	b, err := Eval(n.Children[1], env)
	if err != nil {
		return nil, err
	}

	switch n.Kind {
	case ast.BVPLUS:
		return trunc(new(big.Int).Add(a, b), n.ValueWidth), nil
	case ast.BVMINUS:
		return trunc(new(big.Int).Sub(a, b), n.ValueWidth), nil
	case ast.BVDIV:
		if b.Sign() == 0 {
			return nil, fmt.Errorf("eval: division by zero at %s", n)
		}

		return trunc(new(big.Int).Div(a, b), n.ValueWidth), nil
	default: // BVMOD
		if b.Sign() == 0 {
			return nil, fmt.Errorf("eval: modulus by zero at %s", n)
		}

		return trunc(new(big.Int).Mod(a, b), n.ValueWidth), nil
	}
}

func evalSignedBinary(n *ast.Node, env *Env) (*big.Int, error) {
	width := n.ValueWidth

	a, err := Eval(n.Children[0], env)
	if err != nil {
		return nil, err
	}

	b, err := Eval(n.Children[1], env)
	if err != nil {
		return nil, err
	}

	if b.Sign() == 0 {
		return nil, fmt.Errorf("eval: signed division or modulus by zero at %s", n)
	}

	as, bs := signed(a, width), signed(b, width)

	switch n.Kind {
	case ast.SBVDIV:
		return trunc(new(big.Int).Quo(as, bs), width), nil
	case ast.SBVREM:
		return trunc(new(big.Int).Rem(as, bs), width), nil
	default: // SBVMOD, SMT-LIB bvsmod: sign follows the divisor
		u := new(big.Int).Rem(as, bs)
		if u.Sign() == 0 {
			return big.NewInt(0), nil
		}

		if u.Sign() == bs.Sign() {
			return trunc(u, width), nil
		}

		return trunc(new(big.Int).Add(u, bs), width), nil
	}
}

func evalExtract(n *ast.Node, env *Env) (*big.Int, error) {
	x, err := Eval(n.Children[0], env)
	if err != nil {
		return nil, err
	}

	hi, err := Eval(n.Children[1], env)
	if err != nil {
		return nil, err
	}

	lo, err := Eval(n.Children[2], env)
	if err != nil {
		return nil, err
	}

	width := uint(hi.Int64()-lo.Int64()) + 1
	shifted := new(big.Int).Rsh(x, uint(lo.Int64()))

	return trunc(shifted, width), nil
}

func evalConcat(n *ast.Node, env *Env) (*big.Int, error) {
	hi, err := Eval(n.Children[0], env)
	if err != nil {
		return nil, err
	}

	lo, err := Eval(n.Children[1], env)
	if err != nil {
		return nil, err
	}

	shifted := new(big.Int).Lsh(hi, n.Children[1].ValueWidth)

	return trunc(new(big.Int).Or(shifted, lo), n.ValueWidth), nil
}

// lookupArray evaluates array a at idx by walking through SYMBOL, WRITE
// and TERM_ITE bases, the same functional semantics ArrayLowering
// Ackermannizes.
func lookupArray(a *ast.Node, idx *big.Int, env *Env) (*big.Int, error) {
	switch a.Kind {
	case ast.SYMBOL:
		cells, ok := env.Arrays[a.Name]
		if !ok {
			return big.NewInt(0), nil
		}

		if v, ok := cells[idx.String()]; ok {
			return v, nil
		}

		return big.NewInt(0), nil
	case ast.WRITE:
		wi, err := Eval(a.Children[1], env)
		if err != nil {
			return nil, err
		}

		if wi.Cmp(idx) == 0 {
			return Eval(a.Children[2], env)
		}

		return lookupArray(a.Children[0], idx, env)
	case ast.TERM_ITE:
		c, err := EvalBool(a.Children[0], env)
		if err != nil {
			return nil, err
		}

		if c {
			return lookupArray(a.Children[1], idx, env)
		}

		return lookupArray(a.Children[2], idx, env)
	default:
		return nil, fmt.Errorf("eval: %s is not a supported array base", a.Kind)
	}
}
