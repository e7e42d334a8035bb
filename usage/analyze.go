// Copyright 2026 The Roc Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package usage

import (
	"fmt"

	"github.com/evanrelf/roc/can"
)

// Analyze classifies every symbol referenced in expr.
//
// It is a pure function of the tree: one depth-first pass, no error case,
// and a fresh [Map] per call, so re-analysis of the same tree reproduces the
// same result.
func Analyze(expr can.Expr) Map {
	m := make(Map)
	analyzeExpr(expr, m)

	return m
}

// analyzeExpr accumulates references from expr into m.
//
// Sequential positions share m directly. Branch bodies of a case each get an
// isolated snapshot of m as of the scrutinee, and the branch-local results
// are joined back with include; see the package documentation for why the
// two composition modes differ.
func analyzeExpr(expr can.Expr, m Map) {
	switch e := expr.(type) {
	case *can.Var:
		m.register(e.Symbol)

	case *can.FunctionPointer:
		m.register(e.Symbol)

	case *can.List:
		for _, elem := range e.Elems {
			analyzeExpr(elem, m)
		}

	case *can.Record:
		for _, field := range e.Fields {
			analyzeExpr(field.Value, m)
		}

	case *can.Access:
		analyzeExpr(e.Record, m)

	case *can.Case:
		// Scrutinee references are certain on every path.
		analyzeExpr(e.Cond, m)

		// Each branch starts from the map as of the scrutinee, NOT from a
		// map that has earlier branches folded in: only one branch body runs
		// per evaluation, so a reference in branch A must not look
		// sequential to branch B.
		snapshot := m.clone()
		for _, branch := range e.Branches {
			local := snapshot.clone()
			analyzeExpr(branch.Body, local)
			m.include(local)
		}

	case *can.Defs:
		for _, def := range e.Defs {
			analyzeExpr(def.Value, m)
		}

		analyzeExpr(e.Body, m)

	case *can.CallByName:
		// The call target is itself one reference to the function value.
		m.register(e.Name)

		for _, arg := range e.Args {
			analyzeExpr(arg, m)
		}

	case *can.CallPointer:
		analyzeExpr(e.Fn, m)

		for _, arg := range e.Args {
			analyzeExpr(arg, m)
		}

	case *can.Int, *can.Float, *can.Str, *can.BlockStr, *can.EmptyRecord, *can.RuntimeError:
		// No references.

	default:
		// can.Expr is a closed sum; anything else is a bug in the caller,
		// not analyzable input.
		panic(fmt.Sprintf("usage: unknown expression %T", expr))
	}
}
