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

package usage_test

import (
	"slices"
	"testing"

	"github.com/evanrelf/roc/can"
	"github.com/evanrelf/roc/internal/exprtest"
	. "github.com/evanrelf/roc/usage"
)

func TestMapString(t *testing.T) {
	t.Parallel()

	var g can.SymbolGen

	// Names sort differently than mint order on purpose; output follows
	// mint order.
	z, a := g.Fresh("z"), g.Fresh("a")

	m := Analyze(exprtest.Call(z, exprtest.Var(a), exprtest.Var(a)))

	if got, want := m.String(), "z#1: unique\na#2: shared\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMapSorted(t *testing.T) {
	t.Parallel()

	var g can.SymbolGen
	syms := []can.Symbol{g.Fresh("c"), g.Fresh("b"), g.Fresh("a")}

	m := Analyze(exprtest.List(
		exprtest.Var(syms[2]),
		exprtest.Var(syms[0]),
		exprtest.Var(syms[1]),
	))

	var got []can.Symbol
	for s := range m.Sorted() {
		got = append(got, s)
	}

	if !slices.Equal(got, syms) {
		t.Errorf("Sorted() order = %v, want %v", got, syms)
	}
}
