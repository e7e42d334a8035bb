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
	"fmt"
	"log/slog"
	"maps"
	"testing"

	"github.com/evanrelf/roc/can"
	"github.com/evanrelf/roc/internal/exprtest"
	. "github.com/evanrelf/roc/usage"
)

// makeDefs builds n definitions "fN = gN xN xN", so each body classifies its
// callee unique and its argument shared.
func makeDefs(g *can.SymbolGen, n int) []*can.Definition {
	defs := make([]*can.Definition, 0, n)
	for i := range n {
		callee := g.Fresh(fmt.Sprintf("g%d", i))
		arg := g.Fresh(fmt.Sprintf("x%d", i))

		defs = append(defs, &can.Definition{
			Symbol: g.Fresh(fmt.Sprintf("f%d", i)),
			Body:   exprtest.Call(callee, exprtest.Var(arg), exprtest.Var(arg)),
		})
	}

	return defs
}

func TestAnalyzeAll(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		opts Options
	}{
		{"default", nil},
		{"serial", Options{WithConcurrency(1)}},
		{"wide", Options{WithConcurrency(32)}},
		{"unbounded", Options{WithConcurrency(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var g can.SymbolGen
			defs := makeDefs(&g, 100)

			got := AnalyzeAll(defs, tt.opts)

			if len(got) != len(defs) {
				t.Fatalf("Expected %d results, got %d", len(defs), len(got))
			}

			for _, def := range defs {
				if want := Analyze(def.Body); !maps.Equal(got[def.Symbol], want) {
					t.Errorf("Result for %v =\n%vwant\n%v", def.Symbol, got[def.Symbol], want)
				}
			}
		})
	}
}

func TestAnalyzeAllEmpty(t *testing.T) {
	t.Parallel()

	if got := AnalyzeAll(nil); len(got) != 0 {
		t.Errorf("Expected no results, got %v", got)
	}
}

func TestOptionsLogAttr(t *testing.T) {
	t.Parallel()

	opts := Options{WithConcurrency(4), nil}

	attr := opts.LogAttr()
	if got, want := attr.Key, "options"; got != want {
		t.Errorf("Expected group key %q, got %q", want, got)
	}

	group := attr.Value.Group()
	if len(group) != 1 {
		t.Fatalf("Expected 1 attr, got %d", len(group))
	}

	if got, want := group[0], slog.Int("concurrency", 4); !got.Equal(want) {
		t.Errorf("Expected attr %v, got %v", want, got)
	}
}
