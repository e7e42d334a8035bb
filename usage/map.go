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
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/evanrelf/roc/can"
)

// Map is the result of one analysis: every symbol referenced at least once in
// the analyzed body, classified. A symbol with zero references has no entry.
//
// [Analyze] returns the Map to the caller as a finished value; treat it as
// read-only from then on.
type Map map[can.Symbol]ReferenceCount

// Lookup returns the classification for s. The second result is false when s
// was never referenced.
func (m Map) Lookup(s can.Symbol) (ReferenceCount, bool) {
	rc, ok := m[s]

	return rc, ok
}

// Sorted iterates entries in symbol mint order. Map iteration order is
// unspecified; reports and tests that compare output need this.
func (m Map) Sorted() iter.Seq2[can.Symbol, ReferenceCount] {
	symbols := slices.SortedFunc(maps.Keys(m), can.Symbol.Compare)

	return func(yield func(can.Symbol, ReferenceCount) bool) {
		for _, s := range symbols {
			if !yield(s, m[s]) {
				return
			}
		}
	}
}

// String renders one "symbol: classification" line per entry in sorted
// order.
func (m Map) String() string {
	var b strings.Builder
	for s, rc := range m.Sorted() {
		b.WriteString(s.String())
		b.WriteString(": ")
		b.WriteString(rc.String())
		b.WriteByte('\n')
	}

	return b.String()
}

// register records one more reference to s on the current path: first
// reference is Unique, any further sequential reference degrades to Shared
// via [ReferenceCount.Add].
func (m Map) register(s can.Symbol) {
	value := Unique
	if current, ok := m[s]; ok {
		value = current.Add(Unique)
	}

	m[s] = value
}

// include joins a branch-local map back into m with [ReferenceCount.Or].
// A symbol absent from the branch map contributes nothing; absence is "no
// additional constraint", not Shared.
func (m Map) include(branch Map) {
	for s, value := range branch {
		if current, ok := m[s]; ok {
			value = current.Or(value)
		}

		m[s] = value
	}
}

func (m Map) clone() Map {
	return maps.Clone(m)
}
