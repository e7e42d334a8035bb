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

package can

import (
	"cmp"
	"fmt"
)

// Symbol is the identity-unique handle for a named binding: a function
// parameter, a def-bound name, a pattern-matched name, or a top-level
// definition.
//
// Symbols are comparable and hash by their id, never by display name. The
// zero Symbol is the invalid sentinel; valid symbols come from a [SymbolGen]
// owned by the canonicalization stage that built the tree.
type Symbol struct {
	id   uint32
	name string
}

// NoSymbol is the invalid zero Symbol.
var NoSymbol Symbol

// Valid reports whether the symbol was minted by a [SymbolGen].
func (s Symbol) Valid() bool { return s.id != 0 }

// Name returns the display name the binding had in source.
func (s Symbol) Name() string { return s.name }

// String renders the symbol with its id, e.g. "x#3". Display names are not
// unique, ids are.
func (s Symbol) String() string {
	if !s.Valid() {
		return "<no symbol>"
	}

	return fmt.Sprintf("%s#%d", s.name, s.id)
}

// Compare orders symbols by mint order. It gives reports and tests a
// deterministic iteration order; the order has no semantic meaning.
func (s Symbol) Compare(o Symbol) int {
	return cmp.Compare(s.id, o.id)
}

// SymbolGen mints fresh symbols. One generator serves one canonical tree;
// ids are dense and start at 1.
//
// SymbolGen is not safe for concurrent use. Canonicalization is sequential,
// and the analysis passes only read symbols.
type SymbolGen struct {
	next uint32
}

// Fresh mints a new symbol with the given display name. Calling Fresh twice
// with the same name yields two distinct symbols, which is how shadowing is
// represented.
func (g *SymbolGen) Fresh(name string) Symbol {
	g.next++

	return Symbol{id: g.next, name: name}
}
