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

// Expr is a canonical expression. The concrete node types below form a closed
// sum; a pass that type-switches over all of them has handled every legal
// tree.
//
// Expressions are immutable after canonicalization. Passes share subtrees
// freely and never write to them.
type Expr interface {
	exprNode()
}

// Var reads the value bound to Symbol.
type Var struct {
	Region Region
	Symbol Symbol
}

// FunctionPointer references a function as a value, without calling it.
type FunctionPointer struct {
	Region Region
	Symbol Symbol
}

// Int is an integer literal.
type Int struct {
	Region Region
	Value  int64
}

// Float is a fractional literal.
type Float struct {
	Region Region
	Value  float64
}

// Str is a single-line string literal.
type Str struct {
	Region Region
	Value  string
}

// BlockStr is a multiline block string literal.
type BlockStr struct {
	Region Region
	Lines  []string
}

// EmptyRecord is the literal {}.
type EmptyRecord struct {
	Region Region
}

// List evaluates Elems in order and builds a list.
type List struct {
	Region Region
	Elems  []Expr
}

// RecordField is one labeled field inside a [Record] literal.
type RecordField struct {
	Region Region
	Name   string
	Value  Expr
}

// Record evaluates its field values in order and builds a record.
type Record struct {
	Region Region
	Fields []RecordField
}

// Access evaluates Record and projects the field named Field out of it.
type Access struct {
	Region Region
	Record Expr
	Field  string
}

// Branch is one pattern and body inside a [Case].
type Branch struct {
	Pattern Pattern
	Body    Expr
}

// Case evaluates Cond once, then runs the body of the first branch whose
// pattern matches. Exactly one branch body runs per evaluation; branch bodies
// are mutually exclusive. Canonicalization never emits a Case with zero
// branches.
type Case struct {
	Region   Region
	Cond     Expr
	Branches []Branch
}

// Def is one pattern-to-value binding inside a [Defs] block.
type Def struct {
	Pattern Pattern
	Value   Expr
}

// Defs evaluates each binding's value in order, then the body. All bindings
// execute on every path through the block.
type Defs struct {
	Region Region
	Defs   []Def
	Body   Expr
}

// CallByName calls a statically-resolved function. The callee symbol itself
// counts as a reference to the function value.
type CallByName struct {
	Region Region
	Name   Symbol
	Args   []Expr
}

// CallPointer calls the function produced by evaluating Fn.
type CallPointer struct {
	Region Region
	Fn     Expr
	Args   []Expr
}

// RuntimeError stands in for an expression that canonicalization already
// reported as broken. Evaluating it crashes; it binds and references nothing.
type RuntimeError struct {
	Region  Region
	Message string
}

func (*Var) exprNode()             {}
func (*FunctionPointer) exprNode() {}
func (*Int) exprNode()             {}
func (*Float) exprNode()           {}
func (*Str) exprNode()             {}
func (*BlockStr) exprNode()        {}
func (*EmptyRecord) exprNode()     {}
func (*List) exprNode()            {}
func (*Record) exprNode()          {}
func (*Access) exprNode()          {}
func (*Case) exprNode()            {}
func (*Defs) exprNode()            {}
func (*CallByName) exprNode()      {}
func (*CallPointer) exprNode()     {}
func (*RuntimeError) exprNode()    {}

// Definition is a top-level binding: one named body to analyze on its own
// (analysis state is never shared between definitions).
type Definition struct {
	Region Region
	Symbol Symbol
	Body   Expr
}
