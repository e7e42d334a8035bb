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

// Package exprtest provides terse constructors for canonical trees.
//
// It is designed to keep analysis tests readable: a table case can spell out
// a whole expression in one line instead of a page of struct literals.
// Regions are left zero; the analyses under test never read them.
package exprtest

import "github.com/evanrelf/roc/can"

// Var references the binding s.
func Var(s can.Symbol) can.Expr {
	return &can.Var{Symbol: s}
}

// FnPtr references the function s as a value.
func FnPtr(s can.Symbol) can.Expr {
	return &can.FunctionPointer{Symbol: s}
}

// Int is an integer literal.
func Int(value int64) can.Expr {
	return &can.Int{Value: value}
}

// Str is a string literal.
func Str(value string) can.Expr {
	return &can.Str{Value: value}
}

// List builds a list literal.
func List(elems ...can.Expr) can.Expr {
	return &can.List{Elems: elems}
}

// Field labels one record field.
func Field(name string, value can.Expr) can.RecordField {
	return can.RecordField{Name: name, Value: value}
}

// Record builds a record literal.
func Record(fields ...can.RecordField) can.Expr {
	return &can.Record{Fields: fields}
}

// Access projects a field out of record.
func Access(record can.Expr, field string) can.Expr {
	return &can.Access{Record: record, Field: field}
}

// Call calls the statically-resolved function name.
func Call(name can.Symbol, args ...can.Expr) can.Expr {
	return &can.CallByName{Name: name, Args: args}
}

// CallPtr calls the function value produced by fn.
func CallPtr(fn can.Expr, args ...can.Expr) can.Expr {
	return &can.CallPointer{Fn: fn, Args: args}
}

// Branch pairs a pattern with a body.
func Branch(pattern can.Pattern, body can.Expr) can.Branch {
	return can.Branch{Pattern: pattern, Body: body}
}

// Case builds a case expression over cond.
func Case(cond can.Expr, branches ...can.Branch) can.Expr {
	return &can.Case{Cond: cond, Branches: branches}
}

// Def binds pattern to value inside a defs block.
func Def(pattern can.Pattern, value can.Expr) can.Def {
	return can.Def{Pattern: pattern, Value: value}
}

// Defs builds a local-definitions block around body.
func Defs(defs []can.Def, body can.Expr) can.Expr {
	return &can.Defs{Defs: defs, Body: body}
}

// RuntimeError is a placeholder for an expression canonicalization rejected.
func RuntimeError(message string) can.Expr {
	return &can.RuntimeError{Message: message}
}

// Bind matches anything and binds it to s.
func Bind(s can.Symbol) can.Pattern {
	return &can.Identifier{Symbol: s}
}

// Tag matches the applied tag name.
func Tag(name string, args ...can.Pattern) can.Pattern {
	return &can.Variant{Tag: name, Args: args}
}

// Wild matches anything and binds nothing.
func Wild() can.Pattern {
	return &can.Underscore{}
}
