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

// Pattern is a canonical pattern, the left-hand side of a def or case branch.
// Like [Expr] it is a closed sum of pointer nodes.
type Pattern interface {
	patternNode()
}

// Identifier binds the matched value to Symbol.
type Identifier struct {
	Region Region
	Symbol Symbol
}

// Variant matches an applied tag and destructures its payload.
type Variant struct {
	Region Region
	Tag    string
	Args   []Pattern
}

// IntLiteral matches an exact integer.
type IntLiteral struct {
	Region Region
	Value  int64
}

// StrLiteral matches an exact string.
type StrLiteral struct {
	Region Region
	Value  string
}

// EmptyRecordPattern matches {}.
type EmptyRecordPattern struct {
	Region Region
}

// Underscore matches anything and binds nothing.
type Underscore struct {
	Region Region
}

func (*Identifier) patternNode()         {}
func (*Variant) patternNode()            {}
func (*IntLiteral) patternNode()         {}
func (*StrLiteral) patternNode()         {}
func (*EmptyRecordPattern) patternNode() {}
func (*Underscore) patternNode()         {}
