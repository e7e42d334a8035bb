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

// Package usage implements the sharing analysis over canonical expressions.
//
// # Overview
//
// For every symbol referenced in a definition body, the analysis decides
// whether each runtime instance of the binding is read at most once
// ([Unique]) or may be read more than once ([Shared]). The code generator
// uses the result to elide reference counting: the last use of a Unique
// value may consume it in place, while every extra use of a Shared value
// needs an explicit increment first.
//
// # Example
//
// In
//
//	n = length xs
//	case n
//	    0 -> xs
//	    _ -> reverse xs
//
// xs is read once computing the scrutinee and once more in whichever branch
// runs, so xs is Shared. n is read only by the scrutinee position, so n is
// Unique, and the two branch bodies never run together, so a symbol read in
// both would still be Unique.
//
// # Composition rules
//
// Sequential sub-expressions (call arguments, list elements, record fields,
// def values) all execute on every path: a second reference to a symbol in
// sequence forces Shared. Branch bodies of one case are alternatives: each is
// analyzed against its own snapshot of the map as of the scrutinee, and the
// per-branch results are joined back with [ReferenceCount.Or], which keeps
// Unique only when every path that mentions the symbol mentions it once.
package usage
