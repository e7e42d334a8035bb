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

// Package can defines the canonical intermediate representation consumed by
// the analysis passes in this module.
//
// A canonical tree is fully resolved: every variable, closure and call target
// carries a [Symbol] minted during canonicalization, so downstream passes
// never perform name lookup. Name shadowing is therefore invisible at this
// layer; two bindings with the same display name are two distinct symbols.
//
// [Expr] and [Pattern] are closed sums. Each variant is a pointer node
// carrying its source [Region], and the sealed marker methods keep the
// vocabulary fixed so passes can type-switch exhaustively.
package can
