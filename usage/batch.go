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
	"golang.org/x/sync/errgroup"

	"github.com/evanrelf/roc/can"
)

// AnalyzeAll analyzes every definition body and returns the usage map of
// each, keyed by the definition's symbol.
//
// Definitions share no analysis state, so bodies are analyzed concurrently
// up to the configured limit, one worker per available CPU unless
// [WithConcurrency] says otherwise. The result is identical to calling
// [Analyze] per definition in a loop.
func AnalyzeAll(defs []*can.Definition, opts ...Option) map[can.Symbol]Map {
	r := defaultOptions()
	Options(opts).apply(r)

	limit := r.concurrency
	if limit < 1 {
		limit = -1
	}

	// Each goroutine writes only its own slot; the map is assembled after
	// Wait so no locking is needed.
	results := make([]Map, len(defs))

	var g errgroup.Group
	g.SetLimit(limit)

	for i, def := range defs {
		g.Go(func() error {
			results[i] = Analyze(def.Body)

			return nil
		})
	}

	_ = g.Wait() // Analyze is total, the group never sees an error.

	analyzed := make(map[can.Symbol]Map, len(defs))
	for i, def := range defs {
		analyzed[def.Symbol] = results[i]
	}

	return analyzed
}
