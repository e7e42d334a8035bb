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
	"log/slog"
	"runtime"
)

// Option configures [AnalyzeAll].
type Option interface {
	apply(r *runOptions)

	// LogAttr is for callers that record their configuration with
	// [slog.Logger.LogAttrs].
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	as := make([]any, 0, len(o))
	for _, opt := range o {
		if opt == nil {
			continue
		}

		as = append(as, opt.LogAttr())
	}

	return slog.Group("options", as...)
}

type runOptions struct {
	concurrency int
}

func defaultOptions() *runOptions {
	return &runOptions{concurrency: runtime.GOMAXPROCS(0)}
}

// WithConcurrency is an [Option] limiting how many definitions
// [AnalyzeAll] analyzes at once. Values below one mean unbounded.
func WithConcurrency(concurrency int) Option {
	return concurrencyOption{concurrency: concurrency}
}

type concurrencyOption struct{ concurrency int }

func (o concurrencyOption) apply(r *runOptions) {
	r.concurrency = o.concurrency
}

func (o concurrencyOption) LogAttr() slog.Attr {
	return slog.Int("concurrency", o.concurrency)
}
