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
	"testing"

	. "github.com/evanrelf/roc/usage"
)

func TestReferenceCountLattice(t *testing.T) {
	t.Parallel()

	counts := [...]ReferenceCount{Unique, Shared}

	for _, a := range counts {
		for _, b := range counts {
			// Sequential combination always shares, even unique+unique.
			if got, want := a.Add(b), Shared; got != want {
				t.Errorf("%v.Add(%v) = %v, want %v", a, b, got, want)
			}

			// Alternative join shares iff either side shares.
			want := Unique
			if a == Shared || b == Shared {
				want = Shared
			}

			if got := a.Or(b); got != want {
				t.Errorf("%v.Or(%v) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestReferenceCountString(t *testing.T) {
	t.Parallel()

	if got, want := Unique.String(), "unique"; got != want {
		t.Errorf("Unique.String() = %q, want %q", got, want)
	}

	if got, want := Shared.String(), "shared"; got != want {
		t.Errorf("Shared.String() = %q, want %q", got, want)
	}
}
