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

// ReferenceCount classifies how often a binding's runtime value may be read.
// It is a two-point lattice with [Shared] as the absorbing element.
type ReferenceCount uint8

//go:generate go tool stringer -type ReferenceCount -linecomment
const (
	// Unique means the value is read at most once on every execution path.
	// Its last use may consume the value in place.
	Unique ReferenceCount = iota // unique

	// Shared means two reads of the value can coexist on some path. Every
	// additional use needs retain/release bookkeeping downstream.
	Shared // shared
)

// Add combines two references that both execute on one path. A value
// reachable from two sequential use sites is shared no matter how each site
// classifies on its own.
func (rc ReferenceCount) Add(ReferenceCount) ReferenceCount {
	return Shared
}

// Or joins classifications from mutually exclusive paths. Only one path runs
// per evaluation, so the join stays Unique unless some path already shares
// the value.
func (rc ReferenceCount) Or(other ReferenceCount) ReferenceCount {
	if rc == Unique && other == Unique {
		return Unique
	}

	return Shared
}
