// Copyright 2024 The cmark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cmark

// linkDefinition is the resolved destination and optional title of a link
// reference definition.
type linkDefinition struct {
	destination  string
	title        string
	titlePresent bool
}

// referenceMap maps normalized link labels (§4.5) to their first-seen
// definition. It is append-only during block parsing and read-only during
// rendering, matching the lifecycle described in the data model.
type referenceMap map[string]linkDefinition

// match reports whether normalizedLabel has a definition.
func (m referenceMap) match(normalizedLabel string) (linkDefinition, bool) {
	def, ok := m[normalizedLabel]
	return def, ok
}

// define records label's definition if no definition for the same
// normalized label has been recorded yet; first occurrence wins, matching
// the reference map's append-only, first-definition-wins semantics.
func (m referenceMap) define(label string, def linkDefinition) {
	norm := normalizeLabel(label)
	if norm == "" {
		return
	}
	if _, exists := m[norm]; exists {
		return
	}
	m[norm] = def
}
