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

// Options configures the extension toggles and rendering behavior of
// Parse and ParseToAST. The zero Options is not the default configuration
// — use DefaultOptions, since every flag here defaults to true.
type Options struct {
	// HardBreaks, when true, renders every soft line break within a
	// paragraph as a hard line break (<br />) rather than a single
	// space/newline.
	HardBreaks bool
	// EnableHighlight turns on the "==x==" -> <mark>x</mark> extension.
	EnableHighlight bool
	// EnableStrikethrough turns on the "~~x~~" -> <del>x</del>
	// extension.
	EnableStrikethrough bool
	// EnableUnderline turns on the "++x++" -> <u>x</u> extension.
	EnableUnderline bool
	// EnableTables turns on GFM pipe table parsing.
	EnableTables bool
	// EnableAutolink turns on bare URL and email address autolinking.
	EnableAutolink bool
	// EnableTaskLists turns on "[ ]"/"[x]" list item checkboxes.
	EnableTaskLists bool
}

// DefaultOptions returns the default Options: every extension enabled,
// matching §6's listed defaults.
func DefaultOptions() Options {
	return Options{
		HardBreaks:          true,
		EnableHighlight:     true,
		EnableStrikethrough: true,
		EnableUnderline:     true,
		EnableTables:        true,
		EnableAutolink:      true,
		EnableTaskLists:     true,
	}
}
