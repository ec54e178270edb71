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

// ParseToAST parses markdown into a RootBlock, the root of the
// document's block tree. The returned tree's leaf blocks carry raw,
// pre-inline text; call Inlines on a leaf to resolve its inline content.
func ParseToAST(markdown []byte, opts Options) (*RootBlock, error) {
	source := Preprocess(markdown)
	doc, _ := parseDocument(source, opts)
	return &RootBlock{Source: source, Block: *doc}, nil
}

// Parse renders markdown to HTML under opts, per the package's
// specification. It is equivalent to parsing with ParseToAST and
// rendering the result with Render.
func Parse(markdown []byte, opts Options) (string, error) {
	root, err := ParseToAST(markdown, opts)
	if err != nil {
		return "", err
	}
	return Render(&root.Block, opts), nil
}
