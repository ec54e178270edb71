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

// Package cmark implements a [CommonMark] 0.31.2 conformant Markdown-to-HTML
// compiler, extended with GitHub-flavored tables and task lists plus a small
// set of inline extensions (strikethrough, highlight, underline, bare
// autolinks).
//
// Parsing happens in two passes. [ParseToAST] builds a tree of [Block]
// values while collecting link reference definitions. [Render] then
// walks that tree, and for every block that carries raw text, hands the
// accumulated bytes to the inline scanner and emphasis resolver before
// appending the result as HTML. [Parse] composes the two for callers
// that only want the rendered HTML.
//
// The package performs no sanitization of raw HTML passed through from the
// source document; callers embedding untrusted input should run the result
// through an HTML sanitizer.
//
// [CommonMark]: https://spec.commonmark.org/0.31.2/
package cmark
