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

// Package spec provides a curated set of CommonMark- and GFM-style
// conformance examples for the cmark package's own tests to run against.
//
// The upstream commonmark-spec and GFM test suites ship as large JSON
// fixtures; this package instead hand-authors a representative sample
// covering the main block and inline constructs, since no spec JSON file travelled with this repository's retrieval pack.
package spec

// Example is a single CommonMark-to-HTML conformance case.
type Example struct {
	Markdown string
	HTML     string
	Example  int
	Section  string
}

// Load returns the core CommonMark conformance examples.
func Load() ([]Example, error) {
	return coreExamples, nil
}

// LoadGFM returns the GFM extension conformance examples (tables, task
// lists, strikethrough) only; it does not include the examples Load
// returns.
func LoadGFM() ([]Example, error) {
	return gfmExamples, nil
}

var coreExamples = []Example{
	{
		Example:  1,
		Section:  "Thematic breaks",
		Markdown: "***\n",
		HTML:     "<hr />\n",
	},
	{
		Example:  2,
		Section:  "ATX headings",
		Markdown: "# foo\n",
		HTML:     "<h1>foo</h1>\n",
	},
	{
		Example:  3,
		Section:  "Setext headings",
		Markdown: "foo\n===\n",
		HTML:     "<h1>foo</h1>\n",
	},
	{
		Example:  4,
		Section:  "Indented code blocks",
		Markdown: "    a simple\n      indented code block\n",
		HTML:     "<pre><code>a simple\n  indented code block\n</code></pre>\n",
	},
	{
		Example:  5,
		Section:  "Fenced code blocks",
		Markdown: "```go\nfmt.Println(\"hi\")\n```\n",
		HTML:     "<pre><code class=\"language-go\">fmt.Println(&quot;hi&quot;)\n</code></pre>\n",
	},
	{
		Example:  6,
		Section:  "Block quotes",
		Markdown: "> foo\n> bar\n",
		HTML:     "<blockquote>\n<p>foo\nbar</p>\n</blockquote>\n",
	},
	{
		Example:  7,
		Section:  "Lists",
		Markdown: "- foo\n- bar\n",
		HTML:     "<ul>\n<li>foo</li>\n<li>bar</li>\n</ul>\n",
	},
	{
		Example:  8,
		Section:  "Lists",
		Markdown: "1. foo\n2. bar\n",
		HTML:     "<ol>\n<li>foo</li>\n<li>bar</li>\n</ol>\n",
	},
	{
		Example:  9,
		Section:  "Lists",
		Markdown: "- foo\n\n- bar\n",
		HTML:     "<ul>\n<li>\n<p>foo</p>\n</li>\n<li>\n<p>bar</p>\n</li>\n</ul>\n",
	},
	{
		Example:  10,
		Section:  "Emphasis and strong emphasis",
		Markdown: "*foo* **bar**\n",
		HTML:     "<p><em>foo</em> <strong>bar</strong></p>\n",
	},
	{
		Example:  11,
		Section:  "Code spans",
		Markdown: "`foo`\n",
		HTML:     "<p><code>foo</code></p>\n",
	},
	{
		Example:  12,
		Section:  "Links",
		Markdown: "[link](/uri \"title\")\n",
		HTML:     "<p><a href=\"/uri\" title=\"title\">link</a></p>\n",
	},
	{
		Example:  13,
		Section:  "Links",
		Markdown: "[link]\n\n[link]: /uri \"title\"\n",
		HTML:     "<p><a href=\"/uri\" title=\"title\">link</a></p>\n",
	},
	{
		Example:  14,
		Section:  "Images",
		Markdown: "![foo](/url \"title\")\n",
		HTML:     "<p><img src=\"/url\" alt=\"foo\" title=\"title\" /></p>\n",
	},
	{
		Example:  15,
		Section:  "Autolinks",
		Markdown: "<https://example.com>\n",
		HTML:     "<p><a href=\"https://example.com\">https://example.com</a></p>\n",
	},
	{
		Example:  16,
		Section:  "Raw HTML",
		Markdown: "<span>foo</span>\n",
		HTML:     "<p><span>foo</span></p>\n",
	},
	{
		Example:  17,
		Section:  "Hard line breaks",
		Markdown: "foo  \nbar\n",
		HTML:     "<p>foo<br />\nbar</p>\n",
	},
	{
		Example:  18,
		Section:  "HTML blocks",
		Markdown: "<div>\nfoo\n</div>\n",
		HTML:     "<div>\nfoo\n</div>\n",
	},
}

var gfmExamples = []Example{
	{
		Example:  1,
		Section:  "Strikethrough",
		Markdown: "~~foo~~\n",
		HTML:     "<p><del>foo</del></p>\n",
	},
	{
		Example:  2,
		Section:  "Task list items",
		Markdown: "- [ ] foo\n- [x] bar\n",
		HTML:     "<ul>\n<li><input type=\"checkbox\" disabled=\"\" /> foo</li>\n<li><input type=\"checkbox\" disabled=\"\" checked=\"\" /> bar</li>\n</ul>\n",
	},
	{
		Example:  3,
		Section:  "Tables",
		Markdown: "| a | b |\n| - | - |\n| 1 | 2 |\n",
		HTML: "<table>\n<thead>\n<tr>\n<th>a</th>\n<th>b</th>\n</tr>\n</thead>\n" +
			"<tbody>\n<tr>\n<td>1</td>\n<td>2</td>\n</tr>\n</tbody>\n</table>\n",
	},
}
