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

import "testing"

func TestRenderExtensions(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		opts     Options
		want     string
	}{
		{
			name:     "Strikethrough",
			markdown: "~~gone~~\n",
			opts:     DefaultOptions(),
			want:     "<p><del>gone</del></p>\n",
		},
		{
			name:     "Highlight",
			markdown: "==hot==\n",
			opts:     DefaultOptions(),
			want:     "<p><mark>hot</mark></p>\n",
		},
		{
			name:     "Underline",
			markdown: "++stressed++\n",
			opts:     DefaultOptions(),
			want:     "<p><u>stressed</u></p>\n",
		},
		{
			name:     "StrikethroughDisabled",
			markdown: "~~gone~~\n",
			opts:     optsWithout(func(o *Options) { o.EnableStrikethrough = false }),
			want:     "<p>~~gone~~</p>\n",
		},
		{
			name:     "BareAutolink",
			markdown: "see https://example.com/x for more\n",
			opts:     DefaultOptions(),
			want:     "<p>see <a href=\"https://example.com/x\">https://example.com/x</a> for more</p>\n",
		},
		{
			name:     "BareAutolinkDisabled",
			markdown: "see https://example.com/x for more\n",
			opts:     optsWithout(func(o *Options) { o.EnableAutolink = false }),
			want:     "<p>see https://example.com/x for more</p>\n",
		},
		{
			name:     "SoftBreakAsHardBreakByDefault",
			markdown: "foo\nbar\n",
			opts:     DefaultOptions(),
			want:     "<p>foo<br />\nbar</p>\n",
		},
		{
			name:     "SoftBreakWithHardBreaksDisabled",
			markdown: "foo\nbar\n",
			opts:     optsWithout(func(o *Options) { o.HardBreaks = false }),
			want:     "<p>foo\nbar</p>\n",
		},
		{
			name:     "HardBreakDropsTrailingSpace",
			markdown: "foo  \nbar\n",
			opts:     optsWithout(func(o *Options) { o.HardBreaks = false }),
			want:     "<p>foo<br />\nbar</p>\n",
		},
		{
			name:     "NestedEmphasisFromOneDelimiterRun",
			markdown: "***x***\n",
			opts:     DefaultOptions(),
			want:     "<p><em><strong>x</strong></em></p>\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse([]byte(test.markdown), test.opts)
			if err != nil {
				t.Fatal("Parse:", err)
			}
			if got != test.want {
				t.Errorf("Parse(%q) = %q; want %q", test.markdown, got, test.want)
			}
		})
	}
}

func optsWithout(mutate func(*Options)) Options {
	o := DefaultOptions()
	mutate(&o)
	return o
}

func TestRenderTable(t *testing.T) {
	markdown := "| Left | Center | Right |\n| :--- | :----: | ----: |\n| a | b | c |\n"
	want := "<table>\n" +
		"<thead>\n<tr>\n" +
		"<th style=\"text-align: left\">Left</th>\n" +
		"<th style=\"text-align: center\">Center</th>\n" +
		"<th style=\"text-align: right\">Right</th>\n" +
		"</tr>\n</thead>\n" +
		"<tbody>\n<tr>\n" +
		"<td style=\"text-align: left\">a</td>\n" +
		"<td style=\"text-align: center\">b</td>\n" +
		"<td style=\"text-align: right\">c</td>\n" +
		"</tr>\n</tbody>\n</table>\n"
	got, err := Parse([]byte(markdown), DefaultOptions())
	if err != nil {
		t.Fatal("Parse:", err)
	}
	if got != want {
		t.Errorf("Parse(%q) = %q; want %q", markdown, got, want)
	}
}

func TestRenderTaskList(t *testing.T) {
	markdown := "- [ ] todo\n- [x] done\n"
	want := "<ul>\n" +
		"<li><input type=\"checkbox\" disabled=\"\" /> todo</li>\n" +
		"<li><input type=\"checkbox\" disabled=\"\" checked=\"\" /> done</li>\n" +
		"</ul>\n"
	got, err := Parse([]byte(markdown), DefaultOptions())
	if err != nil {
		t.Fatal("Parse:", err)
	}
	if got != want {
		t.Errorf("Parse(%q) = %q; want %q", markdown, got, want)
	}
}

func TestRenderLooseList(t *testing.T) {
	markdown := "- one\n\n- two\n"
	want := "<ul>\n<li>\n<p>one</p>\n</li>\n<li>\n<p>two</p>\n</li>\n</ul>\n"
	got, err := Parse([]byte(markdown), DefaultOptions())
	if err != nil {
		t.Fatal("Parse:", err)
	}
	if got != want {
		t.Errorf("Parse(%q) = %q; want %q", markdown, got, want)
	}
}
