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

func TestParseToASTBlockStructure(t *testing.T) {
	root, err := ParseToAST([]byte("# Title\n\nSome text.\n\n> quoted\n> more\n"), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	children := root.ChildBlocks()
	if len(children) != 3 {
		t.Fatalf("len(children) = %d; want 3", len(children))
	}
	if got := children[0].Kind(); got != ATXHeadingKind {
		t.Errorf("children[0].Kind() = %v; want ATXHeadingKind", got)
	}
	if got := children[0].HeadingLevel(); got != 1 {
		t.Errorf("children[0].HeadingLevel() = %d; want 1", got)
	}
	if got := children[1].Kind(); got != ParagraphKind {
		t.Errorf("children[1].Kind() = %v; want ParagraphKind", got)
	}
	if got := children[2].Kind(); got != BlockQuoteKind {
		t.Errorf("children[2].Kind() = %v; want BlockQuoteKind", got)
	}
	bq := children[2].ChildBlocks()
	if len(bq) != 1 || bq[0].Kind() != ParagraphKind {
		t.Fatalf("blockquote children = %+v; want single paragraph", bq)
	}
	if got, want := bq[0].Raw(), "quoted\nmore"; got != want {
		t.Errorf("blockquote paragraph raw = %q; want %q", got, want)
	}
}

func TestLinkReferenceDefinitionResolution(t *testing.T) {
	markdown := "[link]\n\n[link]: /uri \"title\"\n"
	root, err := ParseToAST([]byte(markdown), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	children := root.ChildBlocks()
	if len(children) != 1 {
		t.Fatalf("len(children) = %d; want 1 (the reference definition should not produce its own block)", len(children))
	}
	items := children[0].Inlines(DefaultOptions())
	if len(items) != 1 || items[0].Kind() != LinkKind {
		t.Fatalf("items = %+v; want single LinkKind item", items)
	}
	if got, want := items[0].LinkDestination(), "/uri"; got != want {
		t.Errorf("LinkDestination() = %q; want %q", got, want)
	}
	if title, ok := items[0].LinkTitle(); !ok || title != "title" {
		t.Errorf("LinkTitle() = %q, %v; want %q, true", title, ok, "title")
	}
}

func TestListTightness(t *testing.T) {
	tight, err := ParseToAST([]byte("- a\n- b\n"), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	list := tight.ChildBlocks()[0]
	if !list.ListTight() {
		t.Error("tight list: ListTight() = false; want true")
	}

	loose, err := ParseToAST([]byte("- a\n\n- b\n"), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	list = loose.ChildBlocks()[0]
	if list.ListTight() {
		t.Error("loose list: ListTight() = true; want false")
	}
}
