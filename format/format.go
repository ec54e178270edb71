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

// Package format serializes a parsed cmark document back to CommonMark
// source, exercising ParseToAST the way the teacher's own format package
// exercises its block tree. The output is not guaranteed to be
// byte-identical to the input (headings are always re-emitted in ATX
// form, for instance). Paragraph text is written back as its raw source,
// but link reference definitions are not written at all, so reference
// links lose their targets and the output then renders to different HTML.
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ravenmark/cmark"
)

// Format writes root as CommonMark source to w.
func Format(w io.Writer, root *cmark.RootBlock) error {
	ww := &errWriter{w: w}
	f := &formatter{w: ww}
	f.blocks(root.ChildBlocks(), "")
	return ww.err
}

type formatter struct {
	w *errWriter
}

func (f *formatter) blocks(blocks []*cmark.Block, indent string) {
	first := true
	for _, b := range blocks {
		if !first {
			f.w.WriteString("\n")
		}
		first = false
		f.block(b, indent)
	}
}

func (f *formatter) block(b *cmark.Block, indent string) {
	switch b.Kind() {
	case cmark.ParagraphKind:
		f.writeIndentedLines(indent, b.Raw())

	case cmark.ThematicBreakKind:
		f.w.WriteString(indent)
		f.w.WriteString("---\n")

	case cmark.ATXHeadingKind, cmark.SetextHeadingKind:
		f.w.WriteString(indent)
		f.w.WriteString(strings.Repeat("#", b.HeadingLevel()))
		f.w.WriteString(" ")
		f.w.WriteString(oneLine(b.Raw()))
		f.w.WriteString("\n")

	case cmark.IndentedCodeBlockKind, cmark.FencedCodeBlockKind:
		fence := "```"
		f.w.WriteString(indent)
		f.w.WriteString(fence)
		f.w.WriteString(b.Info())
		f.w.WriteString("\n")
		f.writeIndentedLines(indent, b.Literal())
		f.w.WriteString(indent)
		f.w.WriteString(fence)
		f.w.WriteString("\n")

	case cmark.HTMLBlockKind:
		f.writeIndentedLines(indent, b.Literal())

	case cmark.BlockQuoteKind:
		f.blockQuote(b, indent)

	case cmark.ListKind:
		f.list(b, indent)

	case cmark.TableKind:
		f.table(b, indent)

	default:
		fmt.Fprintf(f.w, "%s<!-- unhandled block kind %v -->\n", indent, b.Kind())
	}
}

func (f *formatter) blockQuote(b *cmark.Block, indent string) {
	inner := &strings.Builder{}
	innerF := &formatter{w: &errWriter{w: inner}}
	innerF.blocks(b.ChildBlocks(), "")
	for _, line := range strings.SplitAfter(inner.String(), "\n") {
		if line == "" {
			continue
		}
		f.w.WriteString(indent)
		f.w.WriteString("> ")
		f.w.WriteString(line)
	}
}

func (f *formatter) list(b *cmark.Block, indent string) {
	items := b.ChildBlocks()
	for i, item := range items {
		if i > 0 && b.ListTight() {
			// Tight lists still separate items with their own line; no
			// blank line between them.
		} else if i > 0 {
			f.w.WriteString("\n")
		}
		marker := bulletMarker(b, i)
		f.w.WriteString(indent)
		f.w.WriteString(marker)
		itemIndent := indent + strings.Repeat(" ", len(marker))
		sub := item.ChildBlocks()
		if len(sub) == 0 {
			f.w.WriteString("\n")
			continue
		}
		first := sub[0]
		firstBuf := &strings.Builder{}
		firstF := &formatter{w: &errWriter{w: firstBuf}}
		firstF.block(first, itemIndent)
		f.w.WriteString(strings.TrimPrefix(firstBuf.String(), itemIndent))
		if len(sub) > 1 {
			f.w.WriteString("\n")
			rest := &strings.Builder{}
			restF := &formatter{w: &errWriter{w: rest}}
			restF.blocks(sub[1:], itemIndent)
			f.w.WriteString(rest.String())
		}
	}
}

func bulletMarker(list *cmark.Block, index int) string {
	if list.ListOrdered() {
		n := list.ListStart() + index
		return strconv.Itoa(n) + string(list.ListMarker()) + " "
	}
	return string(list.ListMarker()) + " "
}

func (f *formatter) table(b *cmark.Block, indent string) {
	aligns := b.TableAlignments()
	f.tableRow(indent, b.TableHeader())
	f.w.WriteString(indent)
	f.w.WriteString("|")
	for _, a := range aligns {
		f.w.WriteString(alignCell(a))
		f.w.WriteString("|")
	}
	f.w.WriteString("\n")
	for _, row := range b.TableRows() {
		f.tableRow(indent, row)
	}
}

func (f *formatter) tableRow(indent string, cells []string) {
	f.w.WriteString(indent)
	f.w.WriteString("|")
	for _, c := range cells {
		f.w.WriteString(" ")
		f.w.WriteString(oneLine(c))
		f.w.WriteString(" |")
	}
	f.w.WriteString("\n")
}

func alignCell(a cmark.ColumnAlignment) string {
	switch a {
	case cmark.AlignLeft:
		return ":---"
	case cmark.AlignCenter:
		return ":---:"
	case cmark.AlignRight:
		return "---:"
	default:
		return "---"
	}
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

func (f *formatter) writeIndentedLines(indent, s string) {
	if s == "" {
		return
	}
	for _, line := range strings.SplitAfter(s, "\n") {
		if line == "" {
			continue
		}
		f.w.WriteString(indent)
		f.w.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			f.w.WriteString("\n")
		}
	}
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = w.w.Write(p)
	return n, w.err
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	return n, w.err
}
