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

import "strings"

// This file is the HTML renderer: a recursive walk of the finished
// block tree (renderChildren/renderBlock) that writes HTML per block, resolving each leaf's inline content stream on
// demand. Grounded on the teacher's HTML writer in html.go, extended
// with table, task list, and inline extension tag output.

// Render produces the HTML rendering of root under opts.
func Render(root *Block, opts Options) string {
	buf := getRenderBuf()
	defer func() { putRenderBuf(buf) }()
	r := &renderer{opts: opts, buf: buf}
	r.renderChildren(root)
	return string(r.buf)
}

type renderer struct {
	opts Options
	buf  []byte

	// currentRaw is the raw text buffer that TextKind items currently
	// being rendered index into: a block's raw content, or a table
	// cell's, depending on what renderInlines was last called for.
	currentRaw string
}

func (r *renderer) writeString(s string) { r.buf = append(r.buf, s...) }

func (r *renderer) writeEscaped(s string) {
	r.buf = escapeHTML(r.buf, []byte(s))
}

func (r *renderer) renderChildren(b *Block) {
	for _, c := range b.blockChildren {
		r.renderBlock(c)
	}
}

// renderLeafInlines resolves and renders a leaf block's own inline
// content, establishing b.raw as the text TextKind spans index into.
func (r *renderer) renderLeafInlines(b *Block) {
	r.currentRaw = b.raw
	r.renderInlines(b.Inlines(r.opts))
}

// renderCellInlines resolves and renders a table cell's inline content,
// establishing cell as the text TextKind spans index into.
func (r *renderer) renderCellInlines(cell string, refs referenceMap) {
	r.currentRaw = cell
	r.renderInlines(scanAndResolveInlines(cell, r.opts, refs))
}

func (r *renderer) renderBlock(b *Block) {
	switch b.kind {
	case ParagraphKind:
		r.writeString("<p>")
		r.renderLeafInlines(b)
		r.writeString("</p>\n")

	case ThematicBreakKind:
		r.writeString("<hr />\n")

	case ATXHeadingKind, SetextHeadingKind:
		r.writeString("<h")
		r.writeString(headingDigit(b.n))
		r.writeString(">")
		r.renderLeafInlines(b)
		r.writeString("</h")
		r.writeString(headingDigit(b.n))
		r.writeString(">\n")

	case IndentedCodeBlockKind, FencedCodeBlockKind:
		r.writeString("<pre><code")
		if lang := fenceLanguage(b.info); lang != "" {
			r.writeString(" class=\"language-")
			r.writeEscaped(lang)
			r.writeString("\"")
		}
		r.writeString(">")
		r.writeEscaped(b.literal)
		if !strings.HasSuffix(b.literal, "\n") {
			r.writeString("\n")
		}
		r.writeString("</code></pre>\n")

	case HTMLBlockKind:
		r.writeString(b.literal)

	case BlockQuoteKind:
		r.writeString("<blockquote>\n")
		r.renderChildren(b)
		r.writeString("</blockquote>\n")

	case ListKind:
		r.renderList(b)

	case ListItemKind:
		// A bare ListItemKind reached without its parent's looseness
		// (e.g. walked directly rather than via renderList) renders loose.
		r.renderListItem(b, true)

	case TableKind:
		r.renderTable(b)
	}
}

func headingDigit(n int) string {
	if n < 1 || n > 6 {
		n = 1
	}
	return string(rune('0' + n))
}

// fenceLanguage returns the first whitespace-delimited word of a fenced
// code block's info string, per §6's language-tag rule.
func fenceLanguage(info string) string {
	info = strings.TrimSpace(info)
	if i := strings.IndexAny(info, " \t"); i >= 0 {
		return info[:i]
	}
	return info
}

func (r *renderer) renderList(b *Block) {
	if b.ListOrdered() {
		r.writeString("<ol")
		if b.n != 0 && b.n != 1 {
			r.writeString(" start=\"")
			r.writeString(itoa(b.n))
			r.writeString("\"")
		}
		r.writeString(">\n")
		r.renderListItems(b)
		r.writeString("</ol>\n")
		return
	}
	r.writeString("<ul>\n")
	r.renderListItems(b)
	r.writeString("</ul>\n")
}

func (r *renderer) renderListItems(list *Block) {
	for _, item := range list.blockChildren {
		r.renderListItem(item, list.listLoose)
	}
}

func (r *renderer) renderListItem(b *Block, loose bool) {
	r.writeString("<li>")
	if tc := b.TaskChecked(); tc >= 0 {
		r.writeString("<input type=\"checkbox\" disabled=\"\"")
		if tc == 1 {
			r.writeString(" checked=\"\"")
		}
		r.writeString(" /> ")
	}
	if !loose && len(b.blockChildren) > 0 && onlyTightParagraphs(b) {
		if b.blockChildren[0].kind != ParagraphKind {
			r.writeString("\n")
		}
		for i, c := range b.blockChildren {
			if c.kind == ParagraphKind {
				r.renderLeafInlines(c)
				if i < len(b.blockChildren)-1 {
					r.writeString("\n")
				}
			} else {
				r.renderBlock(c)
			}
		}
	} else {
		r.writeString("\n")
		r.renderChildren(b)
	}
	r.writeString("</li>\n")
}

// onlyTightParagraphs reports whether b's only Paragraph children should
// render without their <p> wrapper, per the tight-list rendering rule:
// every top-level Paragraph sibling is unwrapped, anything else renders
// normally.
func onlyTightParagraphs(b *Block) bool {
	for _, c := range b.blockChildren {
		if c.kind != ParagraphKind && c.kind != ListKind {
			return false
		}
	}
	return true
}

func (r *renderer) renderTable(b *Block) {
	r.writeString("<table>\n<thead>\n<tr>\n")
	for i, cell := range b.cells {
		align := AlignNone
		if i < len(b.alignments) {
			align = b.alignments[i]
		}
		r.writeString("<th")
		r.writeAlign(align)
		r.writeString(">")
		r.renderCellInlines(cell, b.refs)
		r.writeString("</th>\n")
	}
	r.writeString("</tr>\n</thead>\n")
	if len(b.rows) > 0 {
		r.writeString("<tbody>\n")
		for _, row := range b.rows {
			r.writeString("<tr>\n")
			for i, cell := range row {
				align := AlignNone
				if i < len(b.alignments) {
					align = b.alignments[i]
				}
				r.writeString("<td")
				r.writeAlign(align)
				r.writeString(">")
				r.renderCellInlines(cell, b.refs)
				r.writeString("</td>\n")
			}
			r.writeString("</tr>\n")
		}
		r.writeString("</tbody>\n")
	}
	r.writeString("</table>\n")
}

func (r *renderer) writeAlign(a ColumnAlignment) {
	switch a {
	case AlignLeft:
		r.writeString(" style=\"text-align: left\"")
	case AlignCenter:
		r.writeString(" style=\"text-align: center\"")
	case AlignRight:
		r.writeString(" style=\"text-align: right\"")
	}
}

func (r *renderer) renderInlines(items []*Inline) {
	for _, it := range items {
		r.renderInline(it)
	}
}

func (r *renderer) renderInline(in *Inline) {
	switch in.kind {
	case TextKind:
		r.writeEscaped(string(in.Span().slice([]byte(r.currentRaw))))
	case TextOwnedKind:
		r.writeEscaped(in.text)
	case CodeSpanKind:
		r.writeString("<code>")
		r.writeEscaped(in.text)
		r.writeString("</code>")
	case RawHTMLKind:
		r.writeString(in.text)
	case AutolinkKind:
		dest := in.text
		if in.AutolinkIsEmail() {
			dest = "mailto:" + dest
		}
		r.writeString("<a href=\"")
		r.writeEscaped(percentEncodeURI(dest))
		r.writeString("\">")
		r.writeEscaped(in.text)
		r.writeString("</a>")
	case SoftBreakKind:
		r.writeString("\n")
	case HardBreakKind:
		r.writeString("<br />\n")
	case EmphasisKind:
		r.writeWrapped("em", in)
	case StrongKind:
		r.writeWrapped("strong", in)
	case StrikethroughKind:
		r.writeWrapped("del", in)
	case HighlightKind:
		r.writeWrapped("mark", in)
	case UnderlineKind:
		r.writeWrapped("u", in)
	case LinkKind:
		r.writeString("<a href=\"")
		r.writeEscaped(in.text)
		r.writeString("\"")
		if title, ok := in.LinkTitle(); ok {
			r.writeString(" title=\"")
			r.writeEscaped(title)
			r.writeString("\"")
		}
		r.writeString(">")
		r.renderInlines(in.children)
		r.writeString("</a>")
	case ImageKind:
		r.writeString("<img src=\"")
		r.writeEscaped(in.text)
		r.writeString("\" alt=\"")
		r.writeEscaped(r.plainTextOfChildren(in.children))
		r.writeString("\"")
		if title, ok := in.LinkTitle(); ok {
			r.writeString(" title=\"")
			r.writeEscaped(title)
			r.writeString("\"")
		}
		r.writeString(" />")
	}
}

func (r *renderer) writeWrapped(tag string, in *Inline) {
	r.writeString("<" + tag + ">")
	r.renderInlines(in.children)
	r.writeString("</" + tag + ">")
}

// plainTextOfChildren flattens an image's children to plain text for its
// alt attribute, per §6's image-alt rule.
func (r *renderer) plainTextOfChildren(items []*Inline) string {
	var sb strings.Builder
	var walk func(items []*Inline)
	walk = func(items []*Inline) {
		for _, it := range items {
			switch it.kind {
			case TextKind:
				sb.Write(it.Span().slice([]byte(r.currentRaw)))
			case TextOwnedKind, CodeSpanKind, AutolinkKind:
				sb.WriteString(it.text)
			case SoftBreakKind, HardBreakKind:
				sb.WriteString(" ")
			default:
				walk(it.children)
			}
		}
	}
	walk(items)
	return sb.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits [20]byte
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		digits[i] = '-'
	}
	return string(digits[i:])
}
