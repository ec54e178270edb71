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

//go:generate stringer -type=BlockKind,InlineKind -output=kind_string.go

package cmark

// RootBlock is the document root returned by ParseToAST: its embedded
// Block holds the document's top-level blocks as children. It owns the normalized CommonMark source the document was parsed from.
type RootBlock struct {
	// Source holds the bytes of the document after Preprocess: line
	// endings folded to "\n", NUL bytes replaced by U+FFFD.
	Source []byte

	Block
}

// A Block is a structural element of a CommonMark document: one of the
// variants named in the package documentation's data model. Block is a
// tagged union rather than an interface hierarchy: every field is either
// shared by all kinds or is a kind-specific scalar, so the AST never
// needs virtual dispatch to walk or render.
//
// Leaf blocks that carry text (Paragraph, Heading, CodeBlock, HtmlBlock,
// Table cells) store it as already-materialized, pre-inline raw content
// (span or raw); the inline item stream described in the package's data
// model is produced on demand from that raw content by the inline
// scanner, not carried in the persisted tree.
type Block struct {
	kind BlockKind
	span Span // byte range in the owning RootBlock.Source

	blockChildren []*Block // populated for container kinds

	raw     string   // pre-inline raw text: Paragraph, Heading
	literal string   // verbatim text: CodeBlock, HtmlBlock
	info    string   // fenced code info string
	cells   []string // TableKind: header cells
	rows    [][]string

	// buf accumulates raw bytes while the block is open; the parser
	// appends to it line by line and copies it into raw/literal when the
	// block closes. Always nil on a finished tree returned to a caller.
	buf []byte

	// refs is the document's link reference map, stamped onto every leaf
	// block once parsing finishes so Inlines can resolve reference-style
	// links without a separate parameter.
	refs referenceMap

	// indent is a kind-specific datum.
	// For BlockQuoteKind, the column immediately after its "> " marker.
	// For ListItemKind, the content column continuation lines must meet.
	// For FencedCodeBlockKind, the number of columns stripped from the
	// start of each content line.
	indent int

	// n is a kind-specific datum.
	// For ATXHeadingKind and SetextHeadingKind, the heading level 1-6.
	// For FencedCodeBlockKind, the number of characters in the opening
	// fence.
	// For HTMLBlockKind, the index into htmlBlockConditions that opened
	// this block.
	// For ListKind, the first item's start number (0 for bullet lists).
	n int

	// char is a kind-specific datum.
	// For ListKind and ListItemKind, the marker's delimiter byte
	// ('-', '*', '+', '.', or ')').
	// For FencedCodeBlockKind, the fence character ('`' or '~').
	char byte

	// checked is valid for ListItemKind when the document was parsed
	// with task lists enabled and this item began with a checkbox.
	checked taskState

	alignments []ColumnAlignment // valid for TableKind

	listLoose     bool // valid for ListKind; never set on ListItemKind
	lastLineBlank bool // whether the line immediately before this block closed was blank
}

// BlockKind is a tag identifying which variant of the block sum type a
// Block value holds.
type BlockKind int

const (
	documentKind BlockKind = iota
	// ParagraphKind is a run of inline content terminated by a blank
	// line or a construct that interrupts paragraphs.
	ParagraphKind
	// ThematicBreakKind is a horizontal rule.
	ThematicBreakKind
	// ATXHeadingKind is a "# heading" style heading.
	ATXHeadingKind
	// SetextHeadingKind is a heading formed by underlining a paragraph
	// with '=' or '-'.
	SetextHeadingKind
	// IndentedCodeBlockKind is a code block formed by ≥4 columns of
	// indentation.
	IndentedCodeBlockKind
	// FencedCodeBlockKind is a code block delimited by a run of '`' or
	// '~' characters.
	FencedCodeBlockKind
	// HTMLBlockKind is a block of raw HTML passed through verbatim.
	HTMLBlockKind
	// BlockQuoteKind is a '>'-prefixed container.
	BlockQuoteKind
	// ListKind is a bullet or ordered list container.
	ListKind
	// ListItemKind is a single item of a ListKind.
	ListItemKind
	// TableKind is a GFM pipe table.
	TableKind
)

// ColumnAlignment is the declared text alignment of a table column,
// parsed from its delimiter-row cell.
type ColumnAlignment int

const (
	AlignNone ColumnAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// taskState is the tri-state checkbox status of a ListItemKind block.
type taskState int8

const (
	taskNone taskState = iota
	taskUnchecked
	taskChecked
)

// Kind reports which variant of the block sum type b holds.
func (b *Block) Kind() BlockKind { return b.kind }

// Span reports the byte range b occupies within its RootBlock's Source.
func (b *Block) Span() Span { return b.span }

// ChildCount reports the number of child blocks b holds.
func (b *Block) ChildCount() int { return len(b.blockChildren) }

// Child returns the i'th child of b as a Node.
func (b *Block) Child(i int) Node { return b.blockChildren[i].AsNode() }

// ChildBlocks returns b's child blocks, for container kinds.
func (b *Block) ChildBlocks() []*Block { return b.blockChildren }

// Raw returns the pre-inline raw text of a Paragraph or Heading block.
func (b *Block) Raw() string { return b.raw }

// Literal returns the verbatim content of a CodeBlock or HtmlBlock block.
func (b *Block) Literal() string { return b.literal }

// Info returns the fenced code info string of a CodeBlock block.
func (b *Block) Info() string { return b.info }

// Inlines resolves and returns the inline item stream of a leaf block's
// raw content, per opts. It is computed fresh on every call: the
// persisted tree carries only raw text, matching the data model's
// `Paragraph { raw }` / `Heading { raw }` variants.
func (b *Block) Inlines(opts Options) []*Inline {
	return scanAndResolveInlines(b.raw, opts, b.refs)
}

// HeadingLevel reports the level (1-6) of an ATXHeadingKind or
// SetextHeadingKind block.
func (b *Block) HeadingLevel() int { return b.n }

// FenceIndent returns the number of columns stripped from each content
// line of a FencedCodeBlockKind block.
func (b *Block) FenceIndent() int { return b.indent }

// ListOrdered reports whether a ListKind or ListItemKind block is an
// ordered ('.'/'))') list rather than a bullet ('-','*','+') list.
func (b *Block) ListOrdered() bool {
	return b.char == '.' || b.char == ')'
}

// ListMarker returns the delimiter byte of a ListKind/ListItemKind block.
func (b *Block) ListMarker() byte { return b.char }

// ListStart returns the first item's start number of a ListKind block
// (0 for bullet lists).
func (b *Block) ListStart() int { return b.n }

// ListTight reports whether a ListKind block renders tight (no <p>
// wrapper around single-paragraph items).
func (b *Block) ListTight() bool { return !b.listLoose }

// TaskChecked reports the tri-state checkbox status of a ListItemKind
// block: -1 none, 0 unchecked, 1 checked.
func (b *Block) TaskChecked() int {
	switch b.checked {
	case taskUnchecked:
		return 0
	case taskChecked:
		return 1
	default:
		return -1
	}
}

// TableAlignments returns the per-column alignment of a TableKind block.
func (b *Block) TableAlignments() []ColumnAlignment { return b.alignments }

// TableHeader returns the raw, pre-inline header cell text of a
// TableKind block.
func (b *Block) TableHeader() []string { return b.cells }

// TableRows returns the raw, pre-inline cell text of a TableKind block's
// body rows.
func (b *Block) TableRows() [][]string { return b.rows }

// An Inline is an item of a leaf block's resolved inline content stream,
// produced by the inline scanner and emphasis resolver. Like Block,
// Inline is a tagged union rather than an interface hierarchy.
type Inline struct {
	kind InlineKind
	span Span // byte range into the owning block's raw content, when rangeful

	// text holds materialized text for TextOwnedKind, CodeSpanKind
	// (owned form), RawHTMLKind/AutolinkKind ranges' literal text, and
	// the resolved destination for LinkKind/ImageKind.
	text string

	title    string // resolved title for LinkKind/ImageKind
	hasTitle bool

	n int // not set by the inline scanner; the kind alone names the emphasis tag

	char byte // '@' marks an AutolinkKind as an email address

	children []*Inline // resolved content of emphasis/strong/link/image

	isImage bool
}

// InlineKind is a tag identifying which variant of the inline item sum
// type an Inline value holds.
type InlineKind int

const (
	// TextKind is a zero-copy range of literal text into the owning
	// block's raw content.
	TextKind InlineKind = iota
	// TextOwnedKind is materialized text (e.g. an entity's decoded
	// UTF-8, or the character a backslash escape stands for) that
	// cannot be expressed as a raw-content range.
	TextOwnedKind
	// CodeSpanKind is the content of a backtick code span.
	CodeSpanKind
	// RawHTMLKind is a range of raw inline HTML passed through
	// verbatim.
	RawHTMLKind
	// AutolinkKind is a "<scheme:...>" or "<local@domain>" autolink, or
	// (with the bare-autolink extension enabled) a recognized bare URL
	// or email address.
	AutolinkKind
	// SoftBreakKind is a line break within a paragraph that renders as
	// a newline. Under HardBreaks the scanner emits HardBreakKind in its
	// place.
	SoftBreakKind
	// HardBreakKind is an explicit hard line break ("  \n" or "\\\n").
	HardBreakKind
	// EmphasisKind wraps content in <em>.
	EmphasisKind
	// StrongKind wraps content in <strong>.
	StrongKind
	// StrikethroughKind wraps content in <del> (extension).
	StrikethroughKind
	// HighlightKind wraps content in <mark> (extension).
	HighlightKind
	// UnderlineKind wraps content in <u> (extension).
	UnderlineKind
	// LinkKind wraps content in <a href=...>.
	LinkKind
	// ImageKind renders as <img src=... alt=... />, flattening its
	// children to alt text.
	ImageKind
)

// AutolinkIsEmail reports whether an AutolinkKind item is an email
// address rather than a URI.
func (in *Inline) AutolinkIsEmail() bool { return in.char == '@' }

// Kind reports which variant of the inline item sum type in holds.
func (in *Inline) Kind() InlineKind { return in.kind }

// Span reports the byte range in occupies in its owning block's raw
// content, for range-addressed kinds; it is invalid otherwise.
func (in *Inline) Span() Span { return in.span }

// Text returns materialized text for TextOwnedKind/CodeSpanKind/
// RawHTMLKind/AutolinkKind items.
func (in *Inline) Text() string { return in.text }

// Children returns the resolved content of an emphasis/strong/extension/
// link/image item.
func (in *Inline) Children() []*Inline { return in.children }

// ChildCount reports the number of resolved children in holds.
func (in *Inline) ChildCount() int { return len(in.children) }

// Child returns the i'th resolved child of in.
func (in *Inline) Child(i int) *Inline { return in.children[i] }

// LinkDestination returns the resolved destination of a LinkKind or
// ImageKind item.
func (in *Inline) LinkDestination() string { return in.text }

// LinkTitle returns the resolved title of a LinkKind or ImageKind item,
// if one was present.
func (in *Inline) LinkTitle() (title string, ok bool) {
	return in.title, in.hasTitle
}

// IsImage reports whether a LinkKind/ImageKind item renders as <img>.
func (in *Inline) IsImage() bool { return in.isImage }
