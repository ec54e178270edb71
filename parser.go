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

// This file is the block-structure state machine described in the
// package documentation's parsing algorithm: for each line, descend the
// chain of open containers as far as they continue, close what no longer
// matches, open whatever new constructs the remaining text starts, and
// either hand the remainder to the open leaf block or start a fresh one.
//
// Grounded on the teacher's blockStarts/blockRules dispatch and
// lineParser in blocks.go, restructured around two kinds of open state
// rather than one undifferentiated stack: a chain of open containers
// (document, block quotes, list items) that may nest, and at most one
// open leaf (paragraph, heading candidate, code block, HTML block,
// table) hanging off the deepest container, since leaves never contain
// block children.

type blockParser struct {
	opts Options
	refs referenceMap

	containers []*Block // containers[0] is the document
	openLeaf   *Block   // nil, or the leaf block still accepting lines
}

// parseDocument parses source (already normalized by Preprocess) into a
// block tree and the reference map accumulated from its link reference
// definitions.
func parseDocument(source []byte, opts Options) (*Block, referenceMap) {
	p := &blockParser{
		opts:       opts,
		refs:       make(referenceMap),
		containers: []*Block{{kind: documentKind}},
	}
	for _, line := range splitLines(source) {
		p.processLine(line)
	}
	p.closeLeaf(len(source))
	for len(p.containers) > 1 {
		p.closeContainer(len(source))
	}
	root := p.containers[0]
	finalizeListLooseness(root)
	stampRefs(root, p.refs)
	return root, p.refs
}

// stampRefs records the document's reference map on every block so
// Inlines can resolve reference-style links and images without a
// separate parameter.
func stampRefs(b *Block, refs referenceMap) {
	b.refs = refs
	for _, c := range b.blockChildren {
		stampRefs(c, refs)
	}
}

// splitLines splits src into lines, each including its trailing '\n'
// except possibly the last.
func splitLines(src []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, c := range src {
		if c == '\n' {
			lines = append(lines, src[start:i+1])
			start = i + 1
		}
	}
	if start < len(src) {
		lines = append(lines, src[start:])
	}
	return lines
}

func (p *blockParser) top() *Block { return p.containers[len(p.containers)-1] }

func (p *blockParser) processLine(line []byte) {
	cur := *newLineCursor(line)

	matched := 1 // containers[0], the document, always matches
	for matched < len(p.containers) {
		if !continuesContainer(p.containers[matched], &cur) {
			break
		}
		matched++
	}

	blank := cur.IsBlank()
	unmatchedStart := matched

	if p.openLeaf != nil && matched == len(p.containers) {
		if p.continueLeaf(&cur, blank) {
			p.updateBlankRun(blank)
			return
		}
	} else if p.openLeaf != nil && p.openLeaf.kind == ParagraphKind && !blank &&
		!startsInterruptingBlock(&cur, p.opts) && !startsListItem(cur) {
		// Lazy continuation: the paragraph absorbs this line even though
		// it didn't re-supply every enclosing container's marker.
		p.appendLeafLine(cur.Remainder())
		p.updateBlankRun(false)
		return
	}

	p.closeLeaf(cur.ByteOffset())
	for len(p.containers) > unmatchedStart {
		p.closeContainer(cur.ByteOffset())
	}

	p.openNewBlocks(&cur, blank)
	p.updateBlankRun(blank)
}

func (p *blockParser) updateBlankRun(blank bool) {
	p.top().lastLineBlank = blank
}

// continuesContainer reports whether cur continues c (a block quote or
// list item), consuming c's marker/indentation from cur if so.
func continuesContainer(c *Block, cur *lineCursor) bool {
	switch c.kind {
	case BlockQuoteKind:
		save := *cur
		ind := cur.PeekNonspaceColumn()
		if ind >= cur.Column()+4 {
			return false
		}
		cur.AdvanceToNonspace()
		if cur.AtEOL() || cur.Remainder()[0] != '>' {
			*cur = save
			return false
		}
		cur.AdvanceColumns(1) // consume '>'
		if !cur.AtEOL() && isSpaceOrTab(cur.Remainder()[0]) {
			cur.SkipIndent(1)
		}
		return true
	case ListItemKind:
		if cur.IsBlank() {
			return true
		}
		if cur.PeekNonspaceColumn() < c.indent {
			return false
		}
		cur.SkipIndent(c.indent - cur.Column())
		return true
	default:
		return true
	}
}

// startsInterruptingBlock reports whether the text remaining at cur
// begins a block construct allowed to interrupt an open paragraph.
func startsInterruptingBlock(cur *lineCursor, opts Options) bool {
	save := *cur
	defer func() { *cur = save }()

	ind := cur.PeekNonspaceColumn()
	if ind >= cur.Column()+4 {
		return false // indented code never interrupts a paragraph
	}
	cur.AdvanceToNonspace()
	rest := cur.Remainder()

	if parseThematicBreak(rest) >= 0 {
		return true
	}
	if h := parseATXHeading(rest); h.level > 0 {
		return true
	}
	if len(rest) > 0 && rest[0] == '>' {
		return true
	}
	if f := parseCodeFence(rest); f.n > 0 {
		return true
	}
	if m := parseListMarker(rest); m.end > 0 {
		if !m.isOrdered() || m.n == 1 {
			return true
		}
	}
	for i, cond := range htmlBlockConditions {
		if i == 6 { // type 7 never interrupts a paragraph
			continue
		}
		if cond.canInterruptParagraph && cond.start(rest) {
			return true
		}
	}
	if opts.EnableTables {
		if _, ok := tableSeparatorRow(rest); ok {
			return true
		}
	}
	return false
}

// startsListItem reports whether the text remaining at cur, after at
// most three columns of indentation, begins with any list marker. A line
// that did not continue every open container is not paragraph
// continuation text when it starts a list item, whatever its number.
func startsListItem(cur lineCursor) bool {
	if cur.PeekNonspaceColumn() >= cur.Column()+4 {
		return false
	}
	cur.AdvanceToNonspace()
	return parseListMarker(cur.Remainder()).end > 0
}

// continueLeaf attempts to feed cur's remaining content to p.openLeaf.
// It reports whether the leaf accepted the line; if not, the caller
// closes the leaf and tries to open something new in its place.
func (p *blockParser) continueLeaf(cur *lineCursor, blank bool) bool {
	leaf := p.openLeaf
	switch leaf.kind {
	case ParagraphKind:
		if blank {
			return false
		}
		if lvl := parseSetextHeadingUnderline(cur.Remainder()); lvl > 0 && singleLineRaw(leaf) {
			leaf.kind = SetextHeadingKind
			leaf.n = lvl
			p.closeLeaf(cur.ByteOffset())
			return true
		}
		if p.opts.EnableTables && leaf.buf == nil && countRawLines(leaf.raw) == 1 {
			if aligns, ok := tableSeparatorRow(cur.Remainder()); ok {
				if header, headOK := headerCellsFromSingleLine(leaf.raw); headOK && len(header) == len(aligns) {
					leaf.kind = TableKind
					leaf.cells = header
					leaf.alignments = aligns
					leaf.raw = ""
					return true
				}
			}
		}
		if startsInterruptingBlock(cur, p.opts) {
			return false
		}
		p.appendLeafLine(cur.Remainder())
		return true
	case TableKind:
		if blank || !containsBytes(cur.Remainder(), "|") {
			return false
		}
		row := tableRowCells(cur.Remainder())
		cells := make([]string, len(row))
		for i, s := range row {
			cells[i] = string(s.slice(cur.Remainder()))
		}
		leaf.rows = append(leaf.rows, reconcileColumns(cells, len(leaf.cells)))
		return true
	case IndentedCodeBlockKind:
		if blank {
			leaf.buf = append(leaf.buf, '\n')
			return true
		}
		if cur.PeekNonspaceColumn() < cur.Column()+4 {
			return false
		}
		cur.SkipIndent(4)
		leaf.buf = append(appendWithPartialTab(leaf.buf, cur), '\n')
		return true
	case FencedCodeBlockKind:
		stripped := stripFenceIndent(cur, leaf.indent)
		if fenceCloses(stripped, leaf.char, leaf.n) {
			p.closeLeaf(cur.ByteOffset())
			return true
		}
		leaf.buf = append(append(leaf.buf, trimTrailingEOL(stripped)...), '\n')
		return true
	case HTMLBlockKind:
		cond := htmlBlockConditions[leaf.n]
		line := trimTrailingEOL(cur.Remainder())
		leaf.buf = append(append(leaf.buf, line...), '\n')
		if leaf.n <= 4 && cond.end(cur.Remainder()) {
			p.closeLeaf(cur.ByteOffset())
			return true
		}
		if (leaf.n == 5 || leaf.n == 6) && blank {
			leaf.buf = leaf.buf[:len(leaf.buf)-len(line)-1]
			return false
		}
		return true
	default:
		return false
	}
}

func countRawLines(raw string) int {
	if raw == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\n' {
			n++
		}
	}
	return n
}

func singleLineRaw(b *Block) bool {
	return b.buf == nil && countRawLines(b.raw) <= 1
}

func headerCellsFromSingleLine(raw string) ([]string, bool) {
	if !containsBytes([]byte(raw), "|") {
		return nil, false
	}
	spans := tableRowCells([]byte(raw))
	if len(spans) == 0 {
		return nil, false
	}
	cells := make([]string, len(spans))
	for i, s := range spans {
		cells[i] = string(s.slice([]byte(raw)))
	}
	return cells, true
}

// reconcileColumns pads or truncates a parsed row to width columns, per
// the GFM rule that ragged rows are reconciled against the header.
func reconcileColumns(cells []string, width int) []string {
	if len(cells) == width {
		return cells
	}
	out := make([]string, width)
	copy(out, cells)
	return out
}

func stripFenceIndent(cur *lineCursor, indent int) []byte {
	if n := cur.PeekIndent(); n < indent {
		indent = n
	}
	cur.SkipIndent(indent)
	return cur.Remainder()
}

func (p *blockParser) appendLeafLine(line []byte) {
	leaf := p.openLeaf
	if leaf.buf == nil && leaf.raw != "" {
		leaf.buf = append(leaf.buf[:0], leaf.raw...)
		leaf.raw = ""
	}
	if len(leaf.buf) > 0 {
		leaf.buf = append(leaf.buf, '\n')
	}
	leaf.buf = append(leaf.buf, trimTrailingEOL(line)...)
}

// appendWithPartialTab appends cur's remainder to dst, materializing any
// partial-tab residue at the cursor as literal spaces.
func appendWithPartialTab(dst []byte, cur *lineCursor) []byte {
	pad, rest := cur.RemainderWithPartialTab()
	for i := 0; i < pad; i++ {
		dst = append(dst, ' ')
	}
	return append(dst, trimTrailingEOL(rest)...)
}

func trimTrailingEOL(line []byte) []byte {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}

// closeLeaf finalizes p.openLeaf, if any, appending it to the current
// deepest container's children.
func (p *blockParser) closeLeaf(end int) {
	leaf := p.openLeaf
	if leaf == nil {
		return
	}
	p.openLeaf = nil
	leaf.span.End = end

	switch leaf.kind {
	case ParagraphKind:
		raw := string(leaf.buf)
		if raw == "" {
			raw = leaf.raw
		}
		defs, bodyStart := extractLinkReferenceDefinitions([]byte(raw))
		for _, d := range defs {
			dest := string(d.destination.slice([]byte(raw)))
			def := linkDefinition{destination: dest}
			if d.hasTitle {
				def.title = string(d.title.slice([]byte(raw)))
				def.titlePresent = true
			}
			p.refs.define(string(d.label.slice([]byte(raw))), def)
		}
		leaf.buf = nil
		if bodyStart >= len(raw) {
			return // paragraph was entirely link reference definitions
		}
		leaf.raw = raw[bodyStart:]
	case SetextHeadingKind:
		raw := string(leaf.buf)
		leaf.buf = nil
		if raw == "" {
			raw = leafRawFallback(leaf)
		}
		leaf.raw = raw
	case IndentedCodeBlockKind:
		lit := trimTrailingBlankLines(leaf.buf)
		leaf.literal = string(lit)
		leaf.buf = nil
	case FencedCodeBlockKind:
		leaf.literal = string(leaf.buf)
		leaf.buf = nil
	case HTMLBlockKind:
		leaf.literal = string(leaf.buf)
		leaf.buf = nil
	case TableKind:
		// cells/alignments/rows already populated incrementally.
	}
	p.attach(leaf)
}

func leafRawFallback(b *Block) string { return b.raw }

func trimTrailingBlankLines(buf []byte) []byte {
	s := string(buf)
	for len(s) > 0 {
		nl := lastIndexByte(s, '\n')
		var lastLine string
		if nl < 0 {
			lastLine, s = s, ""
		} else {
			lastLine, s = s[nl+1:], s[:nl]
		}
		if !isBlankLine([]byte(lastLine)) {
			if nl < 0 {
				return []byte(lastLine)
			}
			return []byte(s + "\n" + lastLine + "\n")
		}
	}
	return nil
}

func lastIndexByte(s string, c byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func (p *blockParser) attach(b *Block) {
	parent := p.top()
	parent.blockChildren = append(parent.blockChildren, b)
}

// closeContainer finalizes the deepest open container.
func (p *blockParser) closeContainer(end int) {
	n := len(p.containers)
	c := p.containers[n-1]
	c.span.End = end
	p.containers = p.containers[:n-1]
	p.attach(c)
}

// openNewBlocks opens whatever block constructs the text remaining at
// cur begins, repeating for containers that can nest (block quote, list
// item) on the same line, and finally either starts a leaf or, for
// self-closing constructs (thematic break, ATX heading), appends it
// directly.
func (p *blockParser) openNewBlocks(cur *lineCursor, blank bool) {
	for {
		if blank {
			return
		}
		ind := cur.PeekNonspaceColumn()
		if ind < cur.Column()+4 {
			save := *cur
			cur.AdvanceToNonspace()
			rest := cur.Remainder()
			if len(rest) > 0 && rest[0] == '>' {
				bq := &Block{kind: BlockQuoteKind}
				cur.AdvanceColumns(1)
				if !cur.AtEOL() && isSpaceOrTab(cur.Remainder()[0]) {
					cur.SkipIndent(1)
				}
				bq.indent = cur.Column()
				p.containers = append(p.containers, bq)
				continue
			}
			if m := parseListMarker(rest); m.end > 0 {
				start := cur.Column()
				cur.AdvanceColumns(m.end)
				afterMarker := cur.Column()
				contentCol := afterMarker + 1
				if cur.AtEOL() || isBlankLine(cur.Remainder()) {
					contentCol = afterMarker + 1
				} else {
					pad := cur.PeekNonspaceColumn() - afterMarker
					if pad == 0 || pad > 4 {
						contentCol = afterMarker + 1
					} else {
						contentCol = cur.PeekNonspaceColumn()
					}
				}
				p.openListAndItem(m, start, contentCol)
				if n := contentCol - cur.Column(); n > 0 {
					if avail := cur.PeekIndent(); avail < n {
						n = avail
					}
					cur.SkipIndent(n)
				}
				if p.opts.EnableTaskLists {
					p.maybeConsumeTaskMarker(cur)
				}
				continue
			}
			*cur = save
		}
		break
	}

	indentCol := cur.PeekNonspaceColumn()
	relIndent := indentCol - cur.Column()
	if relIndent >= 4 && p.openLeaf == nil {
		cur.SkipIndent(4)
		leaf := &Block{kind: IndentedCodeBlockKind, span: Span{Start: cur.ByteOffset()}}
		leaf.buf = appendWithPartialTab(leaf.buf, cur)
		leaf.buf = append(leaf.buf, '\n')
		p.openLeaf = leaf
		return
	}

	cur.AdvanceToNonspace()
	rest := cur.Remainder()

	atxHead := parseATXHeading(rest)

	switch {
	case parseThematicBreak(rest) >= 0:
		p.attach(&Block{kind: ThematicBreakKind, span: Span{Start: cur.ByteOffset(), End: cur.ByteOffset() + len(rest)}})

	case atxHead.level > 0:
		p.attach(&Block{kind: ATXHeadingKind, n: atxHead.level, raw: string(atxHead.content.slice(rest))})

	case parseCodeFence(rest).n > 0:
		f := parseCodeFence(rest)
		leaf := &Block{
			kind:   FencedCodeBlockKind,
			char:   f.char,
			n:      f.n,
			indent: relIndent,
			span:   Span{Start: cur.ByteOffset()},
		}
		if f.info.IsValid() {
			leaf.info = unescapeInfoString(string(f.info.slice(rest)))
		}
		p.openLeaf = leaf

	case htmlBlockStart(rest) >= 0:
		idx := htmlBlockStart(rest)
		leaf := &Block{kind: HTMLBlockKind, n: idx, span: Span{Start: cur.ByteOffset()}}
		leaf.buf = append(leaf.buf, trimTrailingEOL(rest)...)
		leaf.buf = append(leaf.buf, '\n')
		if idx <= 4 && htmlBlockConditions[idx].end(rest) {
			leaf.literal = string(leaf.buf)
			leaf.buf = nil
			p.attach(leaf)
		} else {
			p.openLeaf = leaf
		}

	default:
		p.openLeaf = &Block{kind: ParagraphKind, span: Span{Start: cur.ByteOffset()}, raw: string(trimTrailingEOL(rest))}
	}
}

func htmlBlockStart(rest []byte) int {
	for i, cond := range htmlBlockConditions {
		if cond.start(rest) {
			return i
		}
	}
	return -1
}

// openListAndItem opens a ListItemKind, wrapping it in a fresh ListKind
// unless the current deepest container is already a matching list.
func (p *blockParser) openListAndItem(m listMarker, markerCol, contentCol int) {
	top := p.top()
	needNewList := !(top.kind == ListKind && top.char == m.delim)
	if needNewList {
		list := &Block{kind: ListKind, char: m.delim, n: m.n}
		p.containers = append(p.containers, list)
	}
	item := &Block{kind: ListItemKind, char: m.delim, n: m.n, indent: contentCol}
	p.containers = append(p.containers, item)
}

// maybeConsumeTaskMarker consumes a leading "[ ] "/"[x] " checkbox from
// the item's first line, recording its state on the open list item.
func (p *blockParser) maybeConsumeTaskMarker(cur *lineCursor) {
	item := p.top()
	if item.kind != ListItemKind {
		return
	}
	rest := cur.Remainder()
	if len(rest) < 3 || rest[0] != '[' || rest[2] != ']' {
		return
	}
	switch rest[1] {
	case ' ':
		item.checked = taskUnchecked
	case 'x', 'X':
		item.checked = taskChecked
	default:
		return
	}
	if len(rest) > 3 && isSpaceOrTab(rest[3]) {
		cur.AdvanceColumns(4)
	} else if len(rest) == 3 {
		cur.AdvanceColumns(3)
	} else {
		item.checked = taskNone
	}
}

// unescapeInfoString resolves backslash escapes and entities in a fenced
// code block's info string; its first word becomes the language tag in
// rendering.
func unescapeInfoString(s string) string {
	return resolveTextEscapes(s)
}

// finalizeListLooseness walks the finished tree marking each ListKind
// loose when a blank line separated any two of its items, or separated
// block-level content within an item, per the tight/loose rule.
func finalizeListLooseness(root *Block) {
	var walk func(b *Block)
	walk = func(b *Block) {
		for _, c := range b.blockChildren {
			walk(c)
		}
		if b.kind != ListKind {
			return
		}
		for i, item := range b.blockChildren {
			if item.lastLineBlank && i != len(b.blockChildren)-1 {
				b.listLoose = true
			}
			for j, sub := range item.blockChildren {
				if sub.lastLineBlank && j != len(item.blockChildren)-1 {
					b.listLoose = true
				}
			}
		}
	}
	walk(root)
}
