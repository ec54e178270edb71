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

import "golang.org/x/net/html/atom"

// This file holds the stateless block-construct recognizers: pure
// functions from a line's bytes (indentation already stripped by the
// caller) to a parsed result, with no side effects on parser state. The
// block parser (parser.go) is the only caller and owns all the
// stack-mutating decisions; grounded on the teacher's top-level
// parseThematicBreak/parseATXHeading/parseSetextHeadingUnderline/
// parseCodeFence/parseListMarker functions in blocks.go, which follow the
// same pure-function shape.

// parseThematicBreak reports the end offset of a thematic break's marker
// characters, or -1 if line is not a thematic break. Assumes leading
// indentation has already been stripped.
func parseThematicBreak(line []byte) (end int) {
	n := 0
	var want byte
	for i, b := range line {
		switch b {
		case '-', '_', '*':
			if n == 0 {
				want = b
			} else if b != want {
				return -1
			}
			n++
			end = i + 1
		case ' ', '\t', '\r', '\n':
		default:
			return -1
		}
	}
	if n < 3 {
		return -1
	}
	return end
}

// atxHeading is the result of parseATXHeading: level is zero if line is
// not an ATX heading.
type atxHeading struct {
	level   int
	content Span
}

// parseATXHeading attempts to parse line as an ATX heading. Assumes
// leading indentation has already been stripped.
func parseATXHeading(line []byte) atxHeading {
	var h atxHeading
	for h.level < len(line) && line[h.level] == '#' {
		h.level++
	}
	if h.level == 0 || h.level > 6 {
		return atxHeading{}
	}

	i := h.level
	if i >= len(line) || line[i] == '\n' || line[i] == '\r' {
		h.content = Span{Start: i, End: i}
		return h
	}
	if line[i] != ' ' && line[i] != '\t' {
		return atxHeading{}
	}
	i++
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	h.content.Start = i

	h.content.End = len(line)
	hitHash := false
scanBack:
	for ; h.content.End > h.content.Start; h.content.End-- {
		switch line[h.content.End-1] {
		case '\r', '\n':
		case ' ', '\t':
			if isEndEscaped(line[:h.content.End-1]) {
				break scanBack
			}
		case '#':
			hitHash = true
			break scanBack
		default:
			break scanBack
		}
	}
	if !hitHash {
		return h
	}

scanTrailingHashes:
	for i := h.content.End - 1; ; i-- {
		if i <= h.content.Start {
			h.content.End = h.content.Start
			break
		}
		switch line[i] {
		case '#':
		case ' ', '\t':
			h.content.End = i + 1
			break scanTrailingHashes
		default:
			return h
		}
	}
	for ; h.content.End > h.content.Start; h.content.End-- {
		if b := line[h.content.End-1]; !(b == ' ' || b == '\t') || isEndEscaped(line[:h.content.End-1]) {
			break
		}
	}
	return h
}

// parseSetextHeadingUnderline returns the heading level (1 or 2) if line
// is a setext heading underline, or 0 otherwise. Assumes leading
// indentation has already been stripped.
func parseSetextHeadingUnderline(line []byte) (level int) {
	if len(line) == 0 {
		return 0
	}
	switch line[0] {
	case '=':
		level = 1
	case '-':
		level = 2
	default:
		return 0
	}
	for i := 1; i < len(line); i++ {
		if line[i] != line[0] {
			if !isBlankLine(line[i:]) {
				return 0
			}
			return level
		}
	}
	return level
}

// codeFence is the result of parseCodeFence: n is 0 if line does not open
// a fence.
type codeFence struct {
	char byte // '`' or '~'
	n    int
	info Span
}

// parseCodeFence attempts to parse a code fence at the start of line.
// Assumes leading indentation has already been stripped.
func parseCodeFence(line []byte) codeFence {
	const minConsecutive = 3
	if len(line) < minConsecutive || (line[0] != '`' && line[0] != '~') {
		return codeFence{info: NullSpan()}
	}
	f := codeFence{char: line[0], n: 1, info: NullSpan()}
	for f.n < len(line) && line[f.n] == f.char {
		f.n++
	}
	if f.n < minConsecutive {
		return codeFence{info: NullSpan()}
	}
	for i := f.n; i < len(line) && f.info.Start < 0; i++ {
		if c := line[i]; !isSpaceTabOrLineEnding(c) {
			f.info.Start = i
		}
	}
	if f.info.Start >= 0 {
		for f.info.End = len(line); f.info.End > f.info.Start; f.info.End-- {
			if c := line[f.info.End-1]; !isSpaceTabOrLineEnding(c) {
				break
			}
		}
		if f.char == '`' {
			for i := f.info.Start; i < f.info.End; i++ {
				if line[i] == '`' {
					return codeFence{info: NullSpan()}
				}
			}
		}
	}
	return f
}

// fenceCloses reports whether line (indentation already stripped, indent
// itself separately bounded to ≤3 columns by the caller) closes a fence
// opened with openChar repeated openCount times.
func fenceCloses(line []byte, openChar byte, openCount int) bool {
	f := parseCodeFence(line)
	return f.n > 0 && !f.info.IsValid() && f.char == openChar && f.n >= openCount
}

// listMarker is the result of parseListMarker: end is -1 if line does not
// begin with a marker.
type listMarker struct {
	delim byte // '-', '+', '*', '.', or ')'
	n     int  // parsed start number; 0 for bullets
	end   int  // byte offset immediately after the marker
}

func (m listMarker) isOrdered() bool {
	return m.delim == '.' || m.delim == ')'
}

// parseListMarker attempts to parse a list marker at the start of line.
// Assumes leading indentation has already been stripped.
func parseListMarker(line []byte) listMarker {
	if len(line) == 0 {
		return listMarker{end: -1}
	}
	var n int
	switch c := line[0]; {
	case c == '-' || c == '+' || c == '*':
		if !hasTabOrSpacePrefixOrEOL(line[1:]) {
			return listMarker{end: -1}
		}
		return listMarker{delim: line[0], end: 1}
	case isASCIIDigit(c):
		n = int(c - '0')
	default:
		return listMarker{end: -1}
	}
	const maxDigits = 9
	for i := 1; i < maxDigits+1 && i < len(line); i++ {
		switch c := line[i]; {
		case isASCIIDigit(c):
			n = n*10 + int(c-'0')
		case c == '.' || c == ')':
			if !hasTabOrSpacePrefixOrEOL(line[i+1:]) {
				return listMarker{end: -1}
			}
			return listMarker{delim: c, n: n, end: i + 1}
		default:
			return listMarker{end: -1}
		}
	}
	return listMarker{end: -1}
}

// hasTabOrSpacePrefixOrEOL reports whether b is empty or begins with a
// space, tab, or line ending — the required terminator after a list
// marker.
func hasTabOrSpacePrefixOrEOL(b []byte) bool {
	return len(b) == 0 || isSpaceTabOrLineEnding(b[0])
}

// htmlBlockCondition pairs a block-start recognizer with its matching end
// condition, per the seven HTML block start types.
type htmlBlockCondition struct {
	start                 func(line []byte) bool
	end                   func(line []byte) bool
	canInterruptParagraph bool
}

var htmlBlockConditions = []htmlBlockCondition{
	{ // type 1: <script>, <pre>, <style>, <textarea>
		start: func(line []byte) bool {
			for _, starter := range htmlBlockStarters1 {
				if hasCaseInsensitiveBytePrefix(line, starter) {
					rest := line[len(starter):]
					if len(rest) == 0 || isSpaceTabOrLineEnding(rest[0]) || rest[0] == '>' {
						return true
					}
				}
			}
			return false
		},
		end: func(line []byte) bool {
			for _, ender := range htmlBlockEnders1 {
				if caseInsensitiveContains(line, ender) {
					return true
				}
			}
			return false
		},
		canInterruptParagraph: true,
	},
	{ // type 2: <!--
		start: func(line []byte) bool { return hasBytePrefix(line, "<!--") },
		end:   func(line []byte) bool { return containsBytes(line, "-->") },
		canInterruptParagraph: true,
	},
	{ // type 3: <?
		start: func(line []byte) bool { return hasBytePrefix(line, "<?") },
		end:   func(line []byte) bool { return containsBytes(line, "?>") },
		canInterruptParagraph: true,
	},
	{ // type 4: <!LETTER
		start: func(line []byte) bool {
			return hasBytePrefix(line, "<!") && len(line) >= 3 && isASCIILetter(line[2])
		},
		end:                   func(line []byte) bool { return containsBytes(line, ">") },
		canInterruptParagraph: true,
	},
	{ // type 5: <![CDATA[
		start: func(line []byte) bool { return hasBytePrefix(line, "<![CDATA[") },
		end:   func(line []byte) bool { return containsBytes(line, "]]>") },
		canInterruptParagraph: true,
	},
	{ // type 6: block-level tag name from a fixed list
		start: func(line []byte) bool {
			var rest []byte
			switch {
			case hasBytePrefix(line, "</"):
				rest = line[2:]
			case hasBytePrefix(line, "<"):
				rest = line[1:]
			default:
				return false
			}
			for _, starter := range htmlBlockStarters6 {
				if hasCaseInsensitiveBytePrefix(rest, starter) {
					tail := rest[len(starter):]
					if len(tail) == 0 || isSpaceTabOrLineEnding(tail[0]) || tail[0] == '>' || hasBytePrefix(tail, "/>") {
						return true
					}
				}
			}
			return false
		},
		end:                   isBlankLine,
		canInterruptParagraph: true,
	},
	{ // type 7: any other complete open/closing tag, alone on its line
		start: func(line []byte) bool {
			if !hasBytePrefix(line, "<") {
				return false
			}
			rest := line[1:]
			var tagEnd int
			if hasBytePrefix(rest, "/") {
				tagEnd = parseHTMLClosingTag(rest)
			} else {
				tagEnd = parseHTMLOpenTag(rest)
			}
			if tagEnd < 0 {
				return false
			}
			return isBlankLine(rest[tagEnd:])
		},
		end:                   isBlankLine,
		canInterruptParagraph: false,
	},
}

var htmlBlockStarters1 = []string{"<pre", "<script", "<style", "<textarea"}
var htmlBlockEnders1 = []string{"</pre>", "</script>", "</style>", "</textarea>"}

// htmlBlockStarters6 is the fixed, case-insensitive tag-name list that
// opens an HTML block of type 6. Sourced through golang.org/x/net/html/atom
// for its interned, canonical tag-name strings rather than a hand-copied
// literal list.
var htmlBlockStarters6 = []string{
	atom.Address.String(), atom.Article.String(), atom.Aside.String(),
	atom.Base.String(), atom.Basefont.String(), atom.Blockquote.String(),
	atom.Body.String(), atom.Caption.String(), atom.Center.String(),
	atom.Col.String(), atom.Colgroup.String(), atom.Dd.String(),
	atom.Details.String(), atom.Dialog.String(), atom.Dir.String(),
	atom.Div.String(), atom.Dl.String(), atom.Dt.String(),
	atom.Fieldset.String(), atom.Figcaption.String(), atom.Figure.String(),
	atom.Footer.String(), atom.Form.String(), atom.Frame.String(),
	atom.Frameset.String(), atom.H1.String(), atom.H2.String(),
	atom.H3.String(), atom.H4.String(), atom.H5.String(), atom.H6.String(),
	atom.Head.String(), atom.Header.String(), atom.Hr.String(),
	atom.Html.String(), atom.Iframe.String(), atom.Legend.String(),
	atom.Li.String(), atom.Link.String(), atom.Main.String(),
	atom.Menu.String(), atom.Menuitem.String(), atom.Nav.String(),
	atom.Noframes.String(), atom.Ol.String(), atom.Optgroup.String(),
	atom.Option.String(), atom.P.String(), atom.Param.String(),
	atom.Section.String(), atom.Source.String(), atom.Summary.String(),
	atom.Table.String(), atom.Tbody.String(), atom.Td.String(),
	atom.Tfoot.String(), atom.Th.String(), atom.Thead.String(),
	atom.Title.String(), atom.Tr.String(), atom.Track.String(),
	atom.Ul.String(),
}

// tableSeparatorRow reports whether line is a valid pipe-table delimiter
// row, and if so returns the per-column alignments it declares.
func tableSeparatorRow(line []byte) (aligns []ColumnAlignment, ok bool) {
	cells := splitTableCells(line)
	if len(cells) == 0 {
		return nil, false
	}
	aligns = make([]ColumnAlignment, 0, len(cells))
	for _, cell := range cells {
		cell = trimSpaceBytes(cell)
		if len(cell) == 0 {
			return nil, false
		}
		left := cell[0] == ':'
		right := cell[len(cell)-1] == ':'
		body := cell
		if left {
			body = body[1:]
		}
		if right && len(body) > 0 {
			body = body[:len(body)-1]
		}
		if len(body) == 0 {
			return nil, false
		}
		for _, c := range body {
			if c != '-' {
				return nil, false
			}
		}
		switch {
		case left && right:
			aligns = append(aligns, AlignCenter)
		case left:
			aligns = append(aligns, AlignLeft)
		case right:
			aligns = append(aligns, AlignRight)
		default:
			aligns = append(aligns, AlignNone)
		}
	}
	return aligns, true
}

// tableRowCells splits a pipe-table row into raw (unescaped) cell byte
// ranges relative to line, each trimmed of surrounding spaces and tabs,
// honoring escaped "\|" as literal content rather than a separator.
func tableRowCells(line []byte) []Span {
	trimmed := trimSpaceBytesSpan(line)
	if trimmed.Len() == 0 {
		return nil
	}
	body := line[trimmed.Start:trimmed.End]
	start := 0
	if len(body) > 0 && body[0] == '|' {
		start = 1
	}
	end := len(body)
	if end > start && body[end-1] == '|' && !isEndEscapedAt(body, end-1) {
		end--
	}
	var spans []Span
	addCell := func(s, e int) {
		for s < e && isSpaceOrTab(body[s]) {
			s++
		}
		for e > s && isSpaceOrTab(body[e-1]) {
			e--
		}
		spans = append(spans, Span{Start: trimmed.Start + s, End: trimmed.Start + e})
	}
	cellStart := start
	i := start
	for i < end {
		if body[i] == '\\' && i+1 < end {
			i += 2
			continue
		}
		if body[i] == '|' {
			addCell(cellStart, i)
			cellStart = i + 1
		}
		i++
	}
	addCell(cellStart, end)
	return spans
}

// isEndEscapedAt reports whether the byte at index i in b is escaped by
// an odd run of preceding backslashes.
func isEndEscapedAt(b []byte, i int) bool {
	return isEndEscaped(b[:i])
}

// splitTableCells splits line into pipe-delimited cell byte slices for
// the purpose of recognizing a table separator row (where escape
// sequences are irrelevant, since cells may only contain ':'/'-').
func splitTableCells(line []byte) [][]byte {
	trimmed := trimSpaceBytes(line)
	if !containsBytes(trimmed, "|") {
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '|' {
		trimmed = trimmed[1:]
	}
	if len(trimmed) > 0 && trimmed[len(trimmed)-1] == '|' {
		trimmed = trimmed[:len(trimmed)-1]
	}
	if len(trimmed) == 0 {
		return nil
	}
	var cells [][]byte
	start := 0
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] == '|' {
			cells = append(cells, trimmed[start:i])
			start = i + 1
		}
	}
	cells = append(cells, trimmed[start:])
	return cells
}

func trimSpaceBytes(b []byte) []byte {
	start := 0
	for start < len(b) && isSpaceTabOrLineEnding(b[start]) {
		start++
	}
	end := len(b)
	for end > start && isSpaceTabOrLineEnding(b[end-1]) {
		end--
	}
	return b[start:end]
}

func trimSpaceBytesSpan(b []byte) Span {
	start := 0
	for start < len(b) && isSpaceTabOrLineEnding(b[start]) {
		start++
	}
	end := len(b)
	for end > start && isSpaceTabOrLineEnding(b[end-1]) {
		end--
	}
	return Span{Start: start, End: end}
}
