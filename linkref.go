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

// rawLinkDef is one parsed "[label]: dest (title)?" construct, as byte
// spans into the paragraph's raw source.
type rawLinkDef struct {
	label       Span
	destination Span
	title       Span
	hasTitle    bool
}

// extractLinkReferenceDefinitions repeatedly parses link reference
// definitions from the head of src (a paragraph or setext heading's flat
// raw content), per §4.3. It returns the parsed definitions and the
// offset within src where non-definition content begins (len(src) if the
// whole block was consumed).
//
// Grounded on the teacher's onCloseParagraph in blocks.go, simplified:
// this package flattens a leaf block's source lines into one buffer
// before any inline-level parsing runs, so the parser here is a plain
// byte-offset cursor rather than the teacher's line-spanning
// inlineByteReader. The re-try-on-title-failure rule (§9 Open Question)
// is preserved: on title failure the cursor rewinds to the position
// captured right after the destination, never re-parsing the
// destination itself.
func extractLinkReferenceDefinitions(src []byte) (defs []rawLinkDef, bodyStart int) {
	pos := 0
	for {
		label, ok := parseLinkLabelSpan(src, pos)
		if !ok {
			return defs, pos
		}
		i := label.End + 1 // past the closing ']'
		if i >= len(src) || src[i] != ':' {
			return defs, pos
		}
		i++
		i = skipLinkRefSpace(src, i)
		if i < 0 {
			return defs, pos
		}
		dest, destEnd, ok := parseLinkDestinationSpan(src, i)
		if !ok {
			return defs, pos
		}
		i = destEnd

		afterDest := i
		destLineEnd, destEOLOK := readLinkRefEOL(src, i)
		if !destEOLOK {
			spaceEnd := skipLinkRefSpace(src, i)
			if spaceEnd < 0 || spaceEnd == afterDest {
				// Nothing, or unseparated garbage, follows the
				// destination on this line: not a definition.
				return defs, pos
			}
		}

		spaceEnd := skipLinkRefSpace(src, afterDest)
		if spaceEnd < 0 {
			// End of input right after the destination: a valid
			// definition without a title.
			defs = append(defs, rawLinkDef{label: label, destination: dest})
			return defs, len(src)
		}

		title, titleEnd, titleOK := parseLinkTitleSpan(src, spaceEnd)
		if titleOK {
			if lineEnd, ok := readLinkRefEOL(src, titleEnd); ok {
				defs = append(defs, rawLinkDef{label: label, destination: dest, title: title, hasTitle: true})
				pos = lineEnd
				continue
			}
			if !destEOLOK {
				return defs, pos
			}
			// Title parsed but trailing garbage follows on its line;
			// fall back to the destination-only form.
			titleOK = false
		}
		if !titleOK {
			if !destEOLOK {
				return defs, pos
			}
			defs = append(defs, rawLinkDef{label: label, destination: dest})
			pos = destLineEnd
			continue
		}
	}
}

// parseLinkLabelSpan parses "[...]" at src[pos], forbidding an unescaped
// nested '[' and requiring length ≤ 999 for the inner content, returning
// the inner span (between the brackets).
func parseLinkLabelSpan(src []byte, pos int) (inner Span, ok bool) {
	if pos >= len(src) || src[pos] != '[' {
		return Span{}, false
	}
	i := pos + 1
	start := i
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\\' && i+1 < len(src) && isASCIIPunctuation(src[i+1]):
			i += 2
			continue
		case c == '[':
			return Span{}, false
		case c == ']':
			if i-start > 999 {
				return Span{}, false
			}
			if isAllWhitespace(src[start:i]) {
				return Span{}, false
			}
			_ = i + 1
			return Span{Start: start, End: i}, true
		}
		i++
	}
	return Span{}, false
}

func isAllWhitespace(b []byte) bool {
	for _, c := range b {
		if !isSpaceTabOrLineEnding(c) {
			return false
		}
	}
	return true
}

// skipLinkRefSpace skips spaces, tabs, and at most one line ending,
// returning the new offset, or -1 if it runs off the end of src.
func skipLinkRefSpace(src []byte, pos int) int {
	i := pos
	for i < len(src) && isSpaceOrTab(src[i]) {
		i++
	}
	if i < len(src) && isLineEnding(src[i]) {
		i += eolLen(src[i:])
		for i < len(src) && isSpaceOrTab(src[i]) {
			i++
		}
	}
	if i >= len(src) {
		return -1
	}
	return i
}

func eolLen(b []byte) int {
	if len(b) >= 1 && b[0] == '\n' {
		return 1
	}
	return 0
}

// parseLinkDestinationSpan parses a link destination at src[pos]: either
// an angle-bracketed form or a bare form with balanced parentheses up to
// depth 32. Returns the destination's text span (for entity/escape
// resolution by the caller) and the offset immediately after it.
func parseLinkDestinationSpan(src []byte, pos int) (text Span, end int, ok bool) {
	if pos < len(src) && src[pos] == '<' {
		i := pos + 1
		start := i
		for i < len(src) {
			switch src[i] {
			case '\\':
				if i+1 < len(src) && isASCIIPunctuation(src[i+1]) {
					i += 2
					continue
				}
			case '>':
				return Span{Start: start, End: i}, i + 1, true
			case '<', '\n':
				return Span{}, 0, false
			}
			i++
		}
		return Span{}, 0, false
	}

	i := pos
	start := i
	depth := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\\' && i+1 < len(src) && isASCIIPunctuation(src[i+1]):
			i += 2
			continue
		case c == '(':
			depth++
			if depth > 32 {
				return Span{}, 0, false
			}
		case c == ')':
			if depth == 0 {
				goto doneBare
			}
			depth--
		case isSpaceTabOrLineEnding(c) || c < 0x20 && c != '\t':
			goto doneBare
		}
		i++
	}
doneBare:
	if depth != 0 || i == start {
		return Span{}, 0, false
	}
	return Span{Start: start, End: i}, i, true
}

// parseLinkTitleSpan parses a link title in "...", '...', or (...) form
// at src[pos]. Returns the inner text span and the offset immediately
// after the closing delimiter.
func parseLinkTitleSpan(src []byte, pos int) (text Span, end int, ok bool) {
	if pos >= len(src) {
		return Span{}, 0, false
	}
	var closer byte
	switch src[pos] {
	case '"':
		closer = '"'
	case '\'':
		closer = '\''
	case '(':
		closer = ')'
	default:
		return Span{}, 0, false
	}
	i := pos + 1
	start := i
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\\' && i+1 < len(src) && isASCIIPunctuation(src[i+1]):
			i += 2
			continue
		case c == closer:
			return Span{Start: start, End: i}, i + 1, true
		case closer == ')' && c == '(':
			return Span{}, 0, false
		}
		i++
	}
	return Span{}, 0, false
}

// readLinkRefEOL reports whether, after skipping trailing spaces/tabs
// from pos, the rest of the current line is empty (i.e. only a line
// ending or end-of-input follows). If so it returns the offset just past
// that line ending (or len(src) at EOF).
func readLinkRefEOL(src []byte, pos int) (lineEnd int, ok bool) {
	i := pos
	for i < len(src) && isSpaceOrTab(src[i]) {
		i++
	}
	if i >= len(src) {
		return i, true
	}
	if src[i] == '\n' {
		return i + 1, true
	}
	return 0, false
}
