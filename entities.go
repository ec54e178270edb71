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

import (
	"html"
	"unicode/utf8"
)

// The named-entity table itself is treated as an external collaborator
// (§1 Out of scope): rather than hand-maintain the ~2,200-entry HTML5
// named character reference table, resolveNamedEntity delegates to the
// standard library's html package, which already carries that table for
// html.UnescapeString. cmark only needs single-entity, write-through
// semantics, so it reimplements the surrounding scan instead of using
// UnescapeString over a whole string.

// resolveEntity attempts to resolve a character reference beginning
// immediately after the '&' at src[0] (i.e. src does not include the '&').
// On success it returns the number of source bytes consumed (not including
// the leading '&') and writes the decoded UTF-8 bytes to dst, returning the
// extended slice. On failure it returns ok == false and leaves dst
// unmodified.
func resolveEntity(dst []byte, src []byte) (result []byte, consumed int, ok bool) {
	switch {
	case hasBytePrefix(src, "amp;"):
		return append(dst, '&'), 4, true
	case hasBytePrefix(src, "lt;"):
		return append(dst, '<'), 3, true
	case hasBytePrefix(src, "gt;"):
		return append(dst, '>'), 3, true
	case hasBytePrefix(src, "quot;"):
		return append(dst, '"'), 5, true
	case hasBytePrefix(src, "nbsp;"):
		return append(dst, " "...), 5, true
	}

	if len(src) >= 2 && src[0] == '#' {
		return resolveNumericEntity(dst, src)
	}
	return resolveNamedEntity(dst, src)
}

// resolveNumericEntity resolves "#NNN;" or "#xHHH;" forms.
// src[0] == '#'.
func resolveNumericEntity(dst []byte, src []byte) (result []byte, consumed int, ok bool) {
	i := 1
	hex := false
	if i < len(src) && (src[i] == 'x' || src[i] == 'X') {
		hex = true
		i++
	}
	digitsStart := i
	const maxDigits = 7
	for i < len(src) && i-digitsStart < maxDigits {
		c := src[i]
		if hex && !isHexDigit(c) || !hex && !isASCIIDigit(c) {
			break
		}
		i++
	}
	numDigits := i - digitsStart
	if numDigits == 0 || i >= len(src) || src[i] != ';' {
		return dst, 0, false
	}

	var value int64
	base := int64(10)
	if hex {
		base = 16
	}
	for j := digitsStart; j < i; j++ {
		c := src[j]
		var d int64
		switch {
		case isASCIIDigit(c):
			d = int64(c - '0')
		default:
			d = int64(toLowerASCII(c)-'a') + 10
		}
		value = value*base + d
	}

	r := rune(value)
	if value == 0 || value > utf8.MaxRune || (value >= 0xD800 && value <= 0xDFFF) {
		r = utf8.RuneError
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return append(dst, buf[:n]...), i + 1, true
}

// resolveNamedEntity resolves a named character reference such as
// "copy;". The name must be a run of ASCII letters and digits followed by
// ';'; semicolon-less legacy forms are not recognized.
func resolveNamedEntity(dst []byte, src []byte) (result []byte, consumed int, ok bool) {
	// Named entities are at most 32 bytes including the trailing ';'
	// (https://html.spec.whatwg.org/). The standard library's table decides
	// whether the name exists; a decode into more than two runes means it
	// only matched a shorter legacy prefix of the name, which is rejected.
	const maxNameLen = 32
	end := 0
	for end < len(src) && end < maxNameLen-1 && isASCIIAlnum(src[end]) {
		end++
	}
	if end == 0 || end >= len(src) || src[end] != ';' {
		return dst, 0, false
	}
	candidate := "&" + string(src[:end+1])
	decoded := html.UnescapeString(candidate)
	if decoded == candidate || utf8.RuneCountInString(decoded) > 2 {
		return dst, 0, false
	}
	return append(dst, decoded...), end + 1, true
}
