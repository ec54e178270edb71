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
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// labelCaser performs full Unicode case folding, including expansions
// such as 'ß' -> "ss", which a simple per-rune ToLower cannot express.
var labelCaser = cases.Fold()

// normalizeLabel normalizes a link reference label per §4.5: trim outer
// whitespace, collapse internal runs of Unicode whitespace to a single
// space, then apply full Unicode case folding.
//
// A fast path returns label unchanged, without allocating, when it is
// already normalized: pure ASCII, already lowercase, containing no
// tab/newline and no run of two or more spaces.
func normalizeLabel(label string) string {
	if isAlreadyNormalizedLabel(label) {
		return label
	}
	label = collapseWhitespace(label)
	return labelCaser.String(label)
}

func isAlreadyNormalizedLabel(s string) bool {
	if len(s) == 0 {
		return true
	}
	if s[0] == ' ' || s[len(s)-1] == ' ' {
		return false
	}
	prevSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8RuneSelf {
			return false
		}
		if c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v' {
			return false
		}
		if 'A' <= c && c <= 'Z' {
			return false
		}
		if c == ' ' {
			if prevSpace {
				return false
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
	}
	return true
}

const utf8RuneSelf = 0x80

// collapseWhitespace trims s and replaces every internal run of Unicode
// whitespace with a single ASCII space.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	wroteAny := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && wroteAny {
			b.WriteByte(' ')
		}
		inSpace = false
		wroteAny = true
		b.WriteRune(r)
	}
	return b.String()
}

