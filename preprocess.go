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

import "go4.org/bytereplacer"

// lineEndingReplacer folds "\r\n" and lone "\r" to "\n", and replaces NUL
// bytes with the Unicode replacement character, in a single pass. The
// teacher reserves bytereplacer for test fixture normalization; here it
// does the same job on the production input path, since CommonMark
// requires both line-ending folding and NUL scrubbing before block
// parsing ever sees the bytes.
var lineEndingReplacer = bytereplacer.New(
	"\r\n", "\n",
	"\r", "\n",
	"\x00", "�",
)

// Preprocess normalizes raw input bytes for parsing: line endings are
// folded to "\n" and NUL bytes are replaced with U+FFFD, per §6's line
// ending and input-assumption rules. The returned slice may alias source
// if no replacement was necessary.
func Preprocess(source []byte) []byte {
	return lineEndingReplacer.Replace(source)
}
