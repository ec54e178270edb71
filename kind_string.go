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

// Hand-written in place of the stringer output ast.go's go:generate
// directive names, since this tree never runs go generate.

func (k BlockKind) String() string {
	switch k {
	case documentKind:
		return "Document"
	case ParagraphKind:
		return "Paragraph"
	case ThematicBreakKind:
		return "ThematicBreak"
	case ATXHeadingKind:
		return "ATXHeading"
	case SetextHeadingKind:
		return "SetextHeading"
	case IndentedCodeBlockKind:
		return "IndentedCodeBlock"
	case FencedCodeBlockKind:
		return "FencedCodeBlock"
	case HTMLBlockKind:
		return "HTMLBlock"
	case BlockQuoteKind:
		return "BlockQuote"
	case ListKind:
		return "List"
	case ListItemKind:
		return "ListItem"
	case TableKind:
		return "Table"
	default:
		return "BlockKind(" + itoa(int(k)) + ")"
	}
}

func (k InlineKind) String() string {
	switch k {
	case TextKind:
		return "Text"
	case TextOwnedKind:
		return "TextOwned"
	case CodeSpanKind:
		return "CodeSpan"
	case RawHTMLKind:
		return "RawHTML"
	case AutolinkKind:
		return "Autolink"
	case SoftBreakKind:
		return "SoftBreak"
	case HardBreakKind:
		return "HardBreak"
	case EmphasisKind:
		return "Emphasis"
	case StrongKind:
		return "Strong"
	case StrikethroughKind:
		return "Strikethrough"
	case HighlightKind:
		return "Highlight"
	case UnderlineKind:
		return "Underline"
	case LinkKind:
		return "Link"
	case ImageKind:
		return "Image"
	default:
		return "InlineKind(" + itoa(int(k)) + ")"
	}
}
