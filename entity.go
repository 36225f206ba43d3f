package drafthtml

import (
	"github.com/riverfjs/drafthtml/internal/parser"
	"github.com/riverfjs/drafthtml/internal/types"
	"github.com/riverfjs/drafthtml/internal/util"
)

// 导出类型别名
type (
	Document    = types.Document
	Block       = types.Block
	BlockData   = types.BlockData
	BlockType   = types.BlockType
	StyleRange  = types.StyleRange
	EntityRange = types.EntityRange
	Entity      = types.Entity
	EntityMap   = types.EntityMap
	EntityType  = types.EntityType
	Mutability  = types.Mutability
	Style       = types.Style
)

const (
	Unstyled          = types.BlockUnstyled
	HeaderOne         = types.BlockHeaderOne
	HeaderTwo         = types.BlockHeaderTwo
	HeaderThree       = types.BlockHeaderThree
	UnorderedListItem = types.BlockUnorderedListItem
	OrderedListItem   = types.BlockOrderedListItem
	Blockquote        = types.BlockBlockquote
	CodeBlock         = types.BlockCodeBlock

	Bold           = types.StyleBold
	Italic         = types.StyleItalic
	Underline      = types.StyleUnderline
	FontSizeSmall  = types.StyleFontSizeSmall
	FontSizeNormal = types.StyleFontSizeNormal
	FontSizeLarge  = types.StyleFontSizeLarge
	FontSizeHuge   = types.StyleFontSizeHuge

	Link   = types.EntityLink
	Custom = types.EntityCustom

	Mutable   = types.Mutable
	Immutable = types.Immutable
	Segmented = types.Segmented
)

// UTF16Len returns the length of text measured in UTF-16 code units, the
// unit every offset and length in a Document is expressed in.
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}

// MergeStyleRanges merges overlapping and touching ranges of the same style.
// Applying it to an already merged set is a no-op.
func MergeStyleRanges(ranges []StyleRange) []StyleRange {
	return parser.MergeStyleRanges(ranges)
}
