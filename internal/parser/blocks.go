package parser

import (
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/riverfjs/drafthtml/internal/scanner"
	"github.com/riverfjs/drafthtml/internal/types"
)

// blockTags are the non-list elements that become blocks.
var blockTags = []string{"p", "h1", "h2", "h3", "h4", "h5", "h6", "div", "blockquote", "pre"}

// BlockTypeFromTag maps a block element name to its block type. Unknown
// names, including h4-h6 and div, map to unstyled.
func BlockTypeFromTag(tag string) types.BlockType {
	switch strings.ToLower(tag) {
	case "h1":
		return types.BlockHeaderOne
	case "h2":
		return types.BlockHeaderTwo
	case "h3":
		return types.BlockHeaderThree
	case "li":
		return types.BlockUnorderedListItem
	case "blockquote":
		return types.BlockBlockquote
	case "pre":
		return types.BlockCodeBlock
	default:
		return types.BlockUnstyled
	}
}

// rawBlock is a discovered block before its inline content is parsed.
type rawBlock struct {
	pos       int
	blockType types.BlockType
	align     string
	inner     string
}

// span is a byte interval of the input covered by a list element.
type span struct {
	start, end int
}

func (s span) contains(pos int) bool {
	return pos >= s.start && pos < s.end
}

// discoverBlocks scans ordered lists, unordered lists and the remaining block
// elements independently over the whole input. Each block keeps the byte
// offset of its opening tag so document order can be restored.
//
// Block elements lying inside a list element are skipped, so
// <li><p>x</p></li> yields only the list item. This differs from the
// upstream JavaScript draft.js HTML converter, which emits both the li block
// and the nested p block and so duplicates the text.
func discoverBlocks(markup string) []rawBlock {
	var found []rawBlock
	var lists []span

	for _, list := range []struct {
		tag       string
		blockType types.BlockType
	}{
		{"ol", types.BlockOrderedListItem},
		{"ul", types.BlockUnorderedListItem},
	} {
		for _, el := range scanner.Elements(markup, list.tag) {
			lists = append(lists, span{el.Start, el.End})
			for _, li := range scanner.Elements(el.Inner, "li") {
				found = append(found, rawBlock{
					pos:       el.InnerStart + li.Start,
					blockType: list.blockType,
					align:     alignment(li.Attrs),
					inner:     li.Inner,
				})
			}
		}
	}

	for _, el := range scanner.Elements(markup, blockTags...) {
		if insideAny(lists, el.Start) {
			continue
		}
		found = append(found, rawBlock{
			pos:       el.Start,
			blockType: BlockTypeFromTag(el.Name),
			align:     alignment(el.Attrs),
			inner:     el.Inner,
		})
	}
	return found
}

func insideAny(spans []span, pos int) bool {
	for _, s := range spans {
		if s.contains(pos) {
			return true
		}
	}
	return false
}

func alignment(attrs []html.Attribute) string {
	v, ok := scanner.StyleValue(attrs, "text-align")
	if !ok {
		return ""
	}
	return strings.ToLower(v)
}

// sequenceBlocks restores document order. Ties keep discovery order.
func sequenceBlocks(blocks []rawBlock) []rawBlock {
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].pos < blocks[j].pos
	})
	return blocks
}
