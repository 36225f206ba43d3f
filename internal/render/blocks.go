package render

import (
	"strings"

	"github.com/riverfjs/drafthtml/internal/types"
)

// BlockTag returns the wrapping element for a non-list block type.
func BlockTag(t types.BlockType) string {
	switch t {
	case types.BlockHeaderOne:
		return "h1"
	case types.BlockHeaderTwo:
		return "h2"
	case types.BlockHeaderThree:
		return "h3"
	case types.BlockUnorderedListItem, types.BlockOrderedListItem:
		return "li"
	case types.BlockBlockquote:
		return "blockquote"
	case types.BlockCodeBlock:
		return "pre"
	default:
		return "p"
	}
}

func listTag(t types.BlockType) string {
	if t == types.BlockOrderedListItem {
		return "ol"
	}
	return "ul"
}

func alignAttr(data types.BlockData) string {
	if data.TextAlignment == "" {
		return ""
	}
	return ` style="text-align: ` + data.TextAlignment + `"`
}

// Document renders all blocks, grouping consecutive list items of the same
// kind into a single <ol> or <ul>.
func Document(doc types.Document, config *types.Config) string {
	var sb strings.Builder
	var items strings.Builder

	blocks := doc.Blocks
	for i, block := range blocks {
		inner := RenderBlock(block, doc.EntityMap, config)
		if !block.Type.IsList() {
			tag := BlockTag(block.Type)
			sb.WriteString("<" + tag + alignAttr(block.Data) + ">")
			sb.WriteString(inner)
			sb.WriteString("</" + tag + ">")
			continue
		}

		items.WriteString("<li" + alignAttr(block.Data) + ">")
		items.WriteString(inner)
		items.WriteString("</li>")

		// 列表在类型变化或最后一个块处结束
		if i == len(blocks)-1 || blocks[i+1].Type != block.Type {
			tag := listTag(block.Type)
			sb.WriteString("<" + tag + ">")
			sb.WriteString(items.String())
			sb.WriteString("</" + tag + ">")
			items.Reset()
		}
	}
	return sb.String()
}
