package parser

import (
	"github.com/riverfjs/drafthtml/internal/keys"
	"github.com/riverfjs/drafthtml/internal/scanner"
	"github.com/riverfjs/drafthtml/internal/types"
	"github.com/riverfjs/drafthtml/internal/util"
)

// Parse 扫描 HTML 中的块级与行内元素，生成文档
//
// 块按其开标签在输入中的位置排序后再解析行内内容，因此实体 key
// 按文档顺序从 0 开始分配。
func Parse(html string, gen keys.Generator) types.Document {
	if gen == nil {
		gen = keys.Random()
	}
	doc := types.NewDocument()
	if html == "" {
		return doc
	}

	table := newEntityTable()
	for _, raw := range sequenceBlocks(discoverBlocks(html)) {
		block := parseInline(raw.inner, table)
		block.Key = gen.NextKey()
		block.Type = raw.blockType
		block.Data = types.BlockData{TextAlignment: raw.align}
		doc.Blocks = append(doc.Blocks, block)
	}
	doc.EntityMap = table.entities
	return doc
}

// parseInline parses one block's inline markup into text, style ranges and
// entity ranges. Entities are added to table.
func parseInline(markup string, table *entityTable) types.Block {
	s := scanner.New(markup)
	n := util.UTF16Len(s.Text())
	return types.Block{
		Type:              types.BlockUnstyled,
		Text:              s.Text(),
		InlineStyleRanges: collectStyles(s, n),
		EntityRanges:      table.extract(s),
	}
}

// PlainBlock returns the single unstyled block used when parsing fails.
func PlainBlock(html string, gen keys.Generator) types.Block {
	if gen == nil {
		gen = keys.Random()
	}
	return types.Block{
		Key:               gen.NextKey(),
		Type:              types.BlockUnstyled,
		Text:              scanner.StripTags(html),
		InlineStyleRanges: []types.StyleRange{},
		EntityRanges:      []types.EntityRange{},
	}
}
