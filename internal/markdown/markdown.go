// Package markdown imports Markdown into the block model using goldmark.
package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/drafthtml/internal/keys"
	"github.com/riverfjs/drafthtml/internal/types"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // tables, strikethrough, task lists, autolinks
		extension.DefinitionList, // 定义列表
	),
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader(source))
}

// Parse 解析 Markdown 并遍历 AST 生成文档
func Parse(markdown string, gen keys.Generator) types.Document {
	if gen == nil {
		gen = keys.Random()
	}
	source := []byte(markdown)
	node := ParseAST(source)

	walker := NewWalker(source, gen)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return walker.Walk(n, entering)
	})
	return walker.Result()
}
