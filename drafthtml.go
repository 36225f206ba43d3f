// Package drafthtml 在 Draft.js 富文本格式与 HTML 之间双向转换
//
// 文档由有序的块组成，每个块携带纯文本以及按位置寻址的样式区间与实体区间。
// 所有偏移量和长度均以 UTF-16 code units 计算，与 Draft.js 一致。
//
// 核心功能：
//   - ToHTML(): 将文档渲染为 HTML，重叠的样式区间也保证标签正确嵌套
//   - FromHTML(): 扫描 HTML 中支持的块级与行内标签，重建样式区间和实体表
//   - FromMarkdown(): 通过 goldmark 将 Markdown 导入为文档
//
// 两个转换函数都不会返回错误：内部故障会被记录到 Logger，并退化为
// 约定的回退结果。
//
// 示例：
//
//	html := drafthtml.ToHTML(&doc)
//
//	doc := drafthtml.FromHTML(`<p>Visit <a href="https://google.com">Google</a></p>`)
//	for _, block := range doc.Blocks {
//	    fmt.Println(block.Type, block.Text)
//	}
package drafthtml

import (
	"encoding/json"

	"github.com/riverfjs/drafthtml/internal/markdown"
	"github.com/riverfjs/drafthtml/internal/parser"
	"github.com/riverfjs/drafthtml/internal/render"
	"github.com/riverfjs/drafthtml/internal/types"
)

// renderDocument is swapped in tests to exercise the failure fallback.
var renderDocument = render.Document

// ToHTML 将文档渲染为 HTML
//
// nil 文档或没有块的文档返回 ""。内部故障时返回文档的 JSON 序列化。
func ToHTML(doc *Document, opts ...Option) (html string) {
	if doc == nil || len(doc.Blocks) == 0 {
		return ""
	}
	options := applyOptions(opts...)

	defer func() {
		if r := recover(); r != nil {
			Logger.Printf("Error converting document to HTML: %v", r)
			data, err := json.Marshal(doc)
			if err != nil {
				html = ""
				return
			}
			html = string(data)
		}
	}()

	return renderDocument(*doc, options.Config)
}

// ToHTMLJSON decodes Draft.js raw content and renders it. Input that is
// empty, null, lacks blocks or cannot be decoded yields "".
func ToHTMLJSON(data []byte, opts ...Option) string {
	doc, err := UnmarshalDocument(data)
	if err != nil {
		Logger.Printf("Error decoding document: %v", err)
		return ""
	}
	return ToHTML(doc, opts...)
}

// FromHTML 将 HTML 解析为文档
//
// 空输入返回空文档。内部故障时返回只含一个 unstyled 块的文档，
// 其文本为去除所有标签后的输入。
func FromHTML(html string, opts ...Option) (doc Document) {
	if html == "" {
		return types.NewDocument()
	}
	options := applyOptions(opts...)

	defer func() {
		if r := recover(); r != nil {
			Logger.Printf("Error converting HTML to document: %v", r)
			doc = Document{
				Blocks:    []Block{parser.PlainBlock(html, options.Keys)},
				EntityMap: EntityMap{},
			}
		}
	}()

	return parser.Parse(html, options.Keys)
}

// FromMarkdown 将 Markdown 导入为文档
//
// 段落、标题、引用、列表和代码块映射为对应的块类型；强调映射为
// ITALIC/BOLD，链接映射为 LINK 实体。
func FromMarkdown(md string, opts ...Option) (doc Document) {
	if md == "" {
		return types.NewDocument()
	}
	options := applyOptions(opts...)

	defer func() {
		if r := recover(); r != nil {
			Logger.Printf("Error converting Markdown to document: %v", r)
			doc = Document{
				Blocks: []Block{{
					Key:               options.Keys.NextKey(),
					Type:              Unstyled,
					Text:              md,
					InlineStyleRanges: []StyleRange{},
					EntityRanges:      []EntityRange{},
				}},
				EntityMap: EntityMap{},
			}
		}
	}()

	return markdown.Parse(md, options.Keys)
}
