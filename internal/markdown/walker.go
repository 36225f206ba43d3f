package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/riverfjs/drafthtml/internal/buffer"
	"github.com/riverfjs/drafthtml/internal/keys"
	"github.com/riverfjs/drafthtml/internal/parser"
	"github.com/riverfjs/drafthtml/internal/types"
	"github.com/riverfjs/drafthtml/internal/util"
)

// styleScope 用于跟踪未闭合的样式
type styleScope struct {
	style       types.Style
	startOffset int
}

// linkScope 用于跟踪未闭合的链接
type linkScope struct {
	url         string
	startOffset int
}

// linkRange is a closed link whose entity key is assigned in endBlock, once
// the range has survived clipping.
type linkRange struct {
	url    string
	offset int
	length int
}

// Walker 遍历 goldmark AST 并生成块列表
type Walker struct {
	source []byte
	gen    keys.Generator
	doc    types.Document

	nextEntity int

	// Current block
	buf       *buffer.TextBuffer
	inBlock   bool
	blockType types.BlockType
	depth     int
	styles    []types.StyleRange
	links     []linkRange

	styleStack []styleScope
	linkStack  []linkScope

	// containers holds list and blockquote nesting, innermost last
	containers []types.BlockType
}

// NewWalker 创建新的 Walker
func NewWalker(source []byte, gen keys.Generator) *Walker {
	return &Walker{
		source:     source,
		gen:        gen,
		doc:        types.NewDocument(),
		buf:        buffer.New(),
		styleStack: make([]styleScope, 0),
		linkStack:  make([]linkScope, 0),
		containers: make([]types.BlockType, 0),
	}
}

// Result 返回转换结果
func (w *Walker) Result() types.Document {
	return w.doc
}

// Walk 遍历 AST 节点
func (w *Walker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.onText(n)
		}

	case *ast.String:
		if entering {
			w.write(string(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			w.write(extractCodeSpanText(n, w.source))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Emphasis:
		style := types.StyleItalic
		if n.Level == 2 {
			style = types.StyleBold
		}
		if entering {
			w.pushStyle(style)
		} else {
			w.popStyle(style)
		}

	case *ast.Link:
		if entering {
			w.pushLink(string(n.Destination))
		} else {
			w.popLink()
		}

	case *ast.AutoLink:
		if entering {
			url := string(n.URL(w.source))
			w.pushLink(url)
			w.write(string(n.Label(w.source)))
			w.popLink()
			return ast.WalkSkipChildren, nil
		}

	case *ast.RawHTML:
		if entering {
			w.onInlineHTML(n)
		}

	case *east.TaskCheckBox:
		if entering {
			if n.IsChecked {
				w.write("[x] ")
			} else {
				w.write("[ ] ")
			}
		}

	// --- Block elements ---
	case *ast.Paragraph, *ast.TextBlock, *east.DefinitionTerm:
		if entering {
			w.startBlock(w.containerType())
		} else {
			w.endBlock()
		}

	case *ast.Heading:
		if entering {
			w.startBlock(headingType(n.Level))
		} else {
			w.endBlock()
		}

	case *ast.Blockquote:
		if entering {
			w.containers = append(w.containers, types.BlockBlockquote)
		} else {
			w.popContainer()
		}

	case *ast.List:
		if entering {
			listType := types.BlockUnorderedListItem
			if n.IsOrdered() {
				listType = types.BlockOrderedListItem
			}
			w.containers = append(w.containers, listType)
		} else {
			w.popContainer()
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.onCodeBlock(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.HTMLBlock:
		// Block HTML ignored
		return ast.WalkSkipChildren, nil

	// --- Table: one block per row, cells separated by " | " ---
	case *east.TableHeader, *east.TableRow:
		if entering {
			w.startBlock(types.BlockUnstyled)
		} else {
			w.endBlock()
		}

	case *east.TableCell:
		if entering && n.PreviousSibling() != nil {
			w.write(" | ")
		}
	}

	return ast.WalkContinue, nil
}

// --- Text handling ---

func (w *Walker) onText(n *ast.Text) {
	textContent := string(n.Segment.Value(w.source))
	if n.SoftLineBreak() || n.HardLineBreak() {
		textContent += "\n"
	}
	w.write(textContent)
}

func (w *Walker) write(text string) {
	if !w.inBlock {
		return
	}
	w.buf.Write(text)
}

func (w *Walker) onInlineHTML(n *ast.RawHTML) {
	html := string(n.Segments.Value(w.source))
	tag := strings.TrimSpace(strings.ToLower(html))

	switch tag {
	case "<u>":
		w.pushStyle(types.StyleUnderline)
	case "</u>":
		w.popStyle(types.StyleUnderline)
	case "<br>", "<br/>", "<br />":
		w.write("\n")
	}
	// Other inline HTML is ignored
}

func (w *Walker) onCodeBlock(n ast.Node) {
	w.startBlock(types.BlockCodeBlock)
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		w.buf.Write(string(line.Value(w.source)))
	}
	w.endBlock()
}

// --- Blocks ---

func headingType(level int) types.BlockType {
	switch level {
	case 1:
		return types.BlockHeaderOne
	case 2:
		return types.BlockHeaderTwo
	case 3:
		return types.BlockHeaderThree
	default:
		return types.BlockUnstyled
	}
}

// containerType returns the block type implied by the innermost container.
func (w *Walker) containerType() types.BlockType {
	if len(w.containers) == 0 {
		return types.BlockUnstyled
	}
	return w.containers[len(w.containers)-1]
}

func (w *Walker) listDepth() int {
	depth := -1
	for _, c := range w.containers {
		if c.IsList() {
			depth++
		}
	}
	if depth < 0 {
		return 0
	}
	return depth
}

func (w *Walker) popContainer() {
	if len(w.containers) > 0 {
		w.containers = w.containers[:len(w.containers)-1]
	}
}

func (w *Walker) startBlock(blockType types.BlockType) {
	if w.inBlock {
		w.endBlock()
	}
	w.inBlock = true
	w.blockType = blockType
	w.depth = 0
	if blockType.IsList() {
		w.depth = w.listDepth()
	}
	w.buf.Reset()
	w.styles = make([]types.StyleRange, 0)
	w.links = make([]linkRange, 0)
}

func (w *Walker) endBlock() {
	if !w.inBlock {
		return
	}
	// 反向弹出未闭合的作用域
	for len(w.styleStack) > 0 {
		w.popStyle(w.styleStack[len(w.styleStack)-1].style)
	}
	for len(w.linkStack) > 0 {
		w.popLink()
	}

	text := w.buf.String()
	if n := w.buf.TrailingNewlineCount(); n > 0 {
		text = text[:len(text)-n]
	}
	w.doc.Blocks = append(w.doc.Blocks, types.Block{
		Key:               w.gen.NextKey(),
		Type:              w.blockType,
		Depth:             w.depth,
		Text:              text,
		InlineStyleRanges: parser.MergeStyleRanges(clip(w.styles, text)),
		EntityRanges:      w.linkEntities(text),
	})
	w.inBlock = false
}

// --- Scope helpers ---

func (w *Walker) pushStyle(style types.Style) {
	w.styleStack = append(w.styleStack, styleScope{
		style:       style,
		startOffset: w.buf.UTF16Offset(),
	})
}

func (w *Walker) popStyle(style types.Style) {
	// Find the matching scope (search from top)
	for i := len(w.styleStack) - 1; i >= 0; i-- {
		if w.styleStack[i].style != style {
			continue
		}
		scope := w.styleStack[i]
		w.styleStack = append(w.styleStack[:i], w.styleStack[i+1:]...)
		length := w.buf.UTF16Offset() - scope.startOffset
		if length > 0 && w.inBlock {
			w.styles = append(w.styles, types.StyleRange{
				Style:  style,
				Offset: scope.startOffset,
				Length: length,
			})
		}
		return
	}
}

func (w *Walker) pushLink(url string) {
	w.linkStack = append(w.linkStack, linkScope{
		url:         url,
		startOffset: w.buf.UTF16Offset(),
	})
}

func (w *Walker) popLink() {
	if len(w.linkStack) == 0 {
		return
	}
	scope := w.linkStack[len(w.linkStack)-1]
	w.linkStack = w.linkStack[:len(w.linkStack)-1]
	length := w.buf.UTF16Offset() - scope.startOffset
	if length <= 0 || !w.inBlock {
		return
	}

	w.links = append(w.links, linkRange{
		url:    scope.url,
		offset: scope.startOffset,
		length: length,
	})
}

// linkEntities clips the block's links to text and registers an entity for
// every link that still covers at least one position.
func (w *Walker) linkEntities(text string) []types.EntityRange {
	n := util.UTF16Len(text)
	ranges := make([]types.EntityRange, 0, len(w.links))
	for _, l := range w.links {
		if l.offset+l.length > n {
			l.length = n - l.offset
		}
		if l.length <= 0 {
			continue
		}
		key := w.nextEntity
		w.nextEntity++
		w.doc.EntityMap[key] = types.Entity{
			Type:       types.EntityLink,
			Mutability: types.Mutable,
			Data:       map[string]any{"url": l.url},
		}
		ranges = append(ranges, types.EntityRange{Key: key, Offset: l.offset, Length: l.length})
	}
	return ranges
}

// --- Utilities ---

// clip trims ranges to the final block text after trailing newlines were
// dropped.
func clip(ranges []types.StyleRange, text string) []types.StyleRange {
	n := util.UTF16Len(text)
	out := make([]types.StyleRange, 0, len(ranges))
	for _, r := range ranges {
		if r.End() > n {
			r.Length = n - r.Offset
		}
		if r.Length > 0 {
			out = append(out, r)
		}
	}
	return out
}

func extractCodeSpanText(n *ast.CodeSpan, source []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			_, _ = buf.Write(t.Segment.Value(source))
		case *ast.String:
			_, _ = buf.Write(t.Value)
		}
	}
	return buf.String()
}
