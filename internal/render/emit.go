package render

import (
	"strings"

	"github.com/riverfjs/drafthtml/internal/types"
	"github.com/riverfjs/drafthtml/internal/util"
)

// fontSizes maps font size styles to their CSS keyword.
var fontSizes = map[types.Style]string{
	types.StyleFontSizeSmall:  "small",
	types.StyleFontSizeNormal: "medium",
	types.StyleFontSizeLarge:  "large",
	types.StyleFontSizeHuge:   "x-large",
}

// StyleTag returns the element name a style renders as, or "" if the style
// is not renderable.
func StyleTag(style types.Style) string {
	switch style {
	case types.StyleBold:
		return "strong"
	case types.StyleItalic:
		return "em"
	case types.StyleUnderline:
		return "u"
	case types.StyleFontSizeSmall, types.StyleFontSizeNormal, types.StyleFontSizeLarge, types.StyleFontSizeHuge:
		return "span"
	default:
		return ""
	}
}

// element 栈中一个已打开的标签：样式标签或实体包装
type element struct {
	style    int
	entity   int
	isEntity bool
	open     string
	close    string
}

// TagEmitter 按位置输出标签，使用显式的所有权栈保证嵌套合法
type TagEmitter struct {
	sb        strings.Builder
	stack     []element
	entityMap types.EntityMap
	config    *types.Config
	entity    int
}

// NewTagEmitter creates an emitter for one block.
func NewTagEmitter(entityMap types.EntityMap, config *types.Config) *TagEmitter {
	if config == nil {
		config = types.DefaultConfig()
	}
	return &TagEmitter{
		stack:     make([]element, 0),
		entityMap: entityMap,
		config:    config,
		entity:    NoEntity,
	}
}

// RenderBlock renders the inner markup of a block.
func RenderBlock(block types.Block, entityMap types.EntityMap, config *types.Config) string {
	n := util.UTF16Len(block.Text)
	res := Resolve(n, block.InlineStyleRanges, block.EntityRanges, entityMap)
	e := NewTagEmitter(entityMap, config)

	pos := 0
	for _, r := range block.Text {
		e.Step(res.Styles[pos], res.Entities[pos])
		e.sb.WriteRune(r)
		pos += util.RuneUnits(r)
	}
	e.Step(0, NoEntity)
	e.CloseAll()
	return e.String()
}

// Step moves the emitter to the annotations of the next position.
//
// Every element that has to close takes all elements opened after it along;
// those that are still active are reopened right away in their original
// order. New styles open next, in canonical order, and the entity wrapper
// opens last.
func (e *TagEmitter) Step(styles StyleSet, entity int) {
	entityChanged := entity != e.entity

	cut := -1
	for i, el := range e.stack {
		if el.isEntity && entityChanged || !el.isEntity && !styles.Has(el.style) {
			cut = i
			break
		}
	}
	if cut >= 0 {
		popped := make([]element, len(e.stack)-cut)
		copy(popped, e.stack[cut:])
		for i := len(e.stack) - 1; i >= cut; i-- {
			e.sb.WriteString(e.stack[i].close)
		}
		e.stack = e.stack[:cut]
		for _, el := range popped {
			if el.isEntity && !entityChanged || !el.isEntity && styles.Has(el.style) {
				e.push(el)
			}
		}
	}

	var open StyleSet
	for _, el := range e.stack {
		if !el.isEntity {
			open |= 1 << uint(el.style)
		}
	}
	for i, style := range types.KnownStyles {
		if styles.Has(i) && !open.Has(i) {
			e.push(styleElement(i, style))
		}
	}

	if entityChanged {
		e.entity = entity
		if el, ok := e.entityElement(entity); ok {
			e.push(el)
		}
	}
}

// CloseAll closes every open element in LIFO order.
func (e *TagEmitter) CloseAll() {
	for i := len(e.stack) - 1; i >= 0; i-- {
		e.sb.WriteString(e.stack[i].close)
	}
	e.stack = e.stack[:0]
	e.entity = NoEntity
}

// String returns the markup written so far.
func (e *TagEmitter) String() string {
	return e.sb.String()
}

func (e *TagEmitter) push(el element) {
	e.sb.WriteString(el.open)
	e.stack = append(e.stack, el)
}

func styleElement(idx int, style types.Style) element {
	tag := StyleTag(style)
	open := "<" + tag + ">"
	if size, ok := fontSizes[style]; ok {
		open = `<span style="font-size: ` + size + `">`
	}
	return element{
		style:  idx,
		entity: NoEntity,
		open:   open,
		close:  "</" + tag + ">",
	}
}

func (e *TagEmitter) entityElement(key int) (element, bool) {
	if key == NoEntity {
		return element{}, false
	}
	ent, ok := e.entityMap[key]
	if !ok {
		return element{}, false
	}
	switch {
	case ent.IsLink():
		href := ent.URL()
		if href == "" {
			href = e.config.LinkFallbackHref
		}
		return element{
			entity:   key,
			isEntity: true,
			open:     `<a href="` + href + `">`,
			close:    "</a>",
		}, true
	case ent.IsColor():
		return element{
			entity:   key,
			isEntity: true,
			open:     `<span style="color: ` + ent.Color() + `">`,
			close:    "</span>",
		}, true
	}
	return element{}, false
}
