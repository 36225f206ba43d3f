package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// BlockType 块类型，取值与 Draft.js raw content 一致
type BlockType string

const (
	BlockUnstyled          BlockType = "unstyled"
	BlockHeaderOne         BlockType = "header-one"
	BlockHeaderTwo         BlockType = "header-two"
	BlockHeaderThree       BlockType = "header-three"
	BlockUnorderedListItem BlockType = "unordered-list-item"
	BlockOrderedListItem   BlockType = "ordered-list-item"
	BlockBlockquote        BlockType = "blockquote"
	BlockCodeBlock         BlockType = "code-block"
)

// IsList reports whether blocks of this type are grouped into <ol>/<ul>.
func (t BlockType) IsList() bool {
	return t == BlockUnorderedListItem || t == BlockOrderedListItem
}

// Style 行内样式
type Style string

const (
	StyleBold           Style = "BOLD"
	StyleItalic         Style = "ITALIC"
	StyleUnderline      Style = "UNDERLINE"
	StyleFontSizeSmall  Style = "FONT_SIZE_SMALL"
	StyleFontSizeNormal Style = "FONT_SIZE_NORMAL"
	StyleFontSizeLarge  Style = "FONT_SIZE_LARGE"
	StyleFontSizeHuge   Style = "FONT_SIZE_HUGE"
)

// KnownStyles lists the renderable styles in canonical open order.
var KnownStyles = []Style{
	StyleBold,
	StyleItalic,
	StyleUnderline,
	StyleFontSizeSmall,
	StyleFontSizeNormal,
	StyleFontSizeLarge,
	StyleFontSizeHuge,
}

// EntityType 实体类型
type EntityType string

const (
	EntityLink   EntityType = "LINK"
	EntityCustom EntityType = "CUSTOM"
)

// Mutability 实体可变性
type Mutability string

const (
	Mutable   Mutability = "MUTABLE"
	Immutable Mutability = "IMMUTABLE"
	Segmented Mutability = "SEGMENTED"
)

// StyleRange 表示一段带样式的文本区间（UTF-16 code units）
type StyleRange struct {
	Style  Style `json:"style" yaml:"style"`
	Offset int   `json:"offset" yaml:"offset"`
	Length int   `json:"length" yaml:"length"`
}

// End returns the exclusive end position of the range.
func (r StyleRange) End() int {
	return r.Offset + r.Length
}

// EntityRange 表示引用实体表的文本区间
type EntityRange struct {
	Key    int `json:"key" yaml:"key"`
	Offset int `json:"offset" yaml:"offset"`
	Length int `json:"length" yaml:"length"`
}

// Entity 实体记录，data 中携带 url 或 color
type Entity struct {
	Type       EntityType     `json:"type" yaml:"type"`
	Mutability Mutability     `json:"mutability" yaml:"mutability"`
	Data       map[string]any `json:"data" yaml:"data"`
}

func (e Entity) stringData(field string) string {
	if e.Data == nil {
		return ""
	}
	s, _ := e.Data[field].(string)
	return s
}

// URL returns data.url, or "" when missing or not a string.
func (e Entity) URL() string {
	return e.stringData("url")
}

// Color returns data.color, or "" when missing or not a string.
func (e Entity) Color() string {
	return e.stringData("color")
}

// IsLink reports whether the entity renders as an anchor.
func (e Entity) IsLink() bool {
	return e.Type == EntityLink || (e.Type == EntityCustom && e.URL() != "")
}

// IsColor reports whether the entity renders as a colored span.
func (e Entity) IsColor() bool {
	return e.Type == EntityCustom && e.Color() != ""
}

// BlockData 块级附加数据
type BlockData struct {
	TextAlignment string `json:"textAlignment,omitempty" yaml:"textAlignment,omitempty"`
}

// UnmarshalJSON accepts an object or the empty array emitted for "no data".
func (d *BlockData) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*d = BlockData{}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	if v, ok := obj["textAlignment"].(string); ok {
		d.TextAlignment = v
	}
	return nil
}

// Block 一个段落级单元
type Block struct {
	Key               string        `json:"key" yaml:"key"`
	Type              BlockType     `json:"type" yaml:"type"`
	Depth             int           `json:"depth" yaml:"depth"`
	Text              string        `json:"text" yaml:"text"`
	Data              BlockData     `json:"data" yaml:"data"`
	InlineStyleRanges []StyleRange  `json:"inlineStyleRanges" yaml:"inlineStyleRanges"`
	EntityRanges      []EntityRange `json:"entityRanges" yaml:"entityRanges"`
}

// EntityMap 实体表，key 在文档内唯一
type EntityMap map[int]Entity

// UnmarshalJSON accepts both an object keyed by stringified integers and an
// array whose index is the key. Null array slots are skipped.
func (m *EntityMap) UnmarshalJSON(b []byte) error {
	out := EntityMap{}
	if len(b) > 0 && b[0] == '[' {
		var list []*Entity
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		for i, e := range list {
			if e != nil {
				out[i] = *e
			}
		}
		*m = out
		return nil
	}
	var obj map[string]Entity
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	for k, e := range obj {
		key, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("entity key %q: %w", k, err)
		}
		out[key] = e
	}
	*m = out
	return nil
}

// Keys returns the entity keys in ascending order.
func (m EntityMap) Keys() []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Document 富文本文档
type Document struct {
	Blocks    []Block   `json:"blocks" yaml:"blocks"`
	EntityMap EntityMap `json:"entityMap" yaml:"entityMap"`
}

// NewDocument returns an empty document with non-nil collections.
func NewDocument() Document {
	return Document{
		Blocks:    []Block{},
		EntityMap: EntityMap{},
	}
}

// Config 转换配置
type Config struct {
	// LinkFallbackHref is written for link entities without a url.
	LinkFallbackHref string
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		LinkFallbackHref: "#",
	}
}
