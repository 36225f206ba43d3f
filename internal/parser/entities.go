package parser

import (
	"github.com/riverfjs/drafthtml/internal/scanner"
	"github.com/riverfjs/drafthtml/internal/types"
)

// entityTable 单次解析调用内共享的实体表与计数器
type entityTable struct {
	next     int
	entities types.EntityMap
}

func newEntityTable() *entityTable {
	return &entityTable{entities: types.EntityMap{}}
}

// add stores e under the next unused key and returns that key.
func (t *entityTable) add(e types.Entity) int {
	key := t.next
	t.entities[key] = e
	t.next++
	return key
}

// extract scans color spans, then anchors, allocating one entity per match.
func (t *entityTable) extract(s *scanner.Scanner) []types.EntityRange {
	ranges := make([]types.EntityRange, 0)

	for _, m := range s.Find("span", scanner.HasStyle("color", "")) {
		color, ok := scanner.StyleValue(m.Attrs, "color")
		if !ok {
			continue
		}
		key := t.add(types.Entity{
			Type:       types.EntityCustom,
			Mutability: types.Mutable,
			Data:       map[string]any{"color": color},
		})
		ranges = append(ranges, types.EntityRange{Key: key, Offset: m.Offset, Length: m.Length})
	}

	for _, m := range s.Find("a", scanner.HasAttr("href")) {
		url, _ := scanner.AttrValue(m.Attrs, "href")
		key := t.add(types.Entity{
			Type:       types.EntityCustom,
			Mutability: types.Mutable,
			Data:       map[string]any{"url": url},
		})
		ranges = append(ranges, types.EntityRange{Key: key, Offset: m.Offset, Length: m.Length})
	}

	return ranges
}
