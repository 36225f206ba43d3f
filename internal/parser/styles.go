package parser

import (
	"sort"

	"github.com/riverfjs/drafthtml/internal/scanner"
	"github.com/riverfjs/drafthtml/internal/types"
	"github.com/riverfjs/drafthtml/internal/util"
)

// styleSource 一个样式对应的标签及属性过滤
type styleSource struct {
	style  types.Style
	tag    string
	filter scanner.Filter
}

var styleSources = []styleSource{
	{types.StyleBold, "strong", nil},
	{types.StyleBold, "b", nil},
	{types.StyleItalic, "em", nil},
	{types.StyleItalic, "i", nil},
	{types.StyleUnderline, "u", nil},
	{types.StyleFontSizeSmall, "span", scanner.HasStyle("font-size", "small")},
	{types.StyleFontSizeNormal, "span", scanner.HasStyle("font-size", "medium")},
	{types.StyleFontSizeLarge, "span", scanner.HasStyle("font-size", "large")},
	{types.StyleFontSizeHuge, "span", scanner.HasStyle("font-size", "x-large")},
}

// StyleRangeBuilder records matched spans per style and turns them into
// maximal, non-overlapping ranges.
type StyleRangeBuilder struct {
	n       int
	members map[types.Style][]bool
}

// NewStyleRangeBuilder returns a builder for a text of n code units.
func NewStyleRangeBuilder(n int) *StyleRangeBuilder {
	return &StyleRangeBuilder{
		n:       n,
		members: make(map[types.Style][]bool),
	}
}

// Mark adds style to the positions [offset, offset+length), clamped to the text.
func (b *StyleRangeBuilder) Mark(style types.Style, offset, length int) {
	start := util.Clamp(offset, 0, b.n)
	end := util.Clamp(offset+length, 0, b.n)
	if start >= end {
		return
	}
	m := b.members[style]
	if m == nil {
		m = make([]bool, b.n)
		b.members[style] = m
	}
	for i := start; i < end; i++ {
		m[i] = true
	}
}

// Ranges returns the merged ranges, grouped by style in canonical order and
// sorted by offset within each style.
func (b *StyleRangeBuilder) Ranges() []types.StyleRange {
	ranges := make([]types.StyleRange, 0)
	for _, style := range types.KnownStyles {
		m := b.members[style]
		for i := 0; i < len(m); {
			if !m[i] {
				i++
				continue
			}
			j := i
			for j < len(m) && m[j] {
				j++
			}
			ranges = append(ranges, types.StyleRange{Style: style, Offset: i, Length: j - i})
			i = j
		}
	}
	return ranges
}

// collectStyles runs one scan per style source over the block markup.
func collectStyles(s *scanner.Scanner, n int) []types.StyleRange {
	b := NewStyleRangeBuilder(n)
	for _, src := range styleSources {
		for _, m := range s.Find(src.tag, src.filter) {
			b.Mark(src.style, m.Offset, m.Length)
		}
	}
	return b.Ranges()
}

// MergeStyleRanges merges overlapping and touching ranges of the same style.
// Styles keep the order of their first appearance; ranges of one style are
// sorted by offset. Empty ranges are dropped. Merging an already merged set
// returns it unchanged.
func MergeStyleRanges(ranges []types.StyleRange) []types.StyleRange {
	var order []types.Style
	byStyle := make(map[types.Style][]types.StyleRange)
	for _, r := range ranges {
		if r.Length <= 0 {
			continue
		}
		if _, ok := byStyle[r.Style]; !ok {
			order = append(order, r.Style)
		}
		byStyle[r.Style] = append(byStyle[r.Style], r)
	}

	merged := make([]types.StyleRange, 0, len(ranges))
	for _, style := range order {
		group := byStyle[style]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Offset < group[j].Offset
		})
		cur := group[0]
		for _, r := range group[1:] {
			if r.Offset <= cur.End() {
				if r.End() > cur.End() {
					cur.Length = r.End() - cur.Offset
				}
				continue
			}
			merged = append(merged, cur)
			cur = r
		}
		merged = append(merged, cur)
	}
	return merged
}
