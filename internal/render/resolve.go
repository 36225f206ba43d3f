package render

import (
	"github.com/riverfjs/drafthtml/internal/types"
	"github.com/riverfjs/drafthtml/internal/util"
)

// StyleSet is a bitmask over types.KnownStyles.
type StyleSet uint8

// Has reports whether the style at index i is in the set.
func (s StyleSet) Has(i int) bool {
	return s&(1<<uint(i)) != 0
}

// NoEntity marks a position without an active entity.
const NoEntity = -1

// styleIndex 样式到位下标的映射；未知样式不渲染
var styleIndex = func() map[types.Style]int {
	m := make(map[types.Style]int, len(types.KnownStyles))
	for i, s := range types.KnownStyles {
		m[s] = i
	}
	return m
}()

// Resolution holds the per-position annotations of one block.
type Resolution struct {
	Styles   []StyleSet
	Entities []int
}

// Resolve expands style and entity ranges into per-position arrays of length n.
//
// Ranges are clamped to [0, n); empty or inverted ranges are ignored. When
// entity ranges overlap the one applied last wins. Keys missing from the
// entity table resolve to NoEntity.
func Resolve(n int, styles []types.StyleRange, entities []types.EntityRange, entityMap types.EntityMap) Resolution {
	if n < 0 {
		n = 0
	}
	res := Resolution{
		Styles:   make([]StyleSet, n),
		Entities: make([]int, n),
	}
	for i := range res.Entities {
		res.Entities[i] = NoEntity
	}

	// 差分计数：同一样式的区间即使重叠也能正确累加
	var delta [8][]int
	for _, r := range styles {
		idx, ok := styleIndex[r.Style]
		if !ok {
			continue
		}
		start := util.Clamp(r.Offset, 0, n)
		end := util.Clamp(r.Offset+r.Length, 0, n)
		if start >= end {
			continue
		}
		if delta[idx] == nil {
			delta[idx] = make([]int, n+1)
		}
		delta[idx][start]++
		delta[idx][end]--
	}
	for idx, d := range delta {
		if d == nil {
			continue
		}
		depth := 0
		for i := 0; i < n; i++ {
			depth += d[i]
			if depth > 0 {
				res.Styles[i] |= 1 << uint(idx)
			}
		}
	}

	for _, r := range entities {
		if _, ok := entityMap[r.Key]; !ok {
			continue
		}
		start := util.Clamp(r.Offset, 0, n)
		end := util.Clamp(r.Offset+r.Length, 0, n)
		for i := start; i < end; i++ {
			res.Entities[i] = r.Key
		}
	}
	return res
}
