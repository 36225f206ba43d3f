package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/riverfjs/drafthtml/internal/keys"
	"github.com/riverfjs/drafthtml/internal/types"
)

var ignoreKey = cmpopts.IgnoreFields(types.Block{}, "Key")

// TestParse_Link 测试链接解析为 CUSTOM 实体
func TestParse_Link(t *testing.T) {
	doc := Parse(`<p>Visit <a href="https://google.com">Google</a></p>`, keys.Sequential())

	want := types.Document{
		Blocks: []types.Block{{
			Type:              types.BlockUnstyled,
			Text:              "Visit Google",
			InlineStyleRanges: []types.StyleRange{},
			EntityRanges:      []types.EntityRange{{Key: 0, Offset: 6, Length: 6}},
		}},
		EntityMap: types.EntityMap{
			0: {
				Type:       types.EntityCustom,
				Mutability: types.Mutable,
				Data:       map[string]any{"url": "https://google.com"},
			},
		},
	}
	if diff := cmp.Diff(want, doc, ignoreKey); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Empty(t *testing.T) {
	doc := Parse("", nil)
	if doc.Blocks == nil || len(doc.Blocks) != 0 {
		t.Errorf("Blocks = %#v, want empty non-nil slice", doc.Blocks)
	}
	if doc.EntityMap == nil || len(doc.EntityMap) != 0 {
		t.Errorf("EntityMap = %#v, want empty non-nil map", doc.EntityMap)
	}
}

// TestParse_DocumentOrder 测试列表与其他块按文档顺序交错
func TestParse_DocumentOrder(t *testing.T) {
	doc := Parse(`<p>one</p><ul><li>two</li></ul><h1>three</h1><ol><li>four</li></ol>`, keys.Sequential())

	type summary struct {
		Type types.BlockType
		Text string
	}
	var got []summary
	for _, b := range doc.Blocks {
		got = append(got, summary{b.Type, b.Text})
	}
	want := []summary{
		{types.BlockUnstyled, "one"},
		{types.BlockUnorderedListItem, "two"},
		{types.BlockHeaderOne, "three"},
		{types.BlockOrderedListItem, "four"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("block order mismatch (-want +got):\n%s", diff)
	}

	for i, b := range doc.Blocks {
		if want := string(rune('0' + i)); b.Key != want {
			t.Errorf("block %d key = %q, want %q", i, b.Key, want)
		}
	}
}

// TestParse_SharedEntityCounter 测试实体 key 在整个文档内唯一且递增
func TestParse_SharedEntityCounter(t *testing.T) {
	doc := Parse(`<p><a href="a">x</a></p><p><span style="color: red">y</span> <a href="b">z</a></p>`, keys.Sequential())
	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(doc.Blocks))
	}

	if diff := cmp.Diff([]types.EntityRange{{Key: 0, Offset: 0, Length: 1}}, doc.Blocks[0].EntityRanges); diff != "" {
		t.Errorf("block 0 entities (-want +got):\n%s", diff)
	}
	wantSecond := []types.EntityRange{
		{Key: 1, Offset: 0, Length: 1},
		{Key: 2, Offset: 2, Length: 1},
	}
	if diff := cmp.Diff(wantSecond, doc.Blocks[1].EntityRanges); diff != "" {
		t.Errorf("block 1 entities (-want +got):\n%s", diff)
	}

	if got := doc.EntityMap.Keys(); !cmp.Equal(got, []int{0, 1, 2}) {
		t.Errorf("entity keys = %v, want [0 1 2]", got)
	}
	if c := doc.EntityMap[1].Color(); c != "red" {
		t.Errorf("entity 1 color = %q, want red", c)
	}
	if u := doc.EntityMap[2].URL(); u != "b" {
		t.Errorf("entity 2 url = %q, want b", u)
	}
}

func TestParse_InlineStyles(t *testing.T) {
	tests := []struct {
		name string
		html string
		text string
		want []types.StyleRange
	}{
		{
			name: "nested strong and em",
			html: `<p><strong>bold <em>both</em></strong></p>`,
			text: "bold both",
			want: []types.StyleRange{
				{Style: types.StyleBold, Offset: 0, Length: 9},
				{Style: types.StyleItalic, Offset: 5, Length: 4},
			},
		},
		{
			name: "b and strong merge",
			html: `<p><b>ab</b><strong>cd</strong></p>`,
			text: "abcd",
			want: []types.StyleRange{{Style: types.StyleBold, Offset: 0, Length: 4}},
		},
		{
			name: "underline and i",
			html: `<p><u>under</u> <i>it</i></p>`,
			text: "under it",
			want: []types.StyleRange{
				{Style: types.StyleItalic, Offset: 6, Length: 2},
				{Style: types.StyleUnderline, Offset: 0, Length: 5},
			},
		},
		{
			name: "font sizes in canonical order",
			html: `<p><span style="font-size: x-large">big</span> <span style="font-size: small">tiny</span></p>`,
			text: "big tiny",
			want: []types.StyleRange{
				{Style: types.StyleFontSizeSmall, Offset: 4, Length: 4},
				{Style: types.StyleFontSizeHuge, Offset: 0, Length: 3},
			},
		},
		{
			// 偏移量取纯文本中第一次出现的位置
			name: "repeated text resolves to first occurrence",
			html: `<p>go <b>go</b></p>`,
			text: "go go",
			want: []types.StyleRange{{Style: types.StyleBold, Offset: 0, Length: 2}},
		},
		{
			name: "plain",
			html: `<p>nothing here</p>`,
			text: "nothing here",
			want: []types.StyleRange{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.html, keys.Sequential())
			if len(doc.Blocks) != 1 {
				t.Fatalf("got %d blocks, want 1", len(doc.Blocks))
			}
			b := doc.Blocks[0]
			if b.Text != tt.text {
				t.Errorf("Text = %q, want %q", b.Text, tt.text)
			}
			if diff := cmp.Diff(tt.want, b.InlineStyleRanges); diff != "" {
				t.Errorf("InlineStyleRanges mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestParse_MarkupInsideAttributes 测试属性值中的标签与 '>' 不影响其余样式和实体
func TestParse_MarkupInsideAttributes(t *testing.T) {
	doc := Parse(`<p>Say <b title="</b>">hi</b> and <em>more</em></p><p>Go <a href="https://x.io/?q=a>b">here</a></p>`, keys.Sequential())

	want := types.Document{
		Blocks: []types.Block{
			{
				Type: types.BlockUnstyled,
				Text: "Say hi and more",
				InlineStyleRanges: []types.StyleRange{
					{Style: types.StyleBold, Offset: 4, Length: 2},
					{Style: types.StyleItalic, Offset: 11, Length: 4},
				},
				EntityRanges: []types.EntityRange{},
			},
			{
				Type:              types.BlockUnstyled,
				Text:              "Go here",
				InlineStyleRanges: []types.StyleRange{},
				EntityRanges:      []types.EntityRange{{Key: 0, Offset: 3, Length: 4}},
			},
		},
		EntityMap: types.EntityMap{
			0: {
				Type:       types.EntityCustom,
				Mutability: types.Mutable,
				Data:       map[string]any{"url": "https://x.io/?q=a>b"},
			},
		},
	}
	if diff := cmp.Diff(want, doc, ignoreKey); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_BlockTypes(t *testing.T) {
	doc := Parse(`<h4>a</h4><div>b</div><pre>c</pre><blockquote>d</blockquote><h2>e</h2>`, keys.Sequential())
	want := []types.BlockType{
		types.BlockUnstyled,
		types.BlockUnstyled,
		types.BlockCodeBlock,
		types.BlockBlockquote,
		types.BlockHeaderTwo,
	}
	var got []types.BlockType
	for _, b := range doc.Blocks {
		got = append(got, b.Type)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("block types mismatch (-want +got):\n%s", diff)
	}
}

// TestParse_BlockInsideListItem 测试 li 内的 p 不会产生重复块
func TestParse_BlockInsideListItem(t *testing.T) {
	doc := Parse(`<ul><li><p>item</p></li></ul>`, keys.Sequential())
	if len(doc.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1: %+v", len(doc.Blocks), doc.Blocks)
	}
	if b := doc.Blocks[0]; b.Type != types.BlockUnorderedListItem || b.Text != "item" {
		t.Errorf("block = %+v, want unordered-list-item 'item'", b)
	}
}

func TestParse_TextAlignment(t *testing.T) {
	doc := Parse(`<p style="text-align: CENTER">x</p><ol><li style="text-align:right">y</li></ol><p>z</p>`, keys.Sequential())
	want := []string{"center", "right", ""}
	var got []string
	for _, b := range doc.Blocks {
		got = append(got, b.Data.TextAlignment)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("alignment mismatch (-want +got):\n%s", diff)
	}
}

func TestPlainBlock(t *testing.T) {
	b := PlainBlock(`<p>a <b>b</b></p>`, keys.Sequential())
	if b.Key != "0" || b.Type != types.BlockUnstyled || b.Text != "a b" {
		t.Errorf("PlainBlock() = %+v", b)
	}
	if b.InlineStyleRanges == nil || b.EntityRanges == nil {
		t.Error("PlainBlock() ranges should be non-nil")
	}
}

func TestMergeStyleRanges(t *testing.T) {
	in := []types.StyleRange{
		{Style: types.StyleBold, Offset: 4, Length: 2},
		{Style: types.StyleItalic, Offset: 0, Length: 1},
		{Style: types.StyleBold, Offset: 0, Length: 4},
		{Style: types.StyleBold, Offset: 8, Length: 0},
		{Style: types.StyleItalic, Offset: 3, Length: 2},
	}
	want := []types.StyleRange{
		{Style: types.StyleBold, Offset: 0, Length: 6},
		{Style: types.StyleItalic, Offset: 0, Length: 1},
		{Style: types.StyleItalic, Offset: 3, Length: 2},
	}

	got := MergeStyleRanges(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeStyleRanges() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(got, MergeStyleRanges(got)); diff != "" {
		t.Errorf("MergeStyleRanges() not idempotent (-first +second):\n%s", diff)
	}
}

func TestMergeStyleRanges_Contained(t *testing.T) {
	got := MergeStyleRanges([]types.StyleRange{
		{Style: types.StyleUnderline, Offset: 0, Length: 10},
		{Style: types.StyleUnderline, Offset: 2, Length: 3},
	})
	want := []types.StyleRange{{Style: types.StyleUnderline, Offset: 0, Length: 10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeStyleRanges() mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockTypeFromTag(t *testing.T) {
	tests := map[string]types.BlockType{
		"H1":         types.BlockHeaderOne,
		"h3":         types.BlockHeaderThree,
		"li":         types.BlockUnorderedListItem,
		"blockquote": types.BlockBlockquote,
		"pre":        types.BlockCodeBlock,
		"h5":         types.BlockUnstyled,
		"section":    types.BlockUnstyled,
	}
	for tag, want := range tests {
		if got := BlockTypeFromTag(tag); got != want {
			t.Errorf("BlockTypeFromTag(%q) = %q, want %q", tag, got, want)
		}
	}
}
