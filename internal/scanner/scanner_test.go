package scanner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
)

func TestStripTags(t *testing.T) {
	got := StripTags(`<p>Visit <a href="https://google.com">Google</a></p>`)
	if got != "Visit Google" {
		t.Errorf("StripTags() = %q, want %q", got, "Visit Google")
	}
}

// TestFind_Simple 测试简单配对
func TestFind_Simple(t *testing.T) {
	s := New("This is <strong>bold</strong> text")
	got := s.Find("strong", nil)
	if len(got) != 1 {
		t.Fatalf("Find() returned %d matches, want 1", len(got))
	}
	m := got[0]
	if m.Text != "bold" || m.Offset != 8 || m.Length != 4 {
		t.Errorf("Find() = %+v, want text=bold offset=8 length=4", m)
	}
	if m.Inner != "bold" || m.Start != 8 {
		t.Errorf("Find() inner=%q start=%d, want bold/8", m.Inner, m.Start)
	}
}

// TestFind_SkipsOtherTagsInside 测试跳过内部的其他标签
func TestFind_SkipsOtherTagsInside(t *testing.T) {
	s := New("<strong>bold <em>both</em></strong> plain")
	strong := s.Find("strong", nil)
	em := s.Find("em", nil)
	if len(strong) != 1 || len(em) != 1 {
		t.Fatalf("Find() strong=%d em=%d, want 1 each", len(strong), len(em))
	}
	if strong[0].Text != "bold both" || strong[0].Offset != 0 || strong[0].Length != 9 {
		t.Errorf("strong = %+v, want text='bold both' offset=0 length=9", strong[0])
	}
	if em[0].Offset != 5 || em[0].Length != 4 {
		t.Errorf("em = %+v, want offset=5 length=4", em[0])
	}
}

// TestFind_NameBoundary 测试标签名边界：<b> 不匹配 <br> 或 <blockquote>
func TestFind_NameBoundary(t *testing.T) {
	s := New("a<br>b <b>c</b>")
	got := s.Find("b", nil)
	if len(got) != 1 || got[0].Text != "c" {
		t.Errorf("Find(b) = %+v, want one match with text c", got)
	}
}

// TestFind_CaseInsensitive 测试大小写不敏感
func TestFind_CaseInsensitive(t *testing.T) {
	s := New("x <STRONG>y</Strong>")
	got := s.Find("strong", nil)
	if len(got) != 1 || got[0].Offset != 2 {
		t.Errorf("Find() = %+v, want one match at offset 2", got)
	}
}

// TestFind_Filter 测试属性过滤
func TestFind_Filter(t *testing.T) {
	s := New(`<span style="font-size: large">big</span> <span style="color: red">red</span> <span>plain</span>`)

	large := s.Find("span", HasStyle("font-size", "large"))
	if len(large) != 1 || large[0].Text != "big" {
		t.Errorf("font-size filter = %+v, want one match 'big'", large)
	}

	color := s.Find("span", HasStyle("color", ""))
	if len(color) != 1 || color[0].Text != "red" || color[0].Offset != 4 {
		t.Errorf("color filter = %+v, want one match 'red' at 4", color)
	}

	all := s.Find("span", nil)
	if len(all) != 3 {
		t.Errorf("unfiltered Find() returned %d matches, want 3", len(all))
	}
}

// TestFind_SelfNestingNotRecovered 测试同名嵌套不被恢复
func TestFind_SelfNestingNotRecovered(t *testing.T) {
	s := New("<b>a<b>b</b>c</b>")
	got := s.Find("b", nil)
	// 外层 <b> 的下一个开标签之前没有闭标签，因此只有内层被配对
	if len(got) != 1 || got[0].Text != "b" {
		t.Errorf("Find() = %+v, want only the inner element", got)
	}
}

// TestFind_RepeatedTextUsesFirstOccurrence 测试重复文本匹配第一次出现的位置
func TestFind_RepeatedTextUsesFirstOccurrence(t *testing.T) {
	s := New("go <b>go</b>")
	got := s.Find("b", nil)
	if len(got) != 1 {
		t.Fatalf("Find() returned %d matches, want 1", len(got))
	}
	if got[0].Offset != 0 {
		t.Errorf("Offset = %d, want 0 (first occurrence)", got[0].Offset)
	}
}

// TestFind_UTF16Offsets 测试偏移量以 UTF-16 code units 计算
func TestFind_UTF16Offsets(t *testing.T) {
	s := New("😀 你好 <em>世界</em>")
	got := s.Find("em", nil)
	if len(got) != 1 {
		t.Fatalf("Find() returned %d matches, want 1", len(got))
	}
	// 😀 = 2, space = 1, 你好 = 2, space = 1
	if got[0].Offset != 6 || got[0].Length != 2 {
		t.Errorf("Find() offset=%d length=%d, want 6/2", got[0].Offset, got[0].Length)
	}
}

func TestFind_UnclosedIgnored(t *testing.T) {
	s := New("<em>open only")
	if got := s.Find("em", nil); len(got) != 0 {
		t.Errorf("Find() = %+v, want no matches", got)
	}
}

// TestFind_CloseTagInsideAttribute 测试属性值中的闭标签不参与配对
func TestFind_CloseTagInsideAttribute(t *testing.T) {
	s := New(`Say <b title="</b>">hi</b> and more`)
	if got := s.Text(); got != "Say hi and more" {
		t.Errorf("Text() = %q, want %q", got, "Say hi and more")
	}
	got := s.Find("b", nil)
	if len(got) != 1 {
		t.Fatalf("Find() returned %d matches, want 1", len(got))
	}
	if m := got[0]; m.Text != "hi" || m.Offset != 4 || m.Length != 2 {
		t.Errorf("Find() = %+v, want text=hi offset=4 length=2", m)
	}
}

// TestFind_QuotedGreaterThan 测试引号内的 '>' 不会提前结束标签
func TestFind_QuotedGreaterThan(t *testing.T) {
	s := New(`Go <a href="https://x.io/?q=a>b">here</a>`)
	if got := s.Text(); got != "Go here" {
		t.Errorf("Text() = %q, want %q", got, "Go here")
	}
	got := s.Find("a", HasAttr("href"))
	if len(got) != 1 {
		t.Fatalf("Find() returned %d matches, want 1", len(got))
	}
	if v, _ := AttrValue(got[0].Attrs, "href"); v != "https://x.io/?q=a>b" {
		t.Errorf("href = %q, want %q", v, "https://x.io/?q=a>b")
	}
	if got[0].Offset != 3 || got[0].Length != 4 {
		t.Errorf("Find() offset=%d length=%d, want 3/4", got[0].Offset, got[0].Length)
	}
}

func TestStripTags_Comments(t *testing.T) {
	if got := StripTags("a<!-- <b>x</b> -->b<br/>c"); got != "abc" {
		t.Errorf("StripTags() = %q, want %q", got, "abc")
	}
}

// attrsOf 返回 markup 中第一个标签的属性
func attrsOf(t *testing.T, markup string) []html.Attribute {
	t.Helper()
	tokens := lex(markup)
	if len(tokens) == 0 {
		t.Fatalf("lex(%q) returned no tokens", markup)
	}
	return tokens[0].attrs
}

func TestAttrValue(t *testing.T) {
	tests := []struct {
		tag  string
		name string
		want string
		ok   bool
	}{
		{`<a href="https://a.b">`, "href", "https://a.b", true},
		{`<a HREF='x'>`, "href", "x", true},
		{`<a href="">`, "href", "", true},
		{`<a href=bare>`, "href", "bare", true},
		{`<a href="a&amp;b">`, "href", "a&b", true},
		{`<a class="a" data-href="x">`, "href", "", false},
		{`<a title="y">`, "href", "", false},
	}
	for _, tt := range tests {
		got, ok := AttrValue(attrsOf(t, tt.tag), tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("AttrValue(%q, %q) = %q, %v; want %q, %v", tt.tag, tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStyleValue(t *testing.T) {
	tests := []struct {
		tag      string
		property string
		want     string
		ok       bool
	}{
		{`<span style="color: red">`, "color", "red", true},
		{`<span style="font-size: x-large; color:#fff">`, "color", "#fff", true},
		{`<span style="background-color: red">`, "color", "", false},
		{`<p style="text-align: center">`, "text-align", "center", true},
		{`<span class="x">`, "color", "", false},
	}
	for _, tt := range tests {
		got, ok := StyleValue(attrsOf(t, tt.tag), tt.property)
		if got != tt.want || ok != tt.ok {
			t.Errorf("StyleValue(%q, %q) = %q, %v; want %q, %v", tt.tag, tt.property, got, ok, tt.want, tt.ok)
		}
	}
}

func TestElements(t *testing.T) {
	markup := `<div><p>a</p></div><pre>code</pre><P style="text-align: left">b</P><h1>open`
	got := Elements(markup, "p", "div", "pre", "h1")

	type summary struct {
		Name  string
		Inner string
		Attrs []html.Attribute
	}
	var gotSummary []summary
	for _, el := range got {
		gotSummary = append(gotSummary, summary{el.Name, el.Inner, el.Attrs})
	}
	want := []summary{
		{"div", "<p>a</p>", nil},
		{"pre", "code", nil},
		{"p", "b", []html.Attribute{{Key: "style", Val: "text-align: left"}}},
	}
	if diff := cmp.Diff(want, gotSummary); diff != "" {
		t.Errorf("Elements() mismatch (-want +got):\n%s", diff)
	}

	if got[1].Start != 19 || got[1].InnerStart != 24 || got[1].End != 34 {
		t.Errorf("pre element = %+v, want start=19 inner=24 end=34", got[1])
	}
}

func TestElements_AttributeContainsMarkup(t *testing.T) {
	markup := `<p title="<p>x</p>">real</p>`
	got := Elements(markup, "p")
	if len(got) != 1 || got[0].Inner != "real" || got[0].End != len(markup) {
		t.Errorf("Elements() = %+v, want one p with inner 'real'", got)
	}
}
