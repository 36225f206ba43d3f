package scanner

import (
	"strings"

	"golang.org/x/net/html"
)

// AttrValue returns the value of the named attribute. The tokenizer has
// already lower-cased keys and decoded character references in values.
func AttrValue(attrs []html.Attribute, name string) (string, bool) {
	for _, a := range attrs {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// StyleValue returns the first token of an inline CSS property from the
// style attribute, e.g. "red" for color in style="color: red".
// Property names match exactly, so "background-color" is not "color".
func StyleValue(attrs []html.Attribute, property string) (string, bool) {
	style, ok := AttrValue(attrs, "style")
	if !ok {
		return "", false
	}
	for _, decl := range strings.Split(style, ";") {
		name, value, found := strings.Cut(decl, ":")
		if !found || !strings.EqualFold(strings.TrimSpace(name), property) {
			continue
		}
		fields := strings.Fields(value)
		if len(fields) == 0 {
			return "", false
		}
		return fields[0], true
	}
	return "", false
}

// HasStyle builds a Filter accepting tags whose inline style sets property.
// An empty want accepts any value.
func HasStyle(property, want string) Filter {
	return func(attrs []html.Attribute) bool {
		v, ok := StyleValue(attrs, property)
		if !ok {
			return false
		}
		return want == "" || strings.EqualFold(v, want)
	}
}

// HasAttr builds a Filter accepting tags carrying the attribute name.
func HasAttr(name string) Filter {
	return func(attrs []html.Attribute) bool {
		_, ok := AttrValue(attrs, name)
		return ok
	}
}

// Element is an outermost element found by Elements.
type Element struct {
	Name       string // lower-cased tag name
	Start      int    // byte offset of the opening tag
	InnerStart int    // byte offset just past the opening tag
	End        int    // byte offset just past the closing tag
	Attrs      []html.Attribute
	Inner      string
}

// Elements scans markup left to right for elements named in names. Each
// opening tag pairs with the first following closing tag of the same name and
// scanning resumes after it, so elements nested in a match are not reported
// on their own. Opening tags without a closing tag are skipped.
func Elements(markup string, names ...string) []Element {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[strings.ToLower(n)] = true
	}

	tokens := lex(markup)
	var out []Element
	for i := 0; i < len(tokens); i++ {
		open := tokens[i]
		if open.kind != html.StartTagToken || !wanted[open.name] {
			continue
		}
		j := i + 1
		for j < len(tokens) && (tokens[j].kind != html.EndTagToken || tokens[j].name != open.name) {
			j++
		}
		if j == len(tokens) {
			continue
		}
		closing := tokens[j]
		out = append(out, Element{
			Name:       open.name,
			Start:      open.start,
			InnerStart: open.end,
			End:        closing.end,
			Attrs:      open.attrs,
			Inner:      markup[open.end:closing.start],
		})
		i = j
	}
	return out
}
