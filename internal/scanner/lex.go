package scanner

import (
	"strings"

	"golang.org/x/net/html"
)

// token is one lexed piece of markup with its byte span in the input.
type token struct {
	kind       html.TokenType
	name       string // lower-cased tag name, empty for text
	attrs      []html.Attribute
	start, end int
	text       string // raw bytes of a text token, entities left as written
}

// lex splits markup into tokens. Spans are contiguous and cover the whole
// input, so start and end are byte offsets into markup.
func lex(markup string) []token {
	z := html.NewTokenizer(strings.NewReader(markup))
	var tokens []token
	pos := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return tokens
		}
		// Raw 必须在 TagName 之前读取，TagName 会原地改写缓冲区
		raw := z.Raw()
		t := token{kind: tt, start: pos, end: pos + len(raw)}
		pos = t.end

		switch tt {
		case html.TextToken:
			t.text = string(raw)
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			t.name = string(name)
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				t.attrs = append(t.attrs, html.Attribute{Key: string(key), Val: string(val)})
			}
		}
		tokens = append(tokens, t)
	}
}

// textOf concatenates the text tokens in tokens.
func textOf(tokens []token) string {
	var sb strings.Builder
	for _, t := range tokens {
		if t.kind == html.TextToken {
			sb.WriteString(t.text)
		}
	}
	return sb.String()
}
