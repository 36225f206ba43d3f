// Package scanner locates elements of a small, fixed tag subset inside HTML
// fragments without building a tree.
//
// Tags and attributes are lexed with the golang.org/x/net/html tokenizer, so
// quoted attribute values may contain '>' or markup. Pairing is deliberately
// shallow: an opening tag pairs with the nearest closing tag of the same name
// that comes before the next opening tag of that name. Tags of other names
// nested inside are skipped over, but a tag nested inside itself is not
// recovered.
package scanner

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/riverfjs/drafthtml/internal/util"
)

// StripTags removes every tag and comment from markup, leaving the text
// between them unchanged.
func StripTags(markup string) string {
	return textOf(lex(markup))
}

// Filter decides whether an opening tag takes part in a scan, given its
// attributes.
type Filter func(attrs []html.Attribute) bool

// Match is one paired element found by Scanner.Find.
type Match struct {
	Start int              // byte offset of the opening tag in the fragment
	End   int              // byte offset just past the closing tag
	Attrs []html.Attribute // attributes of the opening tag
	Inner string           // markup between the tags
	Text  string           // Inner with tags stripped

	// Offset and Length locate Text inside the stripped fragment, in UTF-16
	// code units. Offset is the first occurrence of Text, which is not
	// necessarily the one produced by this element when Text repeats.
	Offset int
	Length int
}

// Scanner scans one block's inline markup.
type Scanner struct {
	markup string
	tokens []token
	text   string
}

// New returns a scanner for markup.
func New(markup string) *Scanner {
	tokens := lex(markup)
	return &Scanner{
		markup: markup,
		tokens: tokens,
		text:   textOf(tokens),
	}
}

// Text returns the fragment with all tags stripped.
func (s *Scanner) Text() string {
	return s.text
}

// tagRef points at a tag token by index.
type tagRef struct {
	idx        int
	start, end int
}

// Find returns the paired occurrences of tag that pass filter. A nil filter
// accepts every opening tag; a non-nil filter never sees tags without
// attributes.
func (s *Scanner) Find(tag string, filter Filter) []Match {
	tag = strings.ToLower(tag)

	var opens, closes []tagRef
	for i, t := range s.tokens {
		if t.name != tag {
			continue
		}
		switch t.kind {
		case html.StartTagToken:
			if filter != nil && (len(t.attrs) == 0 || !filter(t.attrs)) {
				continue
			}
			opens = append(opens, tagRef{idx: i, start: t.start, end: t.end})
		case html.EndTagToken:
			closes = append(closes, tagRef{idx: i, start: t.start, end: t.end})
		}
	}
	if len(opens) == 0 {
		return nil
	}
	used := make([]bool, len(closes))

	var matches []Match
	for i, open := range opens {
		limit := -1
		if i+1 < len(opens) {
			limit = opens[i+1].start
		}
		ci := -1
		for j, c := range closes {
			if used[j] || c.start < open.end {
				continue
			}
			if limit < 0 || c.start < limit {
				ci = j
			}
			break
		}
		if ci < 0 {
			continue
		}
		used[ci] = true
		closing := closes[ci]

		plain := textOf(s.tokens[open.idx+1 : closing.idx])
		idx := strings.Index(s.text, plain)
		if idx < 0 {
			continue
		}
		matches = append(matches, Match{
			Start:  open.start,
			End:    closing.end,
			Attrs:  s.tokens[open.idx].attrs,
			Inner:  s.markup[open.end:closing.start],
			Text:   plain,
			Offset: util.ByteToUnit(s.text, idx),
			Length: util.UTF16Len(plain),
		})
	}
	return matches
}
