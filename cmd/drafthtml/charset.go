package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// inputDecoder returns the decoder for the --charset flag. A byte order mark
// in the input always wins over the named charset; with no charset the input
// is read as UTF-8 with an optional BOM.
func inputDecoder(charset string) (*encoding.Decoder, error) {
	fallback := unicode.UTF8.NewDecoder()
	if name := strings.TrimSpace(charset); name != "" {
		enc, err := htmlindex.Get(name)
		if err != nil {
			return nil, fmt.Errorf("invalid --charset %q: %w", charset, err)
		}
		fallback = enc.NewDecoder()
	}
	return &encoding.Decoder{Transformer: unicode.BOMOverride(fallback)}, nil
}

// decodeReader wraps r so it yields UTF-8.
func decodeReader(r io.Reader, charset string) (io.Reader, error) {
	dec, err := inputDecoder(charset)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, dec), nil
}
