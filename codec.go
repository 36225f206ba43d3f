package drafthtml

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrEmptyInput is returned when there is no document data to decode.
var ErrEmptyInput = errors.New("drafthtml: empty input")

// MarshalDocument encodes doc as Draft.js raw content JSON.
func MarshalDocument(doc *Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("drafthtml: %w", err)
	}
	return data, nil
}

// UnmarshalDocument decodes Draft.js raw content JSON. The entity map may be
// an object or an array; block data may be an object or an empty array.
// JSON null decodes to a document without blocks.
func UnmarshalDocument(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("drafthtml: %w", err)
	}
	return &doc, nil
}

// MarshalDocumentYAML encodes doc as YAML using the Draft.js field names.
func MarshalDocumentYAML(doc *Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("drafthtml: %w", err)
	}
	return data, nil
}

// UnmarshalDocumentYAML decodes a YAML document.
func UnmarshalDocumentYAML(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("drafthtml: %w", err)
	}
	return &doc, nil
}
