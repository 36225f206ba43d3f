// Package keys generates block keys. Keys are opaque strings that only need
// to be unique within one document.
package keys

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// KeyLength is the length of keys produced by Random, matching Draft.js.
const KeyLength = 5

// keySpace is 36^KeyLength.
const keySpace = 36 * 36 * 36 * 36 * 36

// Generator hands out block keys for one document.
type Generator interface {
	NextKey() string
}

// RandomGenerator draws short base-36 keys from random UUIDs and rejects
// keys it has already returned.
type RandomGenerator struct {
	seen map[string]struct{}
}

// Random returns a RandomGenerator with an empty history.
func Random() *RandomGenerator {
	return &RandomGenerator{seen: make(map[string]struct{})}
}

// NextKey returns a key not returned before by g.
func (g *RandomGenerator) NextKey() string {
	for {
		u := uuid.New()
		v := binary.BigEndian.Uint64(u[:8]) % keySpace
		key := strconv.FormatUint(v, 36)
		if len(key) < KeyLength {
			key = strings.Repeat("0", KeyLength-len(key)) + key
		}
		if _, dup := g.seen[key]; dup {
			continue
		}
		g.seen[key] = struct{}{}
		return key
	}
}

// SequentialGenerator returns "0", "1", "2", ... in order.
type SequentialGenerator struct {
	next int
}

// Sequential returns a generator starting at "0".
func Sequential() *SequentialGenerator {
	return &SequentialGenerator{}
}

// NextKey returns the next counter value.
func (g *SequentialGenerator) NextKey() string {
	key := strconv.Itoa(g.next)
	g.next++
	return key
}
