package util

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Draft.js offsets and lengths count UTF-16 code units, not Go string bytes
// or runes. Characters outside the BMP (codepoint > 0xFFFF) take 2 units.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		count += RuneUnits(r)
	}
	return count
}

// RuneUnits returns how many UTF-16 code units r occupies.
func RuneUnits(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// ByteToUnit converts a byte index into text to a UTF-16 position.
// Indexes past the end are clamped.
func ByteToUnit(text string, byteIdx int) int {
	if byteIdx > len(text) {
		byteIdx = len(text)
	}
	if byteIdx <= 0 {
		return 0
	}
	return UTF16Len(text[:byteIdx])
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
