package glossary

import "strings"

// privateUseFloor is the lowest code point treated as a font-specific
// private-use glyph (decorative icons in the source template). Everything at
// or above it is dropped during normalization.
const privateUseFloor = 50000

// replacements maps non-ASCII code points with a known ASCII rendering.
// Code points absent from this table (and outside printable ASCII) are
// dropped silently.
var replacements = map[rune]string{
	'‘': "'",  // left single quote
	'’': "'",  // right single quote
	'“': `"`,  // left double quote
	'”': `"`,  // right double quote
	'–': "-",  // en dash
	'—': "-",  // em dash
	' ': "",   // non-breaking space
	'©': "(c)",
	'°': " degrees",
	'•': "* ",   // bullet
	'◦': "  * ", // sub-list bullet
}

// Normalize sanitizes a raw extracted string into printable ASCII. A string
// that is empty after trimming becomes a single "\n": empty source fragments
// are paragraph-break markers, and the Assembler preserves them rather than
// discarding them as empty. Printable ASCII passes through, private-use
// glyphs are dropped, and everything else goes through the replacement table.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "\n"
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 32 && r <= 126:
			b.WriteRune(r)
		case r >= privateUseFloor:
			// Decorative icon glyph, dropped.
		default:
			if rep, ok := replacements[r]; ok {
				b.WriteString(rep)
			}
		}
	}
	return b.String()
}
