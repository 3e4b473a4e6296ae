package glossary

import "testing"

func TestNormalize_EmptyBecomesNewline(t *testing.T) {
	if got := Normalize(""); got != "\n" {
		t.Errorf("expected %q, got %q", "\n", got)
	}
}

func TestNormalize_WhitespaceOnlyBecomesNewline(t *testing.T) {
	for _, in := range []string{" ", "   ", "\t", "\n", " \t \n "} {
		if got := Normalize(in); got != "\n" {
			t.Errorf("Normalize(%q): expected %q, got %q", in, "\n", got)
		}
	}
}

func TestNormalize_PrintableASCIIPreserved(t *testing.T) {
	inputs := []string{
		"A power a character may use.",
		"plain text with (punctuation)! and [brackets]",
		"~!@#$%^&*()_+-=",
	}
	for _, in := range inputs {
		if got := Normalize(in); got != in {
			t.Errorf("Normalize(%q): expected input unchanged, got %q", in, got)
		}
	}
}

func TestNormalize_TrimsWhitespace(t *testing.T) {
	if got := Normalize("  padded text  "); got != "padded text" {
		t.Errorf("expected %q, got %q", "padded text", got)
	}
}

func TestNormalize_Translations(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"‘quoted’", "'quoted'"},
		{"“quoted”", `"quoted"`},
		{"pages 3–5", "pages 3-5"},
		{"a turn — one round", "a turn - one round"},
		{"non breaking", "nonbreaking"},
		{"© 2019", "(c) 2019"},
		{"45° arc", "45 degrees arc"},
		{"• first point", "* first point"},
		{"◦ nested point", "  * nested point"},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestNormalize_DropsPrivateUseGlyphs(t *testing.T) {
	// Code points at or above 50000 are decorative icon glyphs.
	if got := Normalize("roll\U000F0B70 dice"); got != "roll dice" {
		t.Errorf("expected %q, got %q", "roll dice", got)
	}
}

func TestNormalize_DropsUnmappedCharacters(t *testing.T) {
	if got := Normalize("café"); got != "caf" {
		t.Errorf("expected unmapped characters dropped, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"plain ascii",
		"  padded  ",
		"‘mixed’ — content here",
		"• bullet line",
		"45°",
		"café au lait",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
