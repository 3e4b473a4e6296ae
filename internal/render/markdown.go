package render

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Terms returns the glossary's term keys in English collation order. The
// extracted mapping itself carries no ordering; presentation decides.
func Terms(entries map[string][]string) []string {
	terms := make([]string, 0, len(entries))
	for term := range entries {
		terms = append(terms, term)
	}
	collate.New(language.English).SortStrings(terms)
	return terms
}

// Markdown renders the glossary as a markdown document: one h2 per term,
// definition lines joined with spaces, "\n" marker lines as paragraph breaks.
func Markdown(entries map[string][]string) string {
	var b strings.Builder
	b.WriteString("# Glossary\n")
	for _, term := range Terms(entries) {
		b.WriteString("\n## ")
		b.WriteString(term)
		b.WriteString("\n\n")
		b.WriteString(joinLines(entries[term]))
		b.WriteString("\n")
	}
	return b.String()
}

func joinLines(lines []string) string {
	var b strings.Builder
	needSpace := false
	for _, line := range lines {
		if line == "\n" {
			b.WriteString("\n\n")
			needSpace = false
			continue
		}
		if needSpace {
			b.WriteByte(' ')
		}
		b.WriteString(line)
		needSpace = true
	}
	return b.String()
}
