package render

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
)

// Document is the JSON shape of an extracted glossary.
type Document struct {
	GeneratedAt time.Time `json:"generated_at"`
	Terms       []Term    `json:"terms"`
}

// Term is one glossary entry with its ordered definition lines.
type Term struct {
	Term  string   `json:"term"`
	Lines []string `json:"lines"`
}

// JSON renders the glossary as an indented JSON document, terms in
// collation order.
func JSON(entries map[string][]string) ([]byte, error) {
	doc := Document{
		GeneratedAt: time.Now().UTC(),
		Terms:       make([]Term, 0, len(entries)),
	}
	for _, term := range Terms(entries) {
		doc.Terms = append(doc.Terms, Term{Term: term, Lines: entries[term]})
	}
	out, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal glossary: %w", err)
	}
	return out, nil
}
