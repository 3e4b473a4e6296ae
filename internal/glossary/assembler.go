package glossary

import (
	"strconv"
	"strings"

	"github.com/tmcgee/glossdex/internal/fragment"
)

// Assembler groups consecutive body fragments under the most recent entry
// title and commits completed (title, lines) pairs into the output mapping.
// Titles may be split across several fragments, so title parts accumulate
// until a non-title fragment or end of stream completes the section.
//
// Not safe for concurrent use; exactly one caller drives it start to finish.
type Assembler struct {
	titleParts []string
	bodyLines  []string
	entries    map[string][]string
}

func NewAssembler() *Assembler {
	return &Assembler{entries: make(map[string][]string)}
}

// Add feeds one classified fragment into the state machine. The fragment's
// text is normalized first; fragments that normalize to the empty string are
// discarded. A title fragment completes any pending section before its text
// is accumulated.
func (a *Assembler) Add(f fragment.Classified) {
	text := Normalize(f.Text)
	if text == "" {
		return
	}
	if f.IsEntryTitle {
		a.Complete()
		a.titleParts = append(a.titleParts, text)
		return
	}
	a.bodyLines = append(a.bodyLines, text)
}

// Complete commits the pending section, if any, and resets both buffers.
// A section commits only when title and body are both non-empty; orphaned
// titles or bodies are expected document noise and are dropped. A title that
// parses as an integer is a page-number artifact styled like a title, not a
// glossary term, and is dropped too. Idempotent; must be called once more
// after the last fragment to flush the final section.
func (a *Assembler) Complete() {
	if len(a.titleParts) > 0 && len(a.bodyLines) > 0 {
		title := strings.Join(a.titleParts, "")
		if _, err := strconv.Atoi(title); err != nil {
			lines := make([]string, len(a.bodyLines))
			copy(lines, a.bodyLines)
			a.entries[title] = lines
		}
	}
	a.titleParts = a.titleParts[:0]
	a.bodyLines = a.bodyLines[:0]
}

// Entries returns the committed term → definition-lines mapping. Later
// entries with the same title overwrite earlier ones.
func (a *Assembler) Entries() map[string][]string {
	return a.entries
}
