package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// HTML renders the glossary as a standalone HTML page by converting the
// markdown rendering through goldmark.
func HTML(entries map[string][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>Glossary</title></head>\n<body>\n")
	if err := goldmark.New().Convert([]byte(Markdown(entries)), &buf); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}
