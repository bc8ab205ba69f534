package probe

import (
	"strings"

	"github.com/avelsher/pdfprobe/constants"
)

// Keyword tables for bucketing backend diagnostics. Matching is substring,
// case-insensitive, first table wins.
var categoryKeywords = []struct {
	category constants.MessageCategory
	words    []string
}{
	{constants.CategoryEncoding, []string{"encoding", "unicode", "cmap", "font", "glyph", "charset", "tounicode"}},
	{constants.CategoryStructure, []string{"xref", "trailer", "startxref", "object", "stream", "dictionary", "catalog", "corrupt", "damaged", "repair", "eof", "header"}},
	{constants.CategoryMetadata, []string{"metadata", "info dict", "docinfo", "xmp", "producer", "creationdate"}},
	{constants.CategoryText, []string{"text", "extract", "content", "page"}},
}

// Classify maps one diagnostic line from a backend to a message category.
func Classify(line string) constants.MessageCategory {
	l := strings.ToLower(line)
	for _, t := range categoryKeywords {
		for _, w := range t.words {
			if strings.Contains(l, w) {
				return t.category
			}
		}
	}
	return constants.CategoryUnknown
}

// classifyLines turns raw stderr output into categorized messages, dropping
// blank lines.
func classifyLines(raw string) []Message {
	var msgs []Message
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		msgs = append(msgs, Message{Category: Classify(line), Text: line})
	}
	return msgs
}
