package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avelsher/pdfprobe/constants"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want constants.MessageCategory
	}{
		{"Syntax Error: Couldn't find trailer dictionary", constants.CategoryStructure},
		{"error: cannot recognize xref format", constants.CategoryStructure},
		{"warning: repairing broken document", constants.CategoryStructure},
		{"Invalid CMap in embedded font", constants.CategoryEncoding},
		{"No ToUnicode table, text may be garbled", constants.CategoryEncoding},
		{"could not read XMP metadata", constants.CategoryMetadata},
		{"failed to extract content from page 3", constants.CategoryText},
		{"something entirely different", constants.CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line))
		})
	}
}

func TestClassifyEncodingBeatsText(t *testing.T) {
	// "font" and "text" both match; the encoding table is consulted first
	assert.Equal(t, constants.CategoryEncoding, Classify("text uses an unknown font"))
}

func TestClassifyLines(t *testing.T) {
	raw := "Syntax Error: bad xref entry\n\n  Invalid CMap  \n"
	msgs := classifyLines(raw)
	assert.Len(t, msgs, 2)
	assert.Equal(t, constants.CategoryStructure, msgs[0].Category)
	assert.Equal(t, "Syntax Error: bad xref entry", msgs[0].Text)
	assert.Equal(t, constants.CategoryEncoding, msgs[1].Category)
	assert.Equal(t, "Invalid CMap", msgs[1].Text)
}

func TestClassifyLinesEmpty(t *testing.T) {
	assert.Empty(t, classifyLines(""))
	assert.Empty(t, classifyLines("\n\n  \n"))
}
