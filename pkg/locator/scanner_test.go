package locator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/wiseimport/pkg/document"
)

func TestSearch(t *testing.T) {
	doc := document.NewBuffer("a [b]\n\n  ] c\n]")

	tests := []struct {
		name   string
		text   string
		from   *document.Position
		want   document.Position
		wantOK bool
	}{
		{"from document start", "]", nil, document.Position{Line: 0, Column: 4}, true},
		{"from a column", "]", &document.Position{Line: 0, Column: 5}, document.Position{Line: 2, Column: 2}, true},
		{"match at the start column", "[", &document.Position{Line: 0, Column: 2}, document.Position{Line: 0, Column: 2}, true},
		{"column only applies to the first line", "]", &document.Position{Line: 2, Column: 3}, document.Position{Line: 3, Column: 0}, true},
		{"multi character literal", "] c", nil, document.Position{Line: 2, Column: 2}, true},
		{"literal, not a pattern", ".", nil, document.Position{}, false},
		{"column past the line end", "a", &document.Position{Line: 0, Column: 99}, document.Position{}, false},
		{"not found", "x", nil, document.Position{}, false},
		{"no wraparound", "a", &document.Position{Line: 1, Column: 0}, document.Position{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, ok := Search(doc, tt.text, tt.from)
			req.Equal(tt.wantOK, ok)
			req.Equal(tt.want, got)
		})
	}
}
