package locator

import (
	"strings"

	"github.com/siyuan-infoblox/wiseimport/pkg/document"
)

// Search returns the position of the first literal occurrence of text at or
// after from (document start when nil). The starting column only applies to
// the starting line.
func Search(doc document.Document, text string, from *document.Position) (document.Position, bool) {
	line, col := 0, 0
	if from != nil {
		line, col = from.Line, from.Column
	}
	for ; line < doc.LineCount(); line++ {
		content := doc.Line(line)
		if col <= len(content) {
			if index := strings.Index(content[col:], text); index != -1 {
				return document.Position{Line: line, Column: col + index}, true
			}
		}
		col = 0
	}
	return document.Position{}, false
}
