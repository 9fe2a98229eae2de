package importer

import (
	"regexp"

	"github.com/siyuan-infoblox/wiseimport/pkg/document"
)

var wordPattern = regexp.MustCompile(`\w+`)

// Selection is an editor selection. A cursor is an empty selection.
type Selection struct {
	Start document.Position
	End   document.Position
}

// Cursor returns an empty selection at p.
func Cursor(p document.Position) Selection {
	return Selection{Start: p, End: p}
}

func (s Selection) IsSingleLine() bool { return s.Start.Line == s.End.Line }

func (s Selection) IsEmpty() bool { return s.Start == s.End }

// WordAt returns the symbol designated by sel: the selected text of a single
// line selection, or the word around the cursor. Multi-line selections
// designate nothing.
func WordAt(doc document.Document, sel Selection) (string, bool) {
	if !sel.IsSingleLine() {
		return "", false
	}
	if !sel.IsEmpty() {
		if text := doc.TextRange(sel.Start, sel.End); text != "" {
			return text, true
		}
	}
	line := doc.Line(sel.Start.Line)
	x := sel.Start.Column
	for _, m := range wordPattern.FindAllStringIndex(line, -1) {
		if x >= m[0] && x <= m[1] {
			return line[m[0]:m[1]], true
		}
	}
	return "", false
}
