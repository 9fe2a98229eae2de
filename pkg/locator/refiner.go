package locator

import (
	"strings"

	"github.com/siyuan-infoblox/wiseimport/pkg/document"
)

const lineComment = "//"

// CommaState records whether a list already ends with a separator.
type CommaState int

const (
	CommaUnknown CommaState = iota
	CommaPresent
	CommaAbsent
)

func (c CommaState) String() string {
	switch c {
	case CommaPresent:
		return "present"
	case CommaAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// ToLastMeaningful walks backward from a coarse end-of-list position over
// blank text until it reaches the last meaningful character. The walk stops
// in front of a line holding a comment. The comma state is only known when at
// least one backward step landed on a line; otherwise it is CommaUnknown and
// must be settled with ResolveComma.
func ToLastMeaningful(doc document.Document, p document.Position) (document.Position, CommaState) {
	comma := CommaUnknown
	line := prefix(doc.Line(p.Line), p.Column)
	for strings.TrimSpace(line) == "" && p.Line > 0 {
		previous := doc.Line(p.Line - 1)
		if strings.Contains(previous, lineComment) {
			comma = CommaUnknown
			break
		}
		p = document.Position{Line: p.Line - 1, Column: len(previous)}
		line = previous
		if strings.HasSuffix(strings.TrimSpace(previous), ",") {
			comma = CommaPresent
		} else {
			comma = CommaAbsent
		}
	}
	return p, comma
}

// ResolveComma settles a CommaUnknown state from the nearest text in front of
// p that is neither blank nor a comment. Trailing comments are ignored.
func ResolveComma(doc document.Document, p document.Position, state CommaState) bool {
	if state != CommaUnknown {
		return state == CommaPresent
	}
	line := prefix(doc.Line(p.Line), p.Column)
	for i := p.Line; i >= 0; i-- {
		if i != p.Line {
			line = doc.Line(i)
		}
		code := strings.TrimSpace(stripComment(line))
		if code == "" {
			continue
		}
		return strings.HasSuffix(code, ",")
	}
	return false
}

// SettleInsert finishes a walk that stopped in front of a comment line by
// moving p onto the last line holding code. When that code ends with a comma
// the point goes to the end of the line, so a trailing comment stays with its
// entry; otherwise it goes right after the code, in front of the comment.
// A point whose line prefix is not blank is left alone. The second result
// reports whether the list already ends with a comma.
func SettleInsert(doc document.Document, p document.Position) (document.Position, bool) {
	if strings.TrimSpace(prefix(doc.Line(p.Line), p.Column)) != "" {
		return p, ResolveComma(doc, p, CommaUnknown)
	}
	for i := p.Line - 1; i >= 0; i-- {
		line := doc.Line(i)
		code := strings.TrimRight(stripComment(line), " \t\r")
		if strings.TrimSpace(code) == "" {
			continue
		}
		if strings.HasSuffix(code, ",") {
			return document.Position{Line: i, Column: len(line)}, true
		}
		return document.Position{Line: i, Column: len(code)}, false
	}
	return p, false
}

func prefix(line string, column int) string {
	if column < 0 {
		return ""
	}
	if column > len(line) {
		return line
	}
	return line[:column]
}

// stripComment drops a trailing line comment that is not inside a quoted
// string.
func stripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"' || c == '`':
			quote = c
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			return line[:i]
		}
	}
	return line
}
