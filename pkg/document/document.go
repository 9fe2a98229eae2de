package document

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrStale is returned when an edit batch was computed against an older
// version of the document.
var ErrStale = errors.New("document changed since the edit was computed")

// Position identifies a character in a document. Columns are byte offsets
// within the line, line terminators excluded.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p sorts before q.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// Document is the read side of a text document.
type Document interface {
	LineCount() int
	Line(i int) string
	TextRange(start, end Position) string
}

// Versioned is implemented by documents that can detect concurrent edits.
type Versioned interface {
	Version() uint64
}

// Insertion inserts Text at At.
type Insertion struct {
	At   Position
	Text string
}

// Batch is a set of insertions applied atomically. A zero Version skips the
// staleness check.
type Batch struct {
	Version uint64
	Inserts []Insertion
}

// Editor applies edit batches.
type Editor interface {
	Apply(b Batch) error
}

// Buffer is an in-memory, line addressable document. It implements Document,
// Versioned and Editor.
type Buffer struct {
	mu      sync.Mutex
	lines   []string
	eol     string
	version uint64
}

// NewBuffer splits content into lines. CRLF content keeps its line endings
// when rendered back with String.
func NewBuffer(content string) *Buffer {
	eol := "\n"
	if strings.Contains(content, "\r\n") {
		eol = "\r\n"
	}
	return &Buffer{
		lines:   splitLines(content),
		eol:     eol,
		version: 1,
	}
}

func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func (b *Buffer) LineCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// Line returns the text of line i, or "" when i is out of range.
func (b *Buffer) Line(i int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// TextRange returns the text between start (inclusive) and end (exclusive),
// lines joined with the buffer's line ending. Positions are clamped.
func (b *Buffer) TextRange(start, end Position) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if end.Before(start) {
		start, end = end, start
	}
	content := strings.Join(b.lines, b.eol)
	return content[b.offset(start):b.offset(end)]
}

func (b *Buffer) Version() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.version
}

// String renders the buffer back to text.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Join(b.lines, b.eol)
}

// offset converts a position to a byte offset in the joined content. A line
// past the end maps to the end of the document.
func (b *Buffer) offset(p Position) int {
	off := 0
	for i := 0; i < p.Line && i < len(b.lines); i++ {
		off += len(b.lines[i]) + len(b.eol)
	}
	if p.Line >= len(b.lines) {
		return off - len(b.eol)
	}
	col := p.Column
	if col < 0 {
		col = 0
	}
	if col > len(b.lines[p.Line]) {
		col = len(b.lines[p.Line])
	}
	return off + col
}

// Apply inserts every text of the batch at once. Positions refer to the
// document as it was before the batch; insertions at the same position keep
// their batch order.
func (b *Buffer) Apply(batch Batch) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if batch.Version != 0 && batch.Version != b.version {
		return fmt.Errorf("%w: edit version %d, document version %d", ErrStale, batch.Version, b.version)
	}
	if len(batch.Inserts) == 0 {
		return nil
	}

	type op struct {
		offset int
		index  int
		text   string
	}
	ops := make([]op, 0, len(batch.Inserts))
	for i, ins := range batch.Inserts {
		if ins.At.Line < 0 || ins.At.Line > len(b.lines) {
			return fmt.Errorf("insert position %s out of range", ins.At)
		}
		ops = append(ops, op{offset: b.offset(ins.At), index: i, text: ins.Text})
	}
	// Apply from the end so earlier offsets stay valid.
	sort.SliceStable(ops, func(i, j int) bool {
		if ops[i].offset != ops[j].offset {
			return ops[i].offset > ops[j].offset
		}
		return ops[i].index > ops[j].index
	})

	content := strings.Join(b.lines, b.eol)
	for _, o := range ops {
		text := o.text
		if b.eol != "\n" {
			text = strings.ReplaceAll(text, "\n", b.eol)
		}
		content = content[:o.offset] + text + content[o.offset:]
	}
	b.lines = splitLines(content)
	b.version++
	return nil
}
