// Package locator finds the dependency declaration block of a JavaScript
// module by plain text scanning and computes where a new dependency and its
// parameter go.
package locator

import (
	"errors"
	"regexp"
	"strings"

	"github.com/siyuan-infoblox/wiseimport/pkg/document"
)

var (
	// ErrNotFound means no declaration block of either form was found.
	ErrNotFound = errors.New("declaration block not found")
	// ErrMalformedBlock means the located block does not read as a plain
	// comma separated list, usually because an entry contains a closing
	// delimiter.
	ErrMalformedBlock = errors.New("declaration block is malformed")
	// ErrMisaligned means the dependency and parameter counts differ, so an
	// appended parameter would bind to the wrong path.
	ErrMisaligned = errors.New("declaration block has different dependency and parameter counts")
)

// Kind is the syntax of a declaration block.
type Kind int

const (
	BracketedFactory Kind = iota
	LineImports
)

func (k Kind) String() string {
	if k == LineImports {
		return "line-imports"
	}
	return "bracketed-factory"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Markers recognised in the bracketed factory form.
const (
	DefineMarker   = "sap.ui.define"
	FactoryMarker  = "function"
	DefaultQuote   = "'"
	entrySeparator = ","
)

var (
	identifierPattern   = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	literalPattern      = regexp.MustCompile(`^(?:'[^'\\]*(?:\\.[^'\\]*)*'|"[^"\\]*(?:\\.[^"\\]*)*")$`)
)

// Descriptor is the normalized view of a declaration block.
type Descriptor struct {
	Kind Kind `json:"kind"`
	// DependencyInsert is where a new path literal goes. For LineImports it is
	// column 0 of the line after the last import.
	DependencyInsert document.Position `json:"dependencyInsert"`
	// ParameterInsert is where a new parameter name goes. Equal to
	// DependencyInsert for LineImports.
	ParameterInsert document.Position `json:"parameterInsert"`
	Dependencies    []string          `json:"dependencies"`
	Parameters      []string          `json:"parameters"`
	// DependencyIndent and Indentation are the fillers of the dependency and
	// parameter lists.
	DependencyIndent string `json:"dependencyIndent"`
	Indentation      string `json:"indentation"`
	DependencyComma  bool   `json:"dependencyComma"`
	ParameterComma   bool   `json:"parameterComma"`
	Quote            string `json:"quote"`
	Semicolon        bool   `json:"semicolon,omitempty"`
	// Version is the document version the positions were computed against,
	// zero when the document is not versioned.
	Version uint64 `json:"version,omitempty"`
}

// Locate finds the declaration block of doc. The bracketed factory form wins
// whenever its marker is present; the import lines form is the fallback.
func Locate(doc document.Document) (*Descriptor, error) {
	var version uint64
	if v, ok := doc.(document.Versioned); ok {
		version = v.Version()
	}

	var (
		desc *Descriptor
		err  error
	)
	if start, ok := Search(doc, DefineMarker, nil); ok {
		desc, err = locateFactory(doc, start)
	} else {
		desc, err = locateImports(doc)
	}
	if err != nil {
		return nil, err
	}
	desc.Version = version
	return desc, nil
}

// list is one delimited list of the factory form.
type list struct {
	entries []string
	insert  document.Position
	end     document.Position // position of the close delimiter
	comma   bool
}

// scanList reads the list opened by the first open delimiter at or after from
// and closed by the first close delimiter after it.
func scanList(doc document.Document, from document.Position, open, close string) (*list, error) {
	start, ok := Search(doc, open, &from)
	if !ok {
		return nil, ErrNotFound
	}
	end, ok := Search(doc, close, &start)
	if !ok {
		return nil, ErrNotFound
	}
	insert, state := ToLastMeaningful(doc, end)
	comma := state == CommaPresent
	if state == CommaUnknown {
		insert, comma = SettleInsert(doc, insert)
	}
	contentStart := document.Position{Line: start.Line, Column: start.Column + len(open)}
	var text string
	if contentStart.Before(insert) {
		text = doc.TextRange(contentStart, insert)
	}
	return &list{
		entries: SplitEntries(text, entrySeparator),
		insert:  insert,
		end:     end,
		comma:   comma,
	}, nil
}

func locateFactory(doc document.Document, start document.Position) (*Descriptor, error) {
	deps, err := scanList(doc, start, "[", "]")
	if err != nil {
		return nil, err
	}
	factory, ok := Search(doc, FactoryMarker, &deps.end)
	if !ok {
		return nil, ErrNotFound
	}
	// Anything but the argument separator between the two lists means the
	// marker belongs to some other function, e.g. inside an arrow factory.
	afterDeps := document.Position{Line: deps.end.Line, Column: deps.end.Column + 1}
	if !onlySeparators(doc.TextRange(afterDeps, factory)) {
		return nil, ErrMalformedBlock
	}
	params, err := scanList(doc, factory, "(", ")")
	if err != nil {
		return nil, err
	}

	desc := &Descriptor{
		Kind:             BracketedFactory,
		DependencyInsert: deps.insert,
		ParameterInsert:  params.insert,
		Dependencies:     trimAll(deps.entries),
		Parameters:       trimAll(params.entries),
		DependencyIndent: ComputeFiller(deps.entries),
		Indentation:      ComputeFiller(params.entries),
		DependencyComma:  deps.comma,
		ParameterComma:   params.comma,
		Quote:            DefaultQuote,
	}
	if err := desc.validate(); err != nil {
		return nil, err
	}
	if len(desc.Dependencies) > 0 {
		desc.Quote = desc.Dependencies[0][:1]
	}
	return desc, nil
}

func onlySeparators(text string) bool {
	text = blockCommentPattern.ReplaceAllString(text, "")
	for _, line := range strings.Split(text, "\n") {
		if strings.Trim(stripComment(line), ", \t\r") != "" {
			return false
		}
	}
	return true
}

func (d *Descriptor) validate() error {
	for _, dep := range d.Dependencies {
		if !literalPattern.MatchString(dep) {
			return ErrMalformedBlock
		}
	}
	for _, param := range d.Parameters {
		if !identifierPattern.MatchString(param) {
			return ErrMalformedBlock
		}
	}
	if len(d.Parameters) != len(d.Dependencies) {
		return ErrMisaligned
	}
	return nil
}

// HasParameter reports whether a bound name ends with name, ignoring case.
func (d *Descriptor) HasParameter(name string) bool {
	name = strings.ToLower(name)
	for _, param := range d.Parameters {
		if strings.HasSuffix(strings.ToLower(param), name) {
			return true
		}
	}
	return false
}
