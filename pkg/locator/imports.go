package locator

import (
	"regexp"

	"github.com/siyuan-infoblox/wiseimport/pkg/document"
)

// importPattern matches a default import statement: import <name> from '<path>'.
var importPattern = regexp.MustCompile(`^\s*import\s+([A-Za-z_$][\w$]*)\s+from\s+(['"])([^'"]+)['"]\s*(;?)`)

// ImportLine is one matched import statement.
type ImportLine struct {
	Name      string
	Path      string
	Quote     string
	Semicolon bool
}

// MatchImport parses a single import statement line.
func MatchImport(text string) (ImportLine, bool) {
	m := importPattern.FindStringSubmatch(text)
	if m == nil {
		return ImportLine{}, false
	}
	return ImportLine{Name: m[1], Quote: m[2], Path: m[3], Semicolon: m[4] == ";"}, true
}

func locateImports(doc document.Document) (*Descriptor, error) {
	desc := &Descriptor{
		Kind:  LineImports,
		Quote: DefaultQuote,
	}
	last := -1
	for i := 0; i < doc.LineCount(); i++ {
		imp, ok := MatchImport(doc.Line(i))
		if !ok {
			continue
		}
		desc.Parameters = append(desc.Parameters, imp.Name)
		desc.Dependencies = append(desc.Dependencies, imp.Quote+imp.Path+imp.Quote)
		desc.Quote = imp.Quote
		desc.Semicolon = imp.Semicolon
		last = i
	}
	if last == -1 {
		return nil, ErrNotFound
	}
	desc.DependencyInsert = document.Position{Line: last + 1}
	desc.ParameterInsert = desc.DependencyInsert
	return desc, nil
}
