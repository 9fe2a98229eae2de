package importer

import (
	"fmt"

	"github.com/siyuan-infoblox/wiseimport/pkg/document"
	"github.com/siyuan-infoblox/wiseimport/pkg/locator"
)

// Edits builds the insertions that add name bound to importPath to the block
// described by desc.
func Edits(desc *locator.Descriptor, doc document.Document, name, importPath string) document.Batch {
	literal := desc.Quote + importPath + desc.Quote
	if desc.Kind == locator.LineImports {
		text := fmt.Sprintf("import %s from %s", name, literal)
		if desc.Semicolon {
			text += ";"
		}
		text += "\n"
		if desc.DependencyInsert.Line >= doc.LineCount() {
			// The last import ends the document without a line break.
			text = "\n" + text[:len(text)-1]
		}
		return document.Batch{
			Version: desc.Version,
			Inserts: []document.Insertion{{At: desc.DependencyInsert, Text: text}},
		}
	}

	return document.Batch{
		Version: desc.Version,
		Inserts: []document.Insertion{
			{At: desc.DependencyInsert, Text: entry(literal, len(desc.Dependencies), desc.DependencyComma, desc.DependencyIndent)},
			{At: desc.ParameterInsert, Text: entry(name, len(desc.Parameters), desc.ParameterComma, desc.Indentation)},
		},
	}
}

// entry formats a list entry appended after existing entries.
func entry(text string, existing int, comma bool, filler string) string {
	if existing == 0 {
		return text
	}
	separator := ","
	if comma {
		separator = ""
	}
	return separator + "\n" + filler + text
}
