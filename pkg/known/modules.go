// Package known holds modules whose import path is fixed and never searched
// for.
package known

import (
	"sort"
	"strings"
)

// Modules maps a symbol name to its import path.
var Modules = map[string]string{
	"ActionDispatcher": "sap/bi/smart/core/action/ActionDispatcher",
	"ActionRegistry":   "sap/bi/smart/core/action/ActionRegistry",
	"StoreRegistry":    "sap/bi/smart/core/store/StoreRegistry",
	"Logger":           "sap/bi/smart/core/Logger",
}

// Lookup finds name in table ignoring case. It returns the table's spelling
// of the name along with the import path. An exact match wins; among keys
// differing only in case the first in sort order is used.
func Lookup(table map[string]string, name string) (string, string, bool) {
	if importPath, ok := table[name]; ok {
		return name, importPath, true
	}
	var matches []string
	for key := range table {
		if strings.EqualFold(key, name) {
			matches = append(matches, key)
		}
	}
	if len(matches) == 0 {
		return "", "", false
	}
	sort.Strings(matches)
	return matches[0], table[matches[0]], true
}
