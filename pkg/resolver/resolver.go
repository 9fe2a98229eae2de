// Package resolver turns file system paths found in the workspace into module
// import paths.
package resolver

import (
	"path"
	"strings"
)

// LayoutMarker maps a project location to an import path prefix.
type LayoutMarker struct {
	// Segments are path substrings identifying the location, e.g. "/webapp/".
	Segments []string `yaml:"segments" json:"segments"`
	// Prefix is prepended to the path found after (or at) the segment.
	Prefix string `yaml:"prefix" json:"prefix"`
	// Strip removes the matched segment itself from the result.
	Strip bool `yaml:"strip" json:"strip"`
}

// Candidate is a search result together with its import path.
type Candidate struct {
	Path       string `json:"path"`
	ImportPath string `json:"importPath"`
}

// DefaultMarkers returns the built-in marker table, most specific first.
func DefaultMarkers() []LayoutMarker {
	return []LayoutMarker{
		{Segments: []string{"/sap/m/"}},
		{Segments: []string{"/sap/bi/webi/"}},
		{Segments: []string{"/webapp/"}, Prefix: "sap/bi/webi/", Strip: true},
	}
}

// Resolve returns the candidate matched by the highest priority marker. Within
// a marker, candidates are tried in the given order. It returns nil when no
// marker matches any candidate.
func Resolve(candidates []string, markers []LayoutMarker) *Candidate {
	for _, marker := range markers {
		for _, candidate := range candidates {
			if importPath, ok := marker.apply(candidate); ok {
				return &Candidate{Path: candidate, ImportPath: importPath}
			}
		}
	}
	return nil
}

// apply derives the import path of p when one of the marker segments occurs
// in it. Matching ignores case; the result keeps the original spelling.
func (m LayoutMarker) apply(p string) (string, bool) {
	normalized := ToSlash(p)
	lower := strings.ToLower(normalized)
	for _, segment := range m.Segments {
		if segment == "" {
			continue
		}
		segment = strings.ToLower(ToSlash(segment))
		index := strings.Index(lower, segment)
		if index == -1 {
			continue
		}
		if m.Strip {
			index += len(segment)
		}
		return join(m.Prefix, normalized[index:]), true
	}
	return "", false
}

func join(prefix, rest string) string {
	rest = strings.TrimPrefix(rest, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	result := strings.TrimPrefix(ToSlash(prefix+rest), "/")
	return strings.TrimSuffix(result, path.Ext(result))
}

// ToSlash replaces backslash separators with forward slashes regardless of
// the host OS.
func ToSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
