package locator

import "strings"

// SplitEntries splits text by line and then by sep, dropping blank and
// comment-only fragments. Surviving fragments keep their surrounding
// whitespace.
func SplitEntries(text string, sep string) []string {
	var entries []string
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), lineComment) {
			line = stripComment(line)
		}
		for _, part := range strings.Split(line, sep) {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" || strings.HasPrefix(trimmed, lineComment) {
				continue
			}
			entries = append(entries, part)
		}
	}
	return entries
}

// ComputeFiller returns the leading whitespace of the first non-comment entry
// with line breaks removed.
func ComputeFiller(entries []string) string {
	for _, entry := range entries {
		trimmed := strings.TrimSpace(entry)
		if strings.HasPrefix(trimmed, lineComment) {
			continue
		}
		index := strings.Index(entry, trimmed)
		if index <= 0 {
			return ""
		}
		return strings.NewReplacer("\r", "", "\n", "").Replace(entry[:index])
	}
	return ""
}

func trimAll(entries []string) []string {
	var trimmed []string
	for _, entry := range entries {
		trimmed = append(trimmed, strings.TrimSpace(entry))
	}
	return trimmed
}
