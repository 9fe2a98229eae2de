package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// WorkspaceMarkers are files found at the root of a UI5 workspace
var WorkspaceMarkers = []string{"ui5.yaml", "package.json", ".git"}

// GetWorkspaceRoot finds the workspace directory of a file by walking up to
// the nearest directory holding a workspace marker
func GetWorkspaceRoot(filePath string) string {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		absPath = filePath
	}

	dir := absPath
	iterations := 0
	maxIterations := 20 // Prevent infinite loop

	for iterations < maxIterations {
		iterations++

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent

		for _, marker := range WorkspaceMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
	}

	// Fallback: the directory holding the webapp folder
	slashed := filepath.ToSlash(absPath)
	if index := strings.Index(slashed, "/webapp/"); index > 0 {
		return filepath.FromSlash(slashed[:index])
	}
	return ""
}
