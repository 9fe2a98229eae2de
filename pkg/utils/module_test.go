package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUtils_GetWorkspaceRoot(t *testing.T) {
	req := require.New(t)
	// Create a temporary directory for testing
	tempDir := t.TempDir()

	// Create a ui5.yaml file
	req.NoError(os.WriteFile(filepath.Join(tempDir, "ui5.yaml"), []byte("specVersion: '3.0'\n"), 0644))

	// Create a subdirectory with a test file
	subDir := filepath.Join(tempDir, "webapp", "controller")
	req.NoError(os.MkdirAll(subDir, 0755))

	testFile := filepath.Join(subDir, "Main.controller.js")
	req.NoError(os.WriteFile(testFile, []byte("sap.ui.define([], function () {})"), 0644))

	// Test: finds ui5.yaml in an ancestor directory
	result := GetWorkspaceRoot(testFile)
	req.Equal(tempDir, result, "GetWorkspaceRoot(%q)", testFile)
}

func TestUtils_GetWorkspaceRoot_nearestMarkerWins(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()

	nested := filepath.Join(tempDir, "packages", "lib")
	req.NoError(os.MkdirAll(filepath.Join(nested, "src"), 0755))
	req.NoError(os.WriteFile(filepath.Join(tempDir, "package.json"), []byte("{}"), 0644))
	req.NoError(os.WriteFile(filepath.Join(nested, "package.json"), []byte("{}"), 0644))

	testFile := filepath.Join(nested, "src", "Lib.js")
	req.Equal(nested, GetWorkspaceRoot(testFile))
}

func TestUtils_GetWorkspaceRoot_fallbacks(t *testing.T) {
	req := require.New(t)
	// Test with non-existent file
	result := GetWorkspaceRoot("/non/existent/path/file.js")
	req.Empty(result, "Expected empty string for non-existent path")

	// Test with webapp path pattern
	webappPath := "/non/existent/project/webapp/controller/Main.controller.js"
	result = GetWorkspaceRoot(webappPath)
	req.Equal(filepath.FromSlash("/non/existent/project"), result, "Expected project directory from webapp path")
}
