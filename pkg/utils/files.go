package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// skippedDirs are never descended into when collecting module files
var skippedDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"vendor":       true,
}

// IsModuleFile checks if a file is a JavaScript module source file
func IsModuleFile(filename string) bool {
	return strings.HasSuffix(filename, ".js")
}

// FindModuleFiles recursively finds all JavaScript module files in a directory
func FindModuleFiles(root string) ([]string, error) {
	var moduleFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip build output, dependencies and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if skippedDirs[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && IsModuleFile(filepath.Base(path)) {
			moduleFiles = append(moduleFiles, path)
		}

		return nil
	})

	return moduleFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
