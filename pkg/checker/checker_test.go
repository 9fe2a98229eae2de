package checker

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/wiseimport/pkg/locator"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func tree(t *testing.T) string {
	return writeTree(t, map[string]string{
		"webapp/Good.js":        "sap.ui.define(['a'], function (A) {})",
		"webapp/Bad.js":         "sap.ui.define(['a', 'b'], function (A) {})",
		"webapp/Plain.js":       "const x = 1\n",
		"webapp/lib/Imports.js": "import A from 'x/A'\n",
		"node_modules/x/Bad.js": "sap.ui.define(['a', 'b'], function (A) {})",
	})
}

func TestChecker_CheckFile(t *testing.T) {
	root := tree(t)
	c := New(CheckerConfig{})

	tests := []struct {
		name     string
		file     string
		wantKind locator.Kind
		wantNil  bool
		wantErr  error
	}{
		{name: "factory block", file: "webapp/Good.js", wantKind: locator.BracketedFactory},
		{name: "import lines", file: "webapp/lib/Imports.js", wantKind: locator.LineImports},
		{name: "no block", file: "webapp/Plain.js", wantNil: true},
		{name: "misaligned block", file: "webapp/Bad.js", wantNil: true, wantErr: locator.ErrMisaligned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			path := filepath.Join(root, filepath.FromSlash(tt.file))
			result, err := c.CheckFile(path)
			req.NoError(err)
			req.Equal(path, result.Path)
			if tt.wantErr != nil {
				req.ErrorIs(result.Err, tt.wantErr)
			} else {
				req.NoError(result.Err)
			}
			if tt.wantNil {
				req.Nil(result.Descriptor)
				return
			}
			req.NotNil(result.Descriptor)
			req.Equal(tt.wantKind, result.Descriptor.Kind)
		})
	}

	_, err := c.CheckFile(filepath.Join(root, "missing.js"))
	require.Error(t, err)
}

func TestChecker_ProcessPath(t *testing.T) {
	root := tree(t)
	file := func(name string) string { return filepath.Join(root, "webapp", filepath.FromSlash(name)) }

	t.Run("directory", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		err := New(CheckerConfig{Out: &out}).ProcessPath(root)
		req.EqualError(err, "1 files have a declaration block that cannot be edited")
		req.Equal(
			file("Bad.js")+": declaration block has different dependency and parameter counts\n"+
				"Checked 4 files, 1 without a declaration block, 1 with errors\n",
			out.String())
	})

	t.Run("directory verbose", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		err := New(CheckerConfig{Out: &out, Verbose: true}).ProcessPath(root)
		req.Error(err)
		req.Contains(out.String(), "Found 4 JavaScript files in "+root+"\n\n")
		req.Contains(out.String(), file("Good.js")+": bracketed-factory block, 1 dependencies\n")
		req.Contains(out.String(), file("Plain.js")+": no declaration block\n")
		req.Contains(out.String(), file("lib/Imports.js")+": line-imports block, 1 dependencies\n")
		req.NotContains(out.String(), "node_modules")
	})

	t.Run("healthy directory", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		err := New(CheckerConfig{Out: &out}).ProcessPath(filepath.Join(root, "webapp", "lib"))
		req.NoError(err)
		req.Equal("Checked 1 files\n", out.String())
	})

	t.Run("single file", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		req.NoError(New(CheckerConfig{Out: &out}).ProcessPath(file("Good.js")))
		req.Equal(file("Good.js")+": bracketed-factory block, 1 dependencies\n", out.String())
	})

	t.Run("single malformed file", func(t *testing.T) {
		req := require.New(t)
		err := New(CheckerConfig{}).ProcessPath(file("Bad.js"))
		req.ErrorIs(err, locator.ErrMisaligned)
	})

	t.Run("empty directory", func(t *testing.T) {
		req := require.New(t)
		empty := t.TempDir()
		var out bytes.Buffer
		req.NoError(New(CheckerConfig{Out: &out}).ProcessPath(empty))
		req.Equal("No JavaScript files found in "+empty+"\n", out.String())
	})

	t.Run("missing path", func(t *testing.T) {
		req := require.New(t)
		req.Error(New(CheckerConfig{}).ProcessPath(filepath.Join(root, "missing")))
	})
}
