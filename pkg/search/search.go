// Package search finds workspace files by glob pattern.
package search

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are never searched.
var DefaultExcludes = []string{
	"**/node_modules/**",
	"**/resources/**",
	"**/dist/**",
}

// DefaultMaxResults bounds a search when the caller passes no limit.
const DefaultMaxResults = 100

var errLimit = errors.New("result limit reached")

// Finder searches a workspace for files.
type Finder interface {
	Find(ctx context.Context, pattern string, excludes []string, maxResults int) ([]string, error)
}

// FSFinder searches a file system. Results are Root joined with the slash
// separated path inside FS, in walk order.
type FSFinder struct {
	FS   fs.FS
	Root string
}

// NewDirFinder searches the directory tree rooted at dir.
func NewDirFinder(dir string) *FSFinder {
	return &FSFinder{FS: os.DirFS(dir), Root: dir}
}

// ModuleGlob is the pattern for the module file of symbol.
func ModuleGlob(symbol string) string {
	return fmt.Sprintf("**/%s.js", symbol)
}

func (f *FSFinder) Find(ctx context.Context, pattern string, excludes []string, maxResults int) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	for _, exclude := range excludes {
		if !doublestar.ValidatePattern(exclude) {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", exclude, doublestar.ErrBadPattern)
		}
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	var results []string
	err := fs.WalkDir(f.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		if d.IsDir() {
			// A directory is skipped when anything inside it would be excluded.
			if excluded(excludes, p) || excluded(excludes, path.Join(p, "_")) {
				return fs.SkipDir
			}
			return nil
		}
		if excluded(excludes, p) {
			return nil
		}
		if ok, _ := doublestar.Match(pattern, p); !ok {
			return nil
		}
		results = append(results, f.join(p))
		if len(results) >= maxResults {
			return errLimit
		}
		return nil
	})
	if err != nil && !errors.Is(err, errLimit) {
		return nil, err
	}
	return results, nil
}

func (f *FSFinder) join(p string) string {
	if f.Root == "" {
		return p
	}
	return strings.TrimSuffix(strings.ReplaceAll(f.Root, `\`, "/"), "/") + "/" + p
}

func excluded(excludes []string, p string) bool {
	for _, exclude := range excludes {
		if ok, _ := doublestar.Match(exclude, p); ok {
			return true
		}
	}
	return false
}
