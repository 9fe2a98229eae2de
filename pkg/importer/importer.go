// Package importer adds a dependency to the declaration block of a JavaScript
// module.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/siyuan-infoblox/wiseimport/pkg/config"
	"github.com/siyuan-infoblox/wiseimport/pkg/document"
	apperrors "github.com/siyuan-infoblox/wiseimport/pkg/errors"
	"github.com/siyuan-infoblox/wiseimport/pkg/known"
	"github.com/siyuan-infoblox/wiseimport/pkg/locator"
	"github.com/siyuan-infoblox/wiseimport/pkg/resolver"
	"github.com/siyuan-infoblox/wiseimport/pkg/search"
)

// Outcome is the terminal state of an AddDependency call.
type Outcome int

const (
	Failed Outcome = iota
	Added
	AlreadyImported
	BlockNotFound
	MalformedBlock
	CandidateNotFound
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case AlreadyImported:
		return "already imported"
	case BlockNotFound:
		return "declaration block not found"
	case MalformedBlock:
		return "malformed declaration block"
	case CandidateNotFound:
		return "not found in workspace"
	default:
		return "failed"
	}
}

// Notifier receives one user facing status message per operation.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// Config wires the importer to its tables and collaborators.
type Config struct {
	Tables   config.Config
	Finder   search.Finder
	Notifier Notifier
	Log      io.Writer // progress output, discarded when nil
}

// Importer computes and applies dependency insertions.
type Importer struct {
	config Config
}

// New creates an Importer. Empty tables fall back to the built-in defaults.
func New(cfg Config) *Importer {
	defaults := config.Default()
	if cfg.Tables.Markers == nil {
		cfg.Tables.Markers = defaults.Markers
	}
	if cfg.Tables.Modules == nil {
		cfg.Tables.Modules = defaults.Modules
	}
	if cfg.Tables.Excludes == nil {
		cfg.Tables.Excludes = defaults.Excludes
	}
	if cfg.Tables.MaxResults <= 0 {
		cfg.Tables.MaxResults = defaults.MaxResults
	}
	if cfg.Notifier == nil {
		cfg.Notifier = NotifierFunc(func(string) {})
	}
	if cfg.Log == nil {
		cfg.Log = io.Discard
	}
	return &Importer{config: cfg}
}

func (im *Importer) notify(format string, args ...any) {
	im.config.Notifier.Notify(fmt.Sprintf(format, args...))
}

func (im *Importer) logf(format string, args ...any) {
	fmt.Fprintf(im.config.Log, format+"\n", args...)
}

// AddDependency inserts symbol into the declaration block of doc through
// editor. Every outcome is reported to the notifier. The returned error is
// only set for failures of the collaborators (search, stale document); no
// edit is applied in that case.
func (im *Importer) AddDependency(ctx context.Context, doc document.Document, editor document.Editor, symbol string) (Outcome, error) {
	desc, err := locator.Locate(doc)
	switch {
	case errors.Is(err, locator.ErrNotFound):
		im.notify(apperrors.InfoMsgBlockNotFound)
		return BlockNotFound, nil
	case err != nil:
		im.notify(apperrors.InfoMsgMalformedBlock, err)
		return MalformedBlock, nil
	}
	im.logf(apperrors.InfoMsgLocated, desc.Kind, len(desc.Dependencies), len(desc.Parameters))

	if desc.HasParameter(symbol) {
		im.notify(apperrors.InfoMsgAlreadyImported, symbol)
		return AlreadyImported, nil
	}

	name, importPath, ok := known.Lookup(im.config.Tables.Modules, symbol)
	if !ok {
		candidate, _, err := im.Resolve(ctx, symbol)
		if err != nil {
			im.notify("%v", err)
			return Failed, err
		}
		if candidate == nil {
			im.notify(apperrors.InfoMsgCandidateNotFound, symbol)
			return CandidateNotFound, nil
		}
		name, importPath = symbol, candidate.ImportPath
	}

	batch := Edits(desc, doc, name, importPath)
	if err := editor.Apply(batch); err != nil {
		im.notify("%s: %v", apperrors.ErrMsgFailedToApplyEdits, err)
		return Failed, fmt.Errorf("%s: %w", apperrors.ErrMsgFailedToApplyEdits, err)
	}
	im.notify(apperrors.InfoMsgAdded, importPath)
	return Added, nil
}

// Resolve searches the workspace for the module file of symbol and maps the
// results through the layout markers. The raw search results are returned
// as well; the candidate is nil when no marker matched.
func (im *Importer) Resolve(ctx context.Context, symbol string) (*resolver.Candidate, []string, error) {
	if im.config.Finder == nil {
		return nil, nil, nil
	}
	pattern := search.ModuleGlob(symbol)
	im.logf(apperrors.InfoMsgSearching, pattern)
	paths, err := im.config.Finder.Find(ctx, pattern, im.config.Tables.Excludes, im.config.Tables.MaxResults)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", apperrors.ErrMsgFailedToSearch, err)
	}
	im.logf(apperrors.InfoMsgCandidates, len(paths))
	return resolver.Resolve(paths, im.config.Tables.Markers), paths, nil
}

// OpenFile finds the file defining word. When no layout marker matches, the
// first search result is used as is. It returns "" when nothing was found.
func (im *Importer) OpenFile(ctx context.Context, word string) (string, error) {
	candidate, paths, err := im.Resolve(ctx, word)
	if err != nil {
		im.notify("%v", err)
		return "", err
	}
	target := ""
	switch {
	case candidate != nil:
		target = candidate.Path
	case len(paths) > 0:
		target = paths[0]
	}
	if target == "" {
		im.notify(apperrors.InfoMsgCannotOpen, word)
		return "", nil
	}
	im.notify(apperrors.InfoMsgOpened, target)
	return target, nil
}
