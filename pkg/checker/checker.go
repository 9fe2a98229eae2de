// Package checker reports whether the declaration blocks of JavaScript
// modules can be edited.
package checker

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/siyuan-infoblox/wiseimport/pkg/document"
	apperrors "github.com/siyuan-infoblox/wiseimport/pkg/errors"
	"github.com/siyuan-infoblox/wiseimport/pkg/locator"
	"github.com/siyuan-infoblox/wiseimport/pkg/utils"
)

type CheckerConfig struct {
	Out     io.Writer // report output, discarded when nil
	Verbose bool      // whether to report healthy files too
}

// Result is the outcome of checking one file.
type Result struct {
	Path       string
	Descriptor *locator.Descriptor // nil when no block was located
	Err        error               // set when the block cannot be edited
}

// checker runs the locator over files and summarizes what it finds
type checker struct {
	config CheckerConfig
}

// New creates a checker writing its report to config.Out
func New(config CheckerConfig) *checker {
	if config.Out == nil {
		config.Out = io.Discard
	}
	return &checker{config: config}
}

func (c *checker) printf(format string, args ...any) {
	fmt.Fprintf(c.config.Out, format, args...)
}

// CheckFile locates the declaration block of a single file. Read failures
// are returned as errors; locator failures other than a missing block are
// stored in the result.
func (c *checker) CheckFile(path string) (Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", apperrors.ErrMsgFailedToReadFile, err)
	}

	result := Result{Path: path}
	desc, err := locator.Locate(document.NewBuffer(string(src)))
	switch {
	case errors.Is(err, locator.ErrNotFound):
	case err != nil:
		result.Err = err
	default:
		result.Descriptor = desc
	}
	return result, nil
}

// ProcessFile checks a single file and prints its result
func (c *checker) ProcessFile(path string) error {
	result, err := c.CheckFile(path)
	if err != nil {
		return err
	}
	c.report(result, true)
	if result.Err != nil {
		return fmt.Errorf("%s: %w", apperrors.ErrMsgFailedToLocateBlock, result.Err)
	}
	return nil
}

func (c *checker) report(result Result, always bool) {
	switch {
	case result.Err != nil:
		c.printf(apperrors.InfoMsgErrorChecking+"\n", result.Path, result.Err)
	case !always && !c.config.Verbose:
	case result.Descriptor == nil:
		c.printf(apperrors.InfoMsgNoBlock+"\n", result.Path)
	default:
		c.printf(apperrors.InfoMsgBlockSummary+"\n", result.Path, result.Descriptor.Kind, len(result.Descriptor.Dependencies))
	}
}

// ProcessFiles checks multiple files and prints a summary line
func (c *checker) ProcessFiles(filePaths []string) error {
	checkedCount := 0
	noBlockCount := 0
	errorCount := 0

	for _, filePath := range filePaths {
		result, err := c.CheckFile(filePath)
		if err != nil {
			result = Result{Path: filePath, Err: err}
		}
		c.report(result, false)

		switch {
		case result.Err != nil:
			errorCount++
		case result.Descriptor == nil:
			noBlockCount++
		}
		checkedCount++
	}

	c.printf(apperrors.InfoMsgCheckedCount, checkedCount)
	if noBlockCount > 0 {
		c.printf(apperrors.InfoMsgNoBlockCount, noBlockCount)
	}
	if errorCount > 0 {
		c.printf(apperrors.InfoMsgErrorCount, errorCount)
	}
	c.printf("\n")

	if errorCount > 0 {
		return fmt.Errorf(apperrors.ErrMsgFilesFailedToCheck, errorCount)
	}
	return nil
}

// ProcessPath checks a file or every module file below a directory
func (c *checker) ProcessPath(path string) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", apperrors.ErrMsgFailedToCheckPath, err)
	}
	if !isDir {
		return c.ProcessFile(path)
	}

	moduleFiles, err := utils.FindModuleFiles(path)
	if err != nil {
		return fmt.Errorf("%s: %w", apperrors.ErrMsgFailedToFindModuleFiles, err)
	}
	if len(moduleFiles) == 0 {
		c.printf(apperrors.InfoMsgNoModuleFilesFound+"\n", path)
		return nil
	}

	if c.config.Verbose {
		c.printf(apperrors.InfoMsgFoundModuleFiles+"\n\n", len(moduleFiles), path)
	}
	return c.ProcessFiles(moduleFiles)
}
