package errors

// Error message constants for the wiseimport application
const (
	// File processing errors
	ErrMsgFailedToReadFile    = "failed to read file"
	ErrMsgFailedToWriteFile   = "failed to write file"
	ErrMsgFailedToApplyEdits  = "failed to apply edits"
	ErrMsgFailedToSearch      = "failed to search workspace"
	ErrMsgFailedToLocateBlock = "failed to locate declaration block"
	ErrMsgNoWordAtCursor      = "no symbol at cursor"
	ErrMsgFailedToCheckPath   = "failed to check path"
	ErrMsgFailedToResolveRoot = "failed to resolve workspace root"
	ErrMsgOutcome             = "dependency not added: %s"

	// Configuration errors
	ErrMsgFailedToReadConfig    = "failed to read config"
	ErrMsgFailedToParseConfig   = "failed to parse config"
	ErrMsgMarkerWithoutSegments = "layout marker %d has no segments"

	// User facing messages
	InfoMsgBlockNotFound     = "Cannot locate sap.ui.define() section!"
	InfoMsgMalformedBlock    = "The sap.ui.define() section cannot be edited safely: %v"
	InfoMsgAlreadyImported   = "Import \"%s\" already exists!"
	InfoMsgCandidateNotFound = "\"%s.js\" not found in the workspace file system!"
	InfoMsgAdded             = "%s has been added into the define section"
	InfoMsgOpened            = "%s opened."
	InfoMsgCannotOpen        = "Cannot open file name \"%s\"."

	// Progress messages
	InfoMsgWorkspaceRoot = "Workspace root: %s"
	InfoMsgLocated       = "Located %s block: %d dependencies, %d parameters"
	InfoMsgSearching     = "Searching %s"
	InfoMsgCandidates    = "Found %d candidates"
	InfoMsgWrote         = "Wrote: %s"

	// Check messages
	ErrMsgFailedToFindModuleFiles = "failed to find module files"
	ErrMsgFilesFailedToCheck      = "%d files have a declaration block that cannot be edited"
	InfoMsgNoModuleFilesFound     = "No JavaScript files found in %s"
	InfoMsgFoundModuleFiles       = "Found %d JavaScript files in %s"
	InfoMsgBlockSummary           = "%s: %s block, %d dependencies"
	InfoMsgNoBlock                = "%s: no declaration block"
	InfoMsgErrorChecking          = "%s: %v"
	InfoMsgCheckedCount           = "Checked %d files"
	InfoMsgNoBlockCount           = ", %d without a declaration block"
	InfoMsgErrorCount             = ", %d with errors"
)
