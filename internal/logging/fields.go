package logging

// Field name constants for structured logging.
// Using constants prevents typos across call sites.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Rule and violation fields.
	FieldRule        = "rule"
	FieldSeverity    = "severity"
	FieldLine        = "line"
	FieldColumn      = "column"
	FieldMessage     = "message"
	FieldFixable     = "fixable"
	FieldDescription = "description"

	// Fix fields.
	FieldSpan    = "span"
	FieldFixDesc = "fix"
	FieldApplied = "applied"
	FieldSkipped = "skipped"

	// Import resolution fields.
	FieldImport = "import"
	FieldChain  = "chain"
	FieldDepth  = "depth"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesModified   = "files_modified"
	FieldViolationsTotal = "violations_total"
	FieldJobs            = "jobs"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
