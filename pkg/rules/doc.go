// Package rules contains the built-in ctxlint rules.
//
// Each rule is a simple predicate scan over the document lines. Rules
// that can auto-fix also implement fix.Generator, deriving fixes from
// their own violations plus the original text.
//
//	CL001  require-title        context files must start with a # title
//	CL002  heading-space        "#Header" must be "# Header" (fixable)
//	CL003  no-trailing-spaces   trailing whitespace (fixable)
//	CL004  final-newline        exactly one trailing newline (fixable)
//	CL005  no-hard-tabs         tabs replaced with spaces (fixable)
//	CL006  line-length          lines within a configurable limit
//	CL007  file-size            file within configurable size limits
//	CL008  fenced-language      code fences declare a language (fixable)
//	CL020  import-resolution    @imports resolve without cycles
package rules
