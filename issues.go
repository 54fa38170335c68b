package cdecl

import "fmt"

// Loc is a source position within one input line.
type Loc struct {
	Line int // Line number, 1-based
	Col  int // Column number, 1-based
}

// String renders the position as "line:col".
func (l Loc) String() string { return fmt.Sprintf("%d:%d", l.Line, l.Col) }

// IssueLevel represents severity of a semantic issue.
type IssueLevel string

const (
	// IssueError indicates an error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a warning.
	IssueWarning IssueLevel = "warning"
)

// Issue represents one diagnostic produced by semantic checking. Issues are
// never fatal; the caller decides whether to abandon the statement.
type Issue struct {
	Level   IssueLevel `json:"level"`          // Severity level
	Code    string     `json:"code,omitempty"` // Machine-readable code
	Message string     `json:"message"`        // Human-readable message
	Loc     Loc        `json:"loc"`            // Source position
}

// errorIssue builds an error-level Issue at loc with a machine code.
func errorIssue(loc Loc, code, format string, args ...any) Issue {
	return Issue{Level: IssueError, Code: code,
		Message: fmt.Sprintf(format, args...), Loc: loc}
}

// warnIssue builds a warning-level Issue at loc with a machine code.
func warnIssue(loc Loc, code, format string, args ...any) Issue {
	return Issue{Level: IssueWarning, Code: code,
		Message: fmt.Sprintf(format, args...), Loc: loc}
}

// hasError reports whether any issue is error-level.
func hasError(issues []Issue) bool {
	for _, is := range issues {
		if is.Level == IssueError {
			return true
		}
	}
	return false
}
