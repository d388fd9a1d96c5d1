package treema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeStructuralMismatch is the only error kind the engine itself raises:
	// two trees handed to ZipWith/ZipReduce disagree in leaf count or in
	// leaf/container kind at corresponding positions.
	CodeStructuralMismatch = "structural_mismatch"
	// Ingestion-layer codes (source package); never produced by the engine.
	CodeParseError  = "parse_error"
	CodeInvalidType = "invalid_type"
)

// Issue represents a single failure entry.
type Issue struct {
	Path    string // Slash path into the structure (for example: /left).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input source (-1 when unknown).
	// Params carries structured parameters (e.g., {"left":3, "right":5})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. structural_mismatch at /left
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsStructuralMismatch reports whether err carries a structural_mismatch issue.
// Errors returned by caller-supplied leaf functions never satisfy this.
func IsStructuralMismatch(err error) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == CodeStructuralMismatch {
			return true
		}
	}
	return false
}
