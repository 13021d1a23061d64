package core

import "fmt"

// Kind classifies a failure so callers and tests can branch on the category
// instead of substring-matching messages. The rendered message stays the
// user-visible contract; the kind rides alongside it.
type Kind string

const (
	// KindValidation marks missing/empty required fields or malformed input.
	KindValidation Kind = "validation"
	// KindNotFound marks point lookups and scans with no matching record.
	KindNotFound Kind = "not_found"
	// KindRemote marks transport or remote-side invocation faults.
	KindRemote Kind = "remote"
	// KindConfig marks missing worker handles or wiring errors.
	KindConfig Kind = "config"
	// KindInternal marks everything else.
	KindInternal Kind = "internal"
)

// Error is a tagged failure. It satisfies the error interface for internal
// plumbing but is always rendered to a message string before crossing a
// component boundary.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Errorf builds a tagged error from a format string.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind of err, defaulting to KindInternal for untagged
// errors and "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindInternal
}
