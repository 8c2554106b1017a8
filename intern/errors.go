// Package intern error taxonomy. Sentinels only: never build an error
// dynamically, branch with errors.Is, attach context via wrapf.
package intern

import (
	"errors"
	"fmt"
)

// ErrInvalidNodeID indicates a node ID of zero or less was presented to
// Intern. NodeIds are unsigned 64-bit integers >= 1; the interner
// assumes valid IDs and fails fast before any state is recorded.
var ErrInvalidNodeID = errors.New("intern: node id must be >= 1")

// wrapf prefixes err with a method name for caller-facing context while
// preserving it for errors.Is/errors.Unwrap.
func wrapf(method string, err error) error {
	return fmt.Errorf("intern: %s: %w", method, err)
}
