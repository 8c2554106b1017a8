// Error taxonomy for package graph. Sentinels only: never build a
// sentinel dynamically, attach context with wrapf, branch with
// errors.Is.
package graph

import (
	"errors"
	"fmt"
)

// ErrInvalidNodeID indicates a node ID of zero was presented; NodeIds
// are unsigned 64-bit integers >= 1 by contract.
var ErrInvalidNodeID = errors.New("graph: node id must be >= 1")

// ErrInvalidNodeRange indicates an explicit n_nodes smaller than the
// maximum node ID actually observed in the edge list.
var ErrInvalidNodeRange = errors.New("graph: n_nodes smaller than observed max node id")

// ErrCapacityExceeded indicates the estimated DSF allocation would
// exceed the configured hard limit; surfaced before any large
// allocation is attempted.
var ErrCapacityExceeded = errors.New("graph: estimated allocation exceeds capacity hard limit")

// wrapf prefixes err with an operation name and a short detail string
// (which may name the offending values), preserving err for errors.Is.
// The detail string is used as given; it is not clipped.
func wrapf(op, detail string, err error) error {
	return fmt.Errorf("graph: %s: %s: %w", op, detail, err)
}
