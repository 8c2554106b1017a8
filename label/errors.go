package label

import (
	"errors"
	"fmt"
)

// ErrEdgeLengthMismatch indicates the from/to endpoint slices passed to
// Label have different lengths; they must describe the same edge list
// in parallel.
var ErrEdgeLengthMismatch = errors.New("label: from/to edge slices have different lengths")

func wrapf(method string, err error) error {
	return fmt.Errorf("label: %s: %w", method, err)
}
