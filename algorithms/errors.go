package algorithms

import (
	"errors"
	"fmt"
)

// ErrInvalidNodeID indicates a node ID of zero was presented; NodeIds
// are unsigned 64-bit integers >= 1 by contract, mirroring package graph.
var ErrInvalidNodeID = errors.New("algorithms: node id must be >= 1")

// ErrNoNodes indicates Degrees was asked to summarise an empty graph.
var ErrNoNodes = errors.New("algorithms: no nodes to summarise")

func wrapf(op, detail string, err error) error {
	return fmt.Errorf("algorithms: %s: %s: %w", op, detail, err)
}
