package entity

import (
	"errors"
	"fmt"
)

// ErrColumnLengthMismatch indicates the supplied columns do not all
// share the same row count.
var ErrColumnLengthMismatch = errors.New("entity: columns have mismatched lengths")

// ErrInvalidMinGroupSize indicates MinGroupSize < 1.
var ErrInvalidMinGroupSize = errors.New("entity: min_group_size must be >= 1")

// ErrNoColumns indicates GroupID was called with zero columns, so a row
// count cannot be inferred.
var ErrNoColumns = errors.New("entity: at least one column is required")

func wrapf(op, detail string, err error) error {
	return fmt.Errorf("entity: %s: %s: %w", op, detail, err)
}
