// Package entity implements multi-column entity resolution: grouping
// records that share any value across a chosen set of columns, by
// treating each distinct column value and each record as a node in a
// bipartite graph and reusing the dsu core.
//
// Columns may be strings, integers, or floats; each value is normalised
// to a canonical string via a method on a small tagged-variant Column
// type rather than runtime type dispatch. Integers render as plain
// decimal; floats render via strconv.FormatFloat(v, 'g', -1, 64), the
// shortest decimal that round-trips to the same bit pattern.
package entity
