// Package intern maps an input stream of arbitrary positive 64-bit node
// IDs to dense [0,N) indices during a single pass over an edge list, and
// retains the inverse mapping for translating results back to caller IDs.
//
// The forward map is a small open-addressed hash table keyed on a
// xxhash-mixed 64-bit ID rather than Go's builtin map, per the spec
// requirement that adversarial dense sequential IDs (the common case for
// graph node identifiers) must not degrade probe behaviour the way a
// weak or identity hash would under power-of-two bucket counts. The
// inverse map is a plain slice appended to on first sight of each ID.
package intern
