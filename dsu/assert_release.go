//go:build !dsu_debug

package dsu

// assertInRange is a no-op in release builds. Out-of-range indices are a
// programmer error per the contract documented on Find/Union/Same; the
// forest itself does no bounds checking beyond this debug-mode assertion,
// to keep the hot path branch-free.
func assertInRange(i, n uint64) {}
