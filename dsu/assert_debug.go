//go:build dsu_debug

package dsu

import "fmt"

// assertInRange panics when i is outside [0,n). Build with -tags dsu_debug
// to enable; release builds compile this check out entirely.
func assertInRange(i, n uint64) {
	if i >= n {
		panic(fmt.Sprintf("dsu: index %d out of range [0,%d)", i, n))
	}
}
