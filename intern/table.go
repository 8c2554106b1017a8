package intern

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// mix64 applies xxhash's avalanche to the 8-byte big-endian encoding of
// id. Without this mixing step, dense sequential IDs (1,2,3,...) would
// cluster under a plain power-of-two mask and degrade every probe to a
// near-linear scan.
func mix64(id uint64) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], id)
	return xxhash.Sum64(buf[:])
}

// table is an open-addressed hash map from a positive uint64 node ID to
// its assigned dense index. Linear probing, power-of-two capacity, no
// deletions (the interner only ever grows). Zero value is not usable;
// construct with newTable.
type table struct {
	keys  []uint64
	vals  []uint64
	used  []bool
	mask  uint64
	count int
}

const initialTableCapacity = 16 // power of two; grown by doubling

func newTable() *table {
	return &table{
		keys: make([]uint64, initialTableCapacity),
		vals: make([]uint64, initialTableCapacity),
		used: make([]bool, initialTableCapacity),
		mask: initialTableCapacity - 1,
	}
}

// get returns the index assigned to id and whether it was found.
func (t *table) get(id uint64) (uint64, bool) {
	i := mix64(id) & t.mask
	for t.used[i] {
		if t.keys[i] == id {
			return t.vals[i], true
		}
		i = (i + 1) & t.mask
	}
	return 0, false
}

// put inserts id -> idx, growing the table first if the load factor
// would exceed 3/4. Assumes id is not already present (callers check
// via get first, since Intern needs to distinguish hit from miss
// anyway).
func (t *table) put(id, idx uint64) {
	if (t.count+1)*4 > len(t.keys)*3 {
		t.grow()
	}
	i := mix64(id) & t.mask
	for t.used[i] {
		i = (i + 1) & t.mask
	}
	t.keys[i], t.vals[i], t.used[i] = id, idx, true
	t.count++
}

func (t *table) grow() {
	oldKeys, oldVals, oldUsed := t.keys, t.vals, t.used
	newCap := len(t.keys) * 2
	t.keys = make([]uint64, newCap)
	t.vals = make([]uint64, newCap)
	t.used = make([]bool, newCap)
	t.mask = uint64(newCap - 1)
	t.count = 0
	for i, used := range oldUsed {
		if used {
			t.put(oldKeys[i], oldVals[i])
		}
	}
}
