package hash

import "hash/fnv"

// Stable returns a deterministic non-negative hash of s. Synthetic order
// amounts and stock levels derive from it, so the algorithm is fixed once
// and must not change between runs.
func Stable(s string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return int(h.Sum32())
}
