package binstamp

import "math"

// addUint64 adds v1 and v2, reporting whether the addition overflows a
// uint64; on overflow the returned sum is 0. Adapted from the teacher's addInt64 overflow check, generalized
// from a signed to an unsigned operand since every tick count this
// package adds (Filetime's 100ns ticks) is unsigned.
func addUint64(v1, v2 uint64) (sum uint64, overflows bool) {
	if v2 > math.MaxUint64-v1 {
		return 0, true
	}
	return v1 + v2, false
}
