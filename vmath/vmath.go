package vmath

import (
	"time"
	"unsafe"
)

// FastRand is a xorshift64 generator (shifts 13, 17, 5). Not cryptographic;
// cheap enough to call several times per cell per frame.
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator from an explicit seed. Zero is coerced to
// one since the all-zero state is a fixed point of xorshift.
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// TimeSeed derives a per-run seed from the clock mixed with a stack address
// so repeated runs produce different sequences.
func TimeSeed() uint64 {
	var probe int
	return uint64(time.Now().UnixNano()) ^ uint64(uintptr(unsafe.Pointer(&probe)))
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits.
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
