package core

// rngModulus maps the xorshift output onto [0, 1) in steps of 1/rngModulus.
const rngModulus = 10000

// Next advances a 32-bit xorshift stream by one step.
// It is a pure function of seed: the caller threads the returned seed into
// the next call. The value is in [0, 1).
//
// Seed 0 is a fixed point of the stream (every value is 0); callers that
// want variety must seed with a non-zero value.
func Next(seed int64) (value float64, next int64) {
	x := int32(uint32(seed))
	x ^= x << 13
	x ^= int32(uint32(x) >> 17)
	x ^= x << 5

	next = int64(x)
	if next < 0 {
		next = -next
	}
	return float64(next%rngModulus) / rngModulus, next
}
