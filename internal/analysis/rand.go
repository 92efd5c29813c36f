package analysis

// RandStream is a deterministic pseudo-random stream (Mulberry32). The same
// seed always yields the same sequence on every platform: all mixing
// arithmetic is unsigned 32-bit with wraparound, never signed overflow or
// float rounding.
//
// A stream is not safe for concurrent use. Each clustering call owns its own
// instance and consumes it sequentially.
type RandStream struct {
	state uint32
}

// NewRandStream returns a stream seeded with the given value.
func NewRandStream(seed uint32) *RandStream {
	return &RandStream{state: seed}
}

// Next returns the next value in [0, 1).
func (r *RandStream) Next() float64 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	return float64(z) / 4294967296.0
}
