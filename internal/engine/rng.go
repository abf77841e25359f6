package engine

// Stream is a deterministic pseudo-random number generator (xorshift64).
// Given the same seed it produces a bit-for-bit identical sequence across
// runs and platforms, which is what makes per-level generation replayable.
type Stream struct {
	state uint64
}

// seedMix is the multiplier folding a level number into a seed.
const seedMix = 0x9E3779B97F4A7C15

// SeedForLevel derives the generator seed for a level. The whole draw
// sequence for a level is a pure function of this value.
func SeedForLevel(level int) uint64 {
	return uint64(level)*seedMix + 0x6A09E667F3BCC909
}

// NewStream creates a new stream with the given seed.
func NewStream(seed uint64) *Stream {
	if seed == 0 {
		seed = 88172645463325252 // xorshift state must be nonzero
	}
	return &Stream{state: seed}
}

// Next returns the next random uint64.
func (s *Stream) Next() uint64 {
	s.state ^= s.state << 13
	s.state ^= s.state >> 7
	s.state ^= s.state << 17
	return s.state
}

// Intn returns a random int in [0, n).
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Next() % uint64(n))
}
