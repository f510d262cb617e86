package voyage

import "math/rand"

// seeded constructs a fresh PRNG from a single uint64 counter. Every
// consumption site reseeds from scratch rather than holding a live
// *rand.Rand across calls, so that two independent replays of the same
// (state, action) sequence produce bit-identical draws regardless of
// call order elsewhere in the program. This mirrors the original
// source's `StdRng::seed_from_u64(state.rng_seed)` idiom exactly.
func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

// drawSeed advances the counter by drawing one more uint64 from rng.
// Call sites follow the fixed pattern: rng := seeded(state.RngSeed);
// v := rng.Intn(...); state.RngSeed = drawSeed(rng). Never reuse rng
// after this call, and never advance RngSeed from any other source.
func drawSeed(rng *rand.Rand) uint64 {
	return rng.Uint64()
}

// rollD6 consumes the counter and returns a value in 1..6.
func (s *GameState) rollD6() int {
	rng := seeded(s.RngSeed)
	v := rng.Intn(6) + 1
	s.RngSeed = drawSeed(rng)
	return v
}

// roll2D6 consumes the counter once for both dice, matching the
// original source's card_fog.rs telegraph re-roll (two draws from one
// seeded generator, then a single counter advance).
func (s *GameState) roll2D6() int {
	rng := seeded(s.RngSeed)
	v := rng.Intn(6) + 1 + rng.Intn(6) + 1
	s.RngSeed = drawSeed(rng)
	return v
}

// rollChance consumes the counter and returns true with probability
// 1/2^k (k==0 means "always true").
func (s *GameState) rollChance(k int) bool {
	if k <= 0 {
		return true
	}
	rng := seeded(s.RngSeed)
	threshold := 1 << uint(k)
	v := rng.Intn(threshold)
	s.RngSeed = drawSeed(rng)
	return v == 0
}

// rollIntn consumes the counter and returns a value in 0..n-1.
func (s *GameState) rollIntn(n int) int {
	rng := seeded(s.RngSeed)
	v := rng.Intn(n)
	s.RngSeed = drawSeed(rng)
	return v
}
