package core

import "time"

// 48-bit linear congruential generator parameters
const (
	lcgModulus    = 1 << 48
	lcgMask       = lcgModulus - 1
	lcgMultiplier = 0x5DEECE66D
	lcgIncrement  = 11
)

// Random is a seeded linear congruential generator producing uniform floats in [0, 1).
// It is not safe for concurrent use; every render worker owns its own instance.
type Random struct {
	state uint64
}

// NewRandom creates a generator with an explicit seed
func NewRandom(seed uint64) *Random {
	return &Random{state: seed & lcgMask}
}

// TimeSeed derives a seed from the wall-clock nanosecond fragment
func TimeSeed() uint64 {
	nanos := uint64(time.Now().Nanosecond())
	return reverseDigits(nanos * nanos)
}

// NewTimeSeededRandom creates a generator seeded by TimeSeed.
// Two generators created within the same nanosecond share a sequence, so renderers
// seed workers explicitly and keep this for scene construction only.
func NewTimeSeededRandom() *Random {
	return NewRandom(TimeSeed())
}

// Seed resets the generator state
func (r *Random) Seed(seed uint64) {
	r.state = seed & lcgMask
}

// Float64 advances the generator and returns a value in [0, 1)
func (r *Random) Float64() float64 {
	r.state = (r.state*lcgMultiplier + lcgIncrement) & lcgMask
	return float64(r.state) / lcgModulus
}

// Between returns a value in [min, max)
func (r *Random) Between(minVal, maxVal float64) float64 {
	return minVal + (maxVal-minVal)*r.Float64()
}

// Get1D implements Sampler
func (r *Random) Get1D() float64 {
	return r.Float64()
}

// Get2D implements Sampler
func (r *Random) Get2D() Vec2 {
	return NewVec2(r.Float64(), r.Float64())
}

// Get3D implements Sampler
func (r *Random) Get3D() Vec3 {
	return NewVec3(r.Float64(), r.Float64(), r.Float64())
}

// SeedForRow derives an independent seed for one image row from a base seed.
// Rows, not workers, own the random sequence, so the partition never changes pixel values.
func SeedForRow(base uint64, row int) uint64 {
	z := base + uint64(row+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// reverseDigits scrambles a number by reversing its decimal digits
func reverseDigits(n uint64) uint64 {
	var reversed uint64
	for n > 0 {
		reversed = reversed*10 + n%10
		n /= 10
	}
	return reversed
}
