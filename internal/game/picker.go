package game

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// RandomPicker draws a uniformly random index from crypto/rand.
func RandomPicker(n int) int {
	if n <= 1 {
		return 0
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return mrand.IntN(n)
	}
	return int(nBig.Int64())
}

// SeededPicker returns a reproducible Picker: the same seed yields the
// same sequence of indices.
func SeededPicker(seed uint64) Picker {
	rng := mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return func(n int) int {
		if n <= 1 {
			return 0
		}
		return rng.IntN(n)
	}
}

// IndexPicker always returns i. Handy for fixing the word in tests.
func IndexPicker(i int) Picker {
	return func(int) int { return i }
}
