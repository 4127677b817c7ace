package readers

import (
	"io"
	"math"
	"testing"

	"gotest.tools/assert"
)

func TestDeterministicRandomReader(t *testing.T) {
	a := make([]byte, 40)
	b := make([]byte, 40)
	_, err := io.ReadFull(DeterministicRandomReader(9), a)
	assert.NilError(t, err)

	// Splitting the reads does not change the stream.
	r := DeterministicRandomReader(9)
	_, err = io.ReadFull(r, b[:7])
	assert.NilError(t, err)
	_, err = io.ReadFull(r, b[7:])
	assert.NilError(t, err)
	assert.DeepEqual(t, a, b)

	c := make([]byte, 40)
	_, err = io.ReadFull(DeterministicRandomReader(10), c)
	assert.NilError(t, err)
	assert.Assert(t, string(a) != string(c))
}

func TestDeterministicCoinFlipper_Repeatability(t *testing.T) {
	seed := uint64(42)
	bits := 3
	flipper1 := NewDeterministicCoinFlipper(seed, bits, true)
	flipper2 := NewDeterministicCoinFlipper(seed, bits, false)

	const n = 100
	for i := 0; i < n; i++ {
		assert.Equal(t, flipper1.Flip(), !flipper2.Flip(), "flip mismatch at index %d", i)
	}
}

func TestDeterministicCoinFlipper_BiasCounts(t *testing.T) {
	seed := uint64(12345)
	const totalFlips = 256

	type biasCase struct {
		bits          int
		expectedHeads int
	}
	testCases := []biasCase{
		{0, 256},
		{1, 128},
		{2, 64},
		{3, 32},
		{4, 16},
	}

	for _, tc := range testCases {
		flipper := NewDeterministicCoinFlipper(seed, tc.bits, false)
		count := 0
		for i := 0; i < totalFlips; i++ {
			if flipper.Flip() {
				count++
			}
		}
		difference := math.Abs(float64(count - tc.expectedHeads))
		// Four standard deviations of a binomial count.
		p := float64(tc.expectedHeads) / totalFlips
		epsilon := 4 * math.Sqrt(totalFlips*p*(1-p))
		assert.Check(t, difference <= epsilon,
			"with %d bits, expected %d heads, got %d (difference %f, tolerance %f)",
			tc.bits, tc.expectedHeads, count, difference, epsilon)
	}
}
