// Package readers provides seeded byte sources for reproducible workloads.
package readers

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"io"

	"hop.computer/collections/pkg"
	"hop.computer/collections/pkg/must"
)

var iv = [aes.BlockSize]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
var mask = [aes.BlockSize]byte{0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77}

type ctrReader struct {
	stream cipher.Stream
}

// Read implements io.Reader. It will return a deterministic byte sequence based
// on the seed and the total number of bytes read. The number of calls does not
// matter. It cannot fail.
func (c *ctrReader) Read(p []byte) (n int, err error) {
	for i := 0; i < len(p); i += len(mask) {
		chunk := p[i:]
		c.stream.XORKeyStream(chunk, mask[0:min(len(chunk), len(mask))])
	}
	return len(p), nil
}

var _ io.Reader = &ctrReader{}

func newCTRReader(seed uint64) *ctrReader {
	key := [16]byte{}
	binary.LittleEndian.PutUint64(key[:], seed)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		pkg.Panicf("unable to create new aes: %s", err)
	}
	return &ctrReader{stream: cipher.NewCTR(block, iv[:])}
}

// DeterministicRandomReader returns a "random" reader based on the seed
// provided, using AES in CTR mode. The key is based on the seed. The IV is
// static. The output data is the key stream XOR'd with a static mask of 0x77
// for each byte.
func DeterministicRandomReader(seed uint64) io.Reader {
	return newCTRReader(seed)
}

// DeterministicCoinFlipper flips a coin biased by the number of bits it
// inspects. Heads comes up with probability 1/2^bits.
type DeterministicCoinFlipper struct {
	r      *ctrReader
	bits   int
	invert bool
}

// Flip flips the (biased) coin. True represents heads, or tails when the
// flipper was built inverted.
func (f *DeterministicCoinFlipper) Flip() bool {
	var buf [1]byte
	_ = must.Do(f.r.Read(buf[:]))

	// Extract the lowest n bits
	mask := byte((1 << f.bits) - 1)
	result := buf[0] & mask

	// Only the all-zero case is heads (i.e. 00000000 up to n bits)
	return (result == 0) != f.invert
}

// NewDeterministicCoinFlipper returns a flipper seeded with seed. bits must be
// in 0-7; zero bits always comes up heads. An inverted flipper reports the
// opposite face for the same sequence.
func NewDeterministicCoinFlipper(seed uint64, bits int, invert bool) *DeterministicCoinFlipper {
	if bits > 7 || bits < 0 {
		pkg.Panicf("bits must be in the range 0-7, got %d", bits)
	}
	return &DeterministicCoinFlipper{
		r:      newCTRReader(seed),
		bits:   bits,
		invert: invert,
	}
}
