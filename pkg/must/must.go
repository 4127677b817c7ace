// Package must contains functions that panic on error instead of returning
// the error.
package must

import (
	"crypto/rand"
	"encoding/binary"

	"hop.computer/collections/pkg"
)

// RandomSeed reads a fresh non-negative seed from crypto/rand. It panics on
// failure.
func RandomSeed() int64 {
	var b [8]byte
	_, err := rand.Read(b[:])
	if err != nil {
		pkg.Panicf("unable to read from random: %s", err.Error())
	}
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1)
}

// Do takes any value and error pair, and panics if the error is non-nil. Use it
// wrapping another function call that returns two values, to get a single
// statement that only returns one value.
//
// Example:
//
//	cfg := must.Do(config.Load(path))
func Do[T any](v T, err error) T {
	if err != nil {
		pkg.Panicf("expected nil-error, got %s", err)
	}
	return v
}
