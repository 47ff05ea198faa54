package xorcrack

import (
	"errors"
	"math/bits"
)

// ErrLengthMismatch is returned when a bitwise distance is requested for
// buffers of unequal length.
var ErrLengthMismatch = errors.New("buffers must have equal length")

// HammingDistance returns the number of differing bits between two
// equal-length buffers. The result is symmetric and zero exactly when the
// buffers are equal.
func HammingDistance(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	var d int
	for i := range a {
		d += bits.OnesCount8(a[i] ^ b[i])
	}
	return d, nil
}
