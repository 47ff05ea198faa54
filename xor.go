package xorcrack

import "errors"

// ErrInvalidKey is returned when an XOR transform is requested with an empty key.
var ErrInvalidKey = errors.New("xor key must not be empty")

// XOR returns the repeating-key XOR combination of data with key. The key is
// cycled positionally, so output byte i is data[i] ^ key[i % len(key)]. The
// transform is its own inverse: applying it twice with the same key returns
// the original data. The input slices are never modified.
func XOR(data, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrInvalidKey
	}
	out := make([]byte, len(data))
	ki := 0
	for i := range data {
		out[i] = data[i] ^ key[ki]
		ki++
		if ki == len(key) {
			ki = 0
		}
	}
	return out, nil
}

// xorByte writes the XOR combination of buf with a single byte into out.
// out must be at least as long as buf. Used by the crackers to avoid
// allocating on every candidate.
func xorByte(out, buf []byte, b byte) {
	for i := range buf {
		out[i] = buf[i] ^ b
	}
}
