package xorcrack

import (
	"errors"
	"math"
)

var (
	// ErrEmptyInput is returned when batch detection is invoked with no
	// ciphertexts.
	ErrEmptyInput = errors.New("no ciphertexts provided")
	// ErrInsufficientData is returned when a ciphertext is too short to
	// evaluate any key-size candidate.
	ErrInsufficientData = errors.New("ciphertext too short for key size inference")
)

const (
	// DefaultMinKeySize is the smallest repeating-key size considered.
	DefaultMinKeySize = 2
	// DefaultMaxKeySize is the largest repeating-key size considered.
	DefaultMaxKeySize = 40
	// DefaultSampleBlocks is the number of adjacent block comparisons used
	// to score a key-size candidate.
	DefaultSampleBlocks = 10
)

// KeySizeOptions bound the key-size search. The zero value is not useful;
// start from DefaultKeySizeOptions.
type KeySizeOptions struct {
	MinSize      int
	MaxSize      int
	SampleBlocks int
}

// DefaultKeySizeOptions returns the standard search bounds: key sizes 2
// through 40, scored over 10 adjacent block comparisons.
func DefaultKeySizeOptions() KeySizeOptions {
	return KeySizeOptions{
		MinSize:      DefaultMinKeySize,
		MaxSize:      DefaultMaxKeySize,
		SampleBlocks: DefaultSampleBlocks,
	}
}

// FindSingleByteKey returns the single-byte key whose XOR decryption of
// ciphertext scores highest under the default frequency scorer. Ties are
// broken toward the lowest candidate value; an empty ciphertext returns 0.
func FindSingleByteKey(ciphertext []byte) byte {
	return FindSingleByteKeyWith(ciphertext, NewFrequencyScorer())
}

// FindSingleByteKeyWith is FindSingleByteKey under a caller-supplied scorer.
func FindSingleByteKeyWith(ciphertext []byte, scorer Scorer) byte {
	tmp := make([]byte, len(ciphertext))
	best := math.Inf(-1)
	var key byte
	// Candidates are evaluated in ascending order and only a strictly
	// greater score replaces the current best, so the lowest candidate wins
	// ties. The loop variable is an int to avoid byte overflow.
	for i := 0; i <= 0xff; i++ {
		xorByte(tmp, ciphertext, byte(i))
		if score := scorer.Score(tmp); score > best {
			best = score
			key = byte(i)
		}
	}
	return key
}

// DetectSingleByteXOR takes a batch of candidate ciphertexts, cracks each as
// a single-byte XOR cipher, and returns the decrypted buffer that scores
// highest across the whole batch. Buffers that are not actually XOR-encrypted
// English decrypt to garbage under every key and lose to the genuine one.
func DetectSingleByteXOR(ciphertexts [][]byte) ([]byte, error) {
	return DetectSingleByteXORWith(ciphertexts, NewFrequencyScorer())
}

// DetectSingleByteXORWith is DetectSingleByteXOR under a caller-supplied scorer.
func DetectSingleByteXORWith(ciphertexts [][]byte, scorer Scorer) ([]byte, error) {
	if len(ciphertexts) == 0 {
		return nil, ErrEmptyInput
	}
	best := math.Inf(-1)
	var plaintext []byte
	for _, ct := range ciphertexts {
		key := FindSingleByteKeyWith(ct, scorer)
		pt := make([]byte, len(ct))
		xorByte(pt, ct, key)
		if score := scorer.Score(pt); score > best {
			best = score
			plaintext = pt
		}
	}
	return plaintext, nil
}

// FindKeySize infers the most likely repeating-key size for ciphertext by
// minimizing the average normalized Hamming distance between consecutive
// same-size blocks. At the true key size, XOR-ing adjacent blocks cancels the
// key and compares plaintext against plaintext, which for natural language
// differs in fewer bits than misaligned ciphertext comparisons.
//
// Each candidate size s needs s*(SampleBlocks+1) bytes of ciphertext;
// candidates too large for the input are skipped, and ErrInsufficientData is
// returned when none fit.
func FindKeySize(ciphertext []byte, opts KeySizeOptions) (int, error) {
	best := math.Inf(1)
	size := 0
	for s := opts.MinSize; s <= opts.MaxSize; s++ {
		if len(ciphertext) < s*(opts.SampleBlocks+1) {
			break
		}
		var total int
		for i := 0; i < opts.SampleBlocks; i++ {
			d, err := HammingDistance(ciphertext[i*s:(i+1)*s], ciphertext[(i+1)*s:(i+2)*s])
			if err != nil {
				return 0, err
			}
			total += d
		}
		avg := float64(total) / float64(opts.SampleBlocks*s)
		if avg < best {
			best = avg
			size = s
		}
	}
	if size == 0 {
		return 0, ErrInsufficientData
	}
	return size, nil
}

// transpose gathers the i-th byte of every block into the i-th output buffer,
// regrouping ciphertext bytes by position modulo the key size. Only full
// blocks of blockSize are considered; a trailing partial block is dropped.
func transpose(data []byte, blockSize int) [][]byte {
	blocks := len(data) / blockSize
	out := make([][]byte, blockSize)
	for i := range out {
		out[i] = make([]byte, blocks)
		for j := 0; j < blocks; j++ {
			out[i][j] = data[j*blockSize+i]
		}
	}
	return out
}

// CrackRepeatingKey recovers the full key of a repeating-key XOR ciphertext
// using the default search bounds. It infers the key size, transposes the
// ciphertext so that every buffer was encrypted with one key byte, cracks
// each buffer independently, and concatenates the recovered bytes in
// position order. Decrypting is the caller's job: XOR(ciphertext, key).
func CrackRepeatingKey(ciphertext []byte) ([]byte, error) {
	return CrackRepeatingKeyWith(ciphertext, DefaultKeySizeOptions(), NewFrequencyScorer())
}

// CrackRepeatingKeyWith is CrackRepeatingKey under caller-supplied search
// bounds and scorer.
func CrackRepeatingKeyWith(ciphertext []byte, opts KeySizeOptions, scorer Scorer) ([]byte, error) {
	size, err := FindKeySize(ciphertext, opts)
	if err != nil {
		return nil, err
	}
	key := make([]byte, size)
	for i, buf := range transpose(ciphertext, size) {
		key[i] = FindSingleByteKeyWith(buf, scorer)
	}
	return key, nil
}
