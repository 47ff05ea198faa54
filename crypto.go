package xorcrack

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	// SecretBoxDefaultChunkSize is the default size of an encrypted chunk of data
	SecretBoxDefaultChunkSize = 16000
	// SecretBoxDecryptionOffset is the additional offset of bytes needed to offset
	// for the nonce and authentication bytes
	SecretBoxDecryptionOffset = 40
	// SecretBoxNonceLength is the length in bytes required for the nonce
	SecretBoxNonceLength = 24
	// SecretBoxKeyLength is the length in bytes required for the key
	SecretBoxKeyLength = 32
)

// Cipher is an interface used for encrypting and decrypting byte slices.
// The vault uses it to seal finding records at rest; it has nothing to do
// with the XOR ciphers this package breaks.
type Cipher interface {
	Encrypt(data []byte, key []byte) ([]byte, error)
	Decrypt(data []byte, key []byte) ([]byte, error)
}

// genRandBytes takes a length of l and returns a byte slice of random data
func genRandBytes(l int) []byte {
	b := make([]byte, l)
	rand.Read(b)
	return b
}

// DeriveKey takes a passphrase and salt and applies a set of fixed parameters
// to the argon2 IDKey algorithm, producing a secretbox key.
func DeriveKey(pw, salt []byte) []byte {
	return argon2.IDKey(pw, salt, 1, 64*1024, 4, SecretBoxKeyLength)
}

// Digest returns the hex-encoded blake2b-256 digest of data. The vault keys
// finding records by the digest of the ciphertext they were recovered from.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SecretBoxCipher is a struct and method set that conforms to the Cipher
// interface, using nacl secretbox with random nonces.
type SecretBoxCipher struct {
	ChunkSize int
}

// NewSecretBoxCipher returns a SecretBoxCipher with the default chunk size.
func NewSecretBoxCipher() SecretBoxCipher {
	return SecretBoxCipher{ChunkSize: SecretBoxDefaultChunkSize}
}

// Encrypt takes byte slices for data and a key and returns the ciphertext output for secretbox
func (s SecretBoxCipher) Encrypt(data []byte, key []byte) ([]byte, error) {
	var encryptedData []byte
	chunkSize := s.ChunkSize

	if len(key) != SecretBoxKeyLength {
		return encryptedData, errors.New("invalid key length")
	}

	var k [SecretBoxKeyLength]byte
	copy(k[:], key)

	for i := 0; i < len(data); i = i + chunkSize {
		var chunk []byte
		if len(data[i:]) >= chunkSize {
			chunk = data[i : i+chunkSize]
		} else {
			chunk = data[i:]
		}
		var n [SecretBoxNonceLength]byte
		copy(n[:], genRandBytes(SecretBoxNonceLength))

		encryptedChunk := secretbox.Seal(n[:], chunk, &n, &k)
		encryptedData = append(encryptedData, encryptedChunk...)
	}
	return encryptedData, nil
}

// Decrypt takes byte slices for data and key and returns the clear text output for secretbox
func (s SecretBoxCipher) Decrypt(data []byte, key []byte) ([]byte, error) {
	var decryptedData []byte
	chunkSize := s.ChunkSize + SecretBoxDecryptionOffset

	if len(key) != SecretBoxKeyLength {
		return decryptedData, errors.New("invalid key length")
	}

	var k [SecretBoxKeyLength]byte
	copy(k[:], key)

	for i := 0; i < len(data); i = i + chunkSize {
		var chunk []byte
		if len(data[i:]) >= chunkSize {
			chunk = data[i : i+chunkSize]
		} else {
			chunk = data[i:]
		}
		if len(chunk) < SecretBoxNonceLength {
			return nil, errors.New("decrypt failed")
		}
		var n [SecretBoxNonceLength]byte
		copy(n[:], chunk[:SecretBoxNonceLength])

		decryptedChunk, ok := secretbox.Open(nil, chunk[SecretBoxNonceLength:], &n, &k)
		if !ok {
			return nil, errors.New("decrypt failed")
		}
		decryptedData = append(decryptedData, decryptedChunk...)
	}
	return decryptedData, nil
}
