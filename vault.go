package xorcrack

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	// DefaultVaultFilePath is the default path and file name for BoltDB storage
	DefaultVaultFilePath = "xorcrack.boltdb"
	// DefaultTLB is the name of the top level bucket for BoltDB
	DefaultTLB = "findings"
	// saltKey is the bucket key under which the vault's argon2 salt lives
	saltKey = "vault-salt"
	// saltLength is the salt size in bytes generated for new vaults
	saltLength = 16
)

// ErrNotFound is returned when a vault lookup misses.
var ErrNotFound = errors.New("finding not found")

// A Finding records one successful key recovery: which ciphertext it came
// from, what the recovered key was, and a short plaintext preview so a human
// can tell at a glance whether the crack was genuine.
type Finding struct {
	Digest    string    `json:"digest"`
	Key       []byte    `json:"key"`
	KeySize   int       `json:"key_size"`
	Preview   string    `json:"preview,omitempty"`
	Recovered time.Time `json:"recovered"`
}

// Vault is the primary interface for persisting findings. Implementations
// are collaborators of the CLI; the cracking functions themselves never
// touch storage.
type Vault interface {
	Get(digest string) (Finding, error)
	Put(f Finding) error
	Delete(digest string) error
	List() ([]string, error)
	Close() error
}

// VaultOptions are used to pass in initialization settings. When Passphrase
// is non-empty, finding records are sealed at rest with a key derived from
// it.
type VaultOptions struct {
	FilePath   string
	Passphrase string
}

// NewBoltVault takes VaultOptions as an argument and returns a BoltDB backed
// implementation of the Vault interface.
func NewBoltVault(opts VaultOptions) (Vault, error) {
	fp := DefaultVaultFilePath
	if opts.FilePath != "" {
		fp = opts.FilePath
	}
	db, err := bolt.Open(fp, 0666, nil)
	if err != nil {
		return nil, err
	}

	// ensure that the top level bucket and salt exist
	var salt []byte
	if err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(DefaultTLB))
		if err != nil {
			return fmt.Errorf("error creating bucket: %s", err)
		}
		salt = b.Get([]byte(saltKey))
		if salt == nil {
			salt = genRandBytes(saltLength)
			return b.Put([]byte(saltKey), salt)
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, err
	}

	v := boltVault{db: db}
	if opts.Passphrase != "" {
		v.cipher = NewSecretBoxCipher()
		v.key = DeriveKey([]byte(opts.Passphrase), salt)
	}
	return v, nil
}

type boltVault struct {
	db     *bolt.DB
	cipher Cipher
	key    []byte
}

func (v boltVault) seal(data []byte) ([]byte, error) {
	if v.cipher == nil {
		return data, nil
	}
	return v.cipher.Encrypt(data, v.key)
}

func (v boltVault) open(data []byte) ([]byte, error) {
	if v.cipher == nil {
		return data, nil
	}
	return v.cipher.Decrypt(data, v.key)
}

// Get returns the finding stored under digest, or ErrNotFound.
func (v boltVault) Get(digest string) (Finding, error) {
	var f Finding
	var raw []byte
	if err := v.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket([]byte(DefaultTLB)).Get([]byte(digest))
		if value == nil {
			return ErrNotFound
		}
		raw = append(raw, value...)
		return nil
	}); err != nil {
		return f, err
	}
	raw, err := v.open(raw)
	if err != nil {
		return f, err
	}
	if err := json.Unmarshal(raw, &f); err != nil {
		return f, err
	}
	return f, nil
}

// Put stores a finding under its ciphertext digest.
func (v boltVault) Put(f Finding) error {
	if f.Digest == "" {
		return errors.New("finding missing digest")
	}
	raw, err := json.Marshal(f)
	if err != nil {
		return err
	}
	raw, err = v.seal(raw)
	if err != nil {
		return err
	}
	return v.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(DefaultTLB)).Put([]byte(f.Digest), raw)
	})
}

// Delete removes the finding stored under digest.
func (v boltVault) Delete(digest string) error {
	return v.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(DefaultTLB)).Delete([]byte(digest))
	})
}

// List returns the digests of all stored findings.
func (v boltVault) List() ([]string, error) {
	var digests []string
	if err := v.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(DefaultTLB)).ForEach(func(k, _ []byte) error {
			if string(k) != saltKey {
				digests = append(digests, string(k))
			}
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return digests, nil
}

// Close closes the underlying bolt database.
func (v boltVault) Close() error {
	return v.db.Close()
}
