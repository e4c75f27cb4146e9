package securevar

import (
	"crypto/md5" //nolint:gosec // required by the legacy OpenSSL key derivation
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// bytesToKey implements OpenSSL's EVP_BytesToKey with MD5, no salt and a
// single iteration, the derivation behind password-keyed legacy ciphers.
// It is deterministic in password, keyLen and ivLen.
func bytesToKey(password []byte, keyLen, ivLen int) (key, iv []byte) {
	out := make([]byte, 0, keyLen+ivLen+md5.Size)
	var prev []byte
	for len(out) < keyLen+ivLen {
		h := md5.New() //nolint:gosec // see above
		h.Write(prev)
		h.Write(password)
		prev = h.Sum(nil)
		out = append(out, prev...)
	}
	return out[:keyLen], out[keyLen : keyLen+ivLen]
}

// Argon2Params configures the Argon2id derivation used by the authenticated algorithms.
type Argon2Params struct {
	Time    uint32 // Number of iterations
	Memory  uint32 // Memory usage in KiB
	Threads uint8  // Parallelism factor
	KeyLen  uint32 // Output key length
	SaltLen uint32 // Salt length, stored in front of the payload
}

// DefaultArgon2Params returns recommended Argon2id parameters.
// Based on OWASP recommendations for password hashing.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
		KeyLen:  32,
		SaltLen: 16,
	}
}

// deriveKey derives a key from password and salt with Argon2id.
func (p Argon2Params) deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

// newSalt reads SaltLen random bytes.
func (p Argon2Params) newSalt() ([]byte, error) {
	salt := make([]byte, p.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}
