package securevar

import (
	"crypto/aes"
	"crypto/des" //nolint:gosec // block size only
)

// Algorithm identifies a password-keyed cipher.
// Identifiers follow OpenSSL cipher names so buffers can be shared with other
// runtimes that use the same names.
type Algorithm string

const (
	// AES128CBC uses AES-128 in CBC mode with the legacy OpenSSL key derivation.
	AES128CBC Algorithm = "aes-128-cbc"

	// AES192CBC uses AES-192 in CBC mode with the legacy OpenSSL key derivation.
	AES192CBC Algorithm = "aes-192-cbc"

	// AES256CBC uses AES-256 in CBC mode with the legacy OpenSSL key derivation.
	AES256CBC Algorithm = "aes-256-cbc"

	// DES3CBC uses triple DES (EDE) in CBC mode with the legacy OpenSSL key derivation.
	DES3CBC Algorithm = "des-ede3-cbc"

	// AES256GCM uses AES-256-GCM keyed by Argon2id over a random salt.
	AES256GCM Algorithm = "aes-256-gcm"

	// ChaCha20Poly1305 uses ChaCha20-Poly1305 keyed by Argon2id over a random salt.
	ChaCha20Poly1305 Algorithm = "chacha20-poly1305"
)

// DefaultAlgorithm is used when a Config does not name one.
const DefaultAlgorithm = AES256CBC

// builtinAlgorithms maps each built-in identifier to its factory.
func builtinAlgorithms() map[Algorithm]EncryptorFactory {
	return map[Algorithm]EncryptorFactory{
		AES128CBC:        cbcFactory(newAESBlock, 16, aes.BlockSize),
		AES192CBC:        cbcFactory(newAESBlock, 24, aes.BlockSize),
		AES256CBC:        cbcFactory(newAESBlock, 32, aes.BlockSize),
		DES3CBC:          cbcFactory(newDES3Block, 24, des.BlockSize),
		AES256GCM:        aeadFactory(newAESGCM),
		ChaCha20Poly1305: aeadFactory(newChaCha20Poly1305),
	}
}

// IsValidAlgorithm returns true if the algorithm is registered.
func IsValidAlgorithm(algo Algorithm) bool {
	_, ok := lookup(algo)
	return ok
}

// IsLegacyAlgorithm returns true if the algorithm derives its key without a
// salt, making the output for a given password and plaintext deterministic.
func IsLegacyAlgorithm(algo Algorithm) bool {
	switch algo {
	case AES128CBC, AES192CBC, AES256CBC, DES3CBC:
		return true
	}
	return false
}
