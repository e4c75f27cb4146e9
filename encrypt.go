package securevar

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/des" //nolint:gosec // des-ede3-cbc is kept for buffers produced elsewhere
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// Cipher primitive errors, wrapped in a CipherError by Encrypt and Decrypt.
var (
	ErrCiphertextShort  = errors.New("ciphertext too short")
	ErrCiphertextLength = errors.New("ciphertext is not a multiple of the block size")
	ErrInvalidPadding   = errors.New("invalid padding")
	ErrAuthFailed       = errors.New("authentication failed")
)

// Encryptor handles encryption/decryption operations.
type Encryptor interface {
	// Encrypt encrypts plaintext and returns ciphertext.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt decrypts ciphertext and returns plaintext.
	Decrypt(ciphertext []byte) ([]byte, error)
}

// EncryptorFactory builds an Encryptor keyed by password.
type EncryptorFactory func(password string) (Encryptor, error)

// NewEncryptor returns an Encryptor for algo keyed by password.
// An empty algo selects DefaultAlgorithm.
func NewEncryptor(algo Algorithm, password string) (Encryptor, error) {
	if algo == "" {
		algo = DefaultAlgorithm
	}

	factory, ok := lookup(algo)
	if !ok {
		return nil, newConfigError(ErrUnknownAlgorithm, algo)
	}

	return factory(password)
}

// Encrypt encrypts plaintext under password with algo.
// An empty algo selects DefaultAlgorithm.
func Encrypt(plaintext []byte, password string, algo Algorithm) ([]byte, error) {
	if algo == "" {
		algo = DefaultAlgorithm
	}

	enc, err := NewEncryptor(algo, password)
	if err != nil {
		return nil, err
	}

	ciphertext, err := enc.Encrypt(plaintext)
	if err != nil {
		return nil, newCipherError(ErrEncrypt, "encrypt", algo, err)
	}
	return ciphertext, nil
}

// Decrypt reverses Encrypt. A password or algorithm that differs from the one
// used to encrypt yields an error wrapping ErrDecrypt; for the legacy CBC
// algorithms a mismatch can occasionally pass the padding check and produce
// garbage instead, which the codec then rejects.
func Decrypt(ciphertext []byte, password string, algo Algorithm) ([]byte, error) {
	if algo == "" {
		algo = DefaultAlgorithm
	}

	enc, err := NewEncryptor(algo, password)
	if err != nil {
		return nil, err
	}

	plaintext, err := enc.Decrypt(ciphertext)
	if err != nil {
		return nil, newCipherError(ErrDecrypt, "decrypt", algo, err)
	}
	return plaintext, nil
}

// cbcEncryptor implements password-keyed CBC with PKCS#7 padding.
// Key and IV are fixed per password, as in OpenSSL's legacy enc.
type cbcEncryptor struct {
	block cipher.Block
	iv    []byte
}

func cbcFactory(newBlock func(key []byte) (cipher.Block, error), keySize, ivSize int) EncryptorFactory {
	return func(password string) (Encryptor, error) {
		key, iv := bytesToKey([]byte(password), keySize, ivSize)
		block, err := newBlock(key)
		if err != nil {
			return nil, err
		}
		return &cbcEncryptor{block: block, iv: iv}, nil
	}
}

func newAESBlock(key []byte) (cipher.Block, error) {
	return aes.NewCipher(key)
}

func newDES3Block(key []byte) (cipher.Block, error) {
	return des.NewTripleDESCipher(key) //nolint:gosec // see import
}

func (e *cbcEncryptor) Encrypt(plaintext []byte) ([]byte, error) {
	bs := e.block.BlockSize()
	padded := pkcs7Pad(plaintext, bs)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(e.block, e.iv).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

func (e *cbcEncryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	bs := e.block.BlockSize()
	if len(ciphertext) == 0 {
		return nil, ErrCiphertextShort
	}
	if len(ciphertext)%bs != 0 {
		return nil, ErrCiphertextLength
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(e.block, e.iv).CryptBlocks(plaintext, ciphertext)
	return pkcs7Unpad(plaintext, bs)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data), len(data)+n)
	copy(padded, data)
	return append(padded, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrInvalidPadding
	}
	want := bytes.Repeat([]byte{byte(n)}, n)
	if subtle.ConstantTimeCompare(data[len(data)-n:], want) != 1 {
		return nil, ErrInvalidPadding
	}
	return data[:len(data)-n], nil
}

// aeadEncryptor implements authenticated encryption keyed by Argon2id.
// Each Encrypt draws a fresh salt and nonce.
// Format: [salt][nonce][ciphertext+tag]
type aeadEncryptor struct {
	password string
	params   Argon2Params
	newAEAD  func(key []byte) (cipher.AEAD, error)
}

func aeadFactory(newAEAD func(key []byte) (cipher.AEAD, error)) EncryptorFactory {
	return func(password string) (Encryptor, error) {
		return &aeadEncryptor{
			password: password,
			params:   DefaultArgon2Params(),
			newAEAD:  newAEAD,
		}, nil
	}
}

func newAESGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func newChaCha20Poly1305(key []byte) (cipher.AEAD, error) {
	return chacha20poly1305.New(key)
}

func (e *aeadEncryptor) Encrypt(plaintext []byte) ([]byte, error) {
	salt, err := e.params.newSalt()
	if err != nil {
		return nil, err
	}

	aead, err := e.newAEAD(e.params.deriveKey(e.password, salt))
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	out := make([]byte, 0, len(salt)+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, nil), nil
}

func (e *aeadEncryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	saltLen := int(e.params.SaltLen)
	if len(ciphertext) < saltLen {
		return nil, ErrCiphertextShort
	}

	salt, rest := ciphertext[:saltLen], ciphertext[saltLen:]
	aead, err := e.newAEAD(e.params.deriveKey(e.password, salt))
	if err != nil {
		return nil, err
	}

	if len(rest) < aead.NonceSize()+aead.Overhead() {
		return nil, ErrCiphertextShort
	}

	nonce, sealed := rest[:aead.NonceSize()], rest[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthFailed
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}
