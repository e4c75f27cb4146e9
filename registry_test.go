package securevar

import (
	"bytes"
	"errors"
	"slices"
	"testing"
)

// xorEncryptor is a toy cipher used to exercise custom registration.
type xorEncryptor struct {
	key byte
}

func (e *xorEncryptor) Encrypt(plaintext []byte) ([]byte, error) {
	out := make([]byte, len(plaintext))
	for i, b := range plaintext {
		out[i] = b ^ e.key
	}
	return out, nil
}

func (e *xorEncryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	return e.Encrypt(ciphertext)
}

func xorFactory(password string) (Encryptor, error) {
	if password == "" {
		return nil, errors.New("xor needs a password")
	}
	return &xorEncryptor{key: password[0]}, nil
}

const xorAlgorithm Algorithm = "xor-test"

func registerXOR(t *testing.T) {
	t.Helper()
	if err := Register(xorAlgorithm, xorFactory); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	t.Cleanup(func() { _ = Unregister(xorAlgorithm) })
}

func TestRegister_Custom(t *testing.T) {
	registerXOR(t)

	if !IsValidAlgorithm(xorAlgorithm) {
		t.Fatal("registered algorithm should be valid")
	}
	if !slices.Contains(Algorithms(), xorAlgorithm) {
		t.Error("Algorithms() should list the registered algorithm")
	}

	ciphertext, err := Encrypt([]byte("hello"), "k", xorAlgorithm)
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	plaintext, err := Decrypt(ciphertext, "k", xorAlgorithm)
	if err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}
	if !bytes.Equal(plaintext, []byte("hello")) {
		t.Errorf("round-trip = %q, want %q", plaintext, "hello")
	}
}

func TestRegister_Builtin(t *testing.T) {
	err := Register(AES256CBC, xorFactory)
	if !errors.Is(err, ErrBuiltinAlgorithm) {
		t.Errorf("Register(builtin) error = %v, want ErrBuiltinAlgorithm", err)
	}
}

func TestRegister_Invalid(t *testing.T) {
	if err := Register("", xorFactory); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Register(\"\") error = %v, want ErrUnknownAlgorithm", err)
	}
	if err := Register("nil-factory", nil); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Register(nil) error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestUnregister(t *testing.T) {
	if err := Register(xorAlgorithm, xorFactory); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if err := Unregister(xorAlgorithm); err != nil {
		t.Fatalf("Unregister() error: %v", err)
	}
	if IsValidAlgorithm(xorAlgorithm) {
		t.Error("unregistered algorithm should not be valid")
	}
	if err := Unregister(xorAlgorithm); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("second Unregister() error = %v, want ErrUnknownAlgorithm", err)
	}
	if err := Unregister(AES256GCM); !errors.Is(err, ErrBuiltinAlgorithm) {
		t.Errorf("Unregister(builtin) error = %v, want ErrBuiltinAlgorithm", err)
	}
}

func TestAlgorithms_Sorted(t *testing.T) {
	algos := Algorithms()
	if !slices.IsSorted(algos) {
		t.Errorf("Algorithms() = %v, want sorted", algos)
	}
	for _, want := range []Algorithm{AES128CBC, AES192CBC, AES256CBC, DES3CBC, AES256GCM, ChaCha20Poly1305} {
		if !slices.Contains(algos, want) {
			t.Errorf("Algorithms() missing %q", want)
		}
	}
}

func TestNewEncryptor_FactoryError(t *testing.T) {
	registerXOR(t)

	if _, err := NewEncryptor(xorAlgorithm, ""); err == nil {
		t.Error("NewEncryptor() should surface the factory error")
	}
}
