package securevar

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrFormat indicates a buffer is too short to hold a header.
	ErrFormat = errors.New("invalid envelope format")

	// ErrMissingPassword indicates the payload is encrypted and no password was supplied.
	ErrMissingPassword = errors.New("data is encrypted and requires a password")

	// ErrUnknownAlgorithm indicates the cipher algorithm identifier is not registered.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrBuiltinAlgorithm indicates an attempt to replace or remove a built-in algorithm.
	ErrBuiltinAlgorithm = errors.New("built-in algorithm")

	// ErrEncrypt indicates encryption of the encoded value failed.
	ErrEncrypt = errors.New("encrypt failed")

	// ErrDecrypt indicates the payload could not be decrypted, usually because
	// the password or algorithm does not match the one used to encrypt it.
	ErrDecrypt = errors.New("decrypt failed")

	// ErrMarshal indicates the codec failed to marshal the value.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the payload is not valid serialized data.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// FormatError reports a buffer that cannot hold a header at the given offset.
type FormatError struct {
	Size   int // Length of the inspected buffer
	Offset int // Offset the header was expected at
}

func (e *FormatError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("%s: buffer is empty", ErrFormat.Error())
	}
	return fmt.Sprintf("%s: buffer of %d bytes has no header at offset %d", ErrFormat.Error(), e.Size, e.Offset)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// ConfigError represents an invalid cipher configuration.
type ConfigError struct {
	Err       error  // Underlying sentinel error (ErrUnknownAlgorithm, ErrBuiltinAlgorithm)
	Algorithm string // Algorithm identifier that was rejected
}

func (e *ConfigError) Error() string {
	if e.Algorithm != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Algorithm)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CipherError represents a failure inside the cipher adapter.
type CipherError struct {
	Err       error  // Underlying sentinel error (ErrEncrypt, ErrDecrypt)
	Algorithm string // Algorithm in use
	Operation string // encrypt or decrypt
	Cause     error  // Original error from the cipher primitive
}

func (e *CipherError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s with %s: %v", e.Operation, e.Algorithm, e.Cause)
	}
	return fmt.Sprintf("%s with %s", e.Operation, e.Algorithm)
}

// Unwrap exposes both the sentinel and the primitive cause, so errors.Is
// matches ErrDecrypt as well as ErrAuthFailed or ErrInvalidPadding.
func (e *CipherError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	ContentType string // Content type of the codec that failed
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		if e.ContentType != "" {
			return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.ContentType, e.Cause)
		}
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// newFormatError creates a FormatError for a buffer too short to hold a header.
func newFormatError(size, offset int) error {
	return &FormatError{Size: size, Offset: offset}
}

// newConfigError creates a ConfigError for a rejected algorithm.
func newConfigError(sentinel error, algorithm Algorithm) error {
	return &ConfigError{
		Err:       sentinel,
		Algorithm: string(algorithm),
	}
}

// newCipherError creates a CipherError for encrypt/decrypt failures.
func newCipherError(sentinel error, operation string, algorithm Algorithm, cause error) error {
	return &CipherError{
		Err:       sentinel,
		Algorithm: string(algorithm),
		Operation: operation,
		Cause:     cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, contentType string, cause error) error {
	return &CodecError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}
