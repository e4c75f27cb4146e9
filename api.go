// Package securevar stores a value as a self-describing envelope buffer.
//
// A Variable serializes a value with a Codec, optionally encrypts the encoding
// under a password, and keeps the result behind a one byte header in a single
// contiguous buffer. The buffer can be exported, persisted, transmitted and
// later imported and read back.
//
// # Envelope Format
//
//	offset 0  1 byte   header flag: 1 = payload encrypted, anything else = plaintext
//	offset 1  N bytes  payload: ciphertext or the codec's encoding of the value
//
// The header carries no version or algorithm identifier. A buffer encrypted
// with a non-default algorithm must be imported with that algorithm in Config.
//
// # Basic Usage
//
//	v, _ := securevar.From(ctx, "Secret Text", "secure", nil, securevar.Config{})
//
//	v.IsEncrypted()              // true
//	s, _ := v.Get(ctx, "secure", nil) // "Secret Text"
//
//	// Persist the envelope and read it back later
//	raw := v.Export()
//	w := securevar.Import[string](raw, securevar.Config{})
//	s, _ = w.Get(ctx, "secure", nil)
//
// # Transforms
//
// A Replacer converts the value into the form that gets serialized and a
// Reviver rebuilds the value from it:
//
//	type Celsius struct{ Degrees float64 }
//
//	replacer := func(c Celsius) (any, error) { return c.Degrees, nil }
//	reviver := func(unmarshal func(any) error) (Celsius, error) {
//	    var d float64
//	    err := unmarshal(&d)
//	    return Celsius{Degrees: d}, err
//	}
//
// # Absent Values
//
// When the value handed to the codec is an untyped nil the payload is empty.
// Reading an empty payload yields the zero value of T without calling the
// codec or the Reviver. Typed nils (nil pointers, maps, slices) are encoded by
// the codec as its null representation.
//
// # Algorithms
//
// Built-in cipher algorithms:
//
//   - aes-256-cbc (default), aes-192-cbc, aes-128-cbc, des-ede3-cbc:
//     password-keyed CBC using the OpenSSL EVP_BytesToKey derivation (MD5, no salt)
//   - aes-256-gcm, chacha20-poly1305: authenticated encryption keyed by Argon2id
//     with a random salt stored in the payload
//
// Additional identifiers can be added with Register.
//
// # Codec Providers
//
// JSON is built in. The following providers are available as sub-packages:
//
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//   - xml - XML encoding (application/xml)
package securevar

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Replacer converts a value into the form handed to the codec.
// Returning an untyped nil stores an empty payload.
type Replacer[T any] func(value T) (any, error)

// Reviver rebuilds a value from its serialized form.
// The unmarshal function decodes the payload into any target the Reviver
// chooses, so the Reviver controls the intermediate representation.
type Reviver[T any] func(unmarshal func(v any) error) (T, error)

// Config selects the cipher algorithm and codec of a Variable.
// The zero value uses DefaultAlgorithm and JSON.
type Config struct {
	// Algorithm is the cipher used when a password is given.
	// It is not stored in the envelope and must match on import.
	Algorithm Algorithm

	// Codec serializes values. Defaults to JSON.
	Codec Codec
}

func (c Config) algorithm() Algorithm {
	if c.Algorithm == "" {
		return DefaultAlgorithm
	}
	return c.Algorithm
}

func (c Config) codec() Codec {
	if c.Codec == nil {
		return JSON()
	}
	return c.Codec
}
