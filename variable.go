package securevar

import (
	"context"
	"reflect"
	"slices"
	"time"
)

// Detail is the result of reading a Variable. It is rebuilt on every read.
type Detail[T any] struct {
	// Header is the parsed envelope header.
	Header Header

	// Encrypted is the raw ciphertext payload, nil when the payload is plaintext.
	Encrypted []byte

	// Encoded is the codec's encoding of the value after decryption.
	Encoded []byte

	// Decoded is the value after decoding and the Reviver.
	Decoded T
}

// Variable holds a value as an envelope buffer.
//
// A Variable owns its buffer exclusively: Import and Export copy, and Set
// replaces the buffer as a whole. Reads do not mutate state and may run
// concurrently; Set must be synchronized by the caller.
type Variable[T any] struct {
	data     []byte
	cfg      Config
	typeName string
}

// New returns an empty Variable.
func New[T any](cfg Config) *Variable[T] {
	return &Variable[T]{
		data:     []byte{},
		cfg:      cfg,
		typeName: reflect.TypeFor[T]().String(),
	}
}

// From returns a Variable holding value, encrypted under password when it is
// not empty. See Set.
func From[T any](ctx context.Context, value T, password string, replacer Replacer[T], cfg Config) (*Variable[T], error) {
	v := New[T](cfg)
	if _, err := v.Set(ctx, value, password, replacer); err != nil {
		return nil, err
	}
	return v, nil
}

// Import returns a Variable backed by a copy of data, typically the output of
// Export. The buffer is not validated until it is read. cfg.Algorithm must
// match the algorithm that encrypted the payload.
func Import[T any](data []byte, cfg Config) *Variable[T] {
	v := New[T](cfg)
	if len(data) > 0 {
		v.data = slices.Clone(data)
	}
	emitImported(context.Background(), v.ContentType(), v.typeName, v.Algorithm(), len(v.data))
	return v
}

// IsEmpty reports whether no value has been set.
func (v *Variable[T]) IsEmpty() bool {
	return len(v.data) < HeaderSize
}

// IsEncrypted reports whether the header marks the payload as encrypted.
// It returns false for an empty Variable.
func (v *Variable[T]) IsEncrypted() bool {
	if v.IsEmpty() {
		return false
	}
	header, err := ParseHeader(v.data, 0)
	return err == nil && header.Encrypted
}

// Algorithm returns the cipher algorithm used for encrypted payloads.
func (v *Variable[T]) Algorithm() Algorithm {
	return v.cfg.algorithm()
}

// ContentType returns the content type of the codec.
func (v *Variable[T]) ContentType() string {
	return v.cfg.codec().ContentType()
}

// Export returns a copy of the envelope buffer.
func (v *Variable[T]) Export() []byte {
	return slices.Clone(v.data)
}

// Set encodes value, encrypts the encoding when password is not empty, and
// replaces the buffer with header and payload. On error the previous buffer
// is kept. Returns the Variable for chaining.
func (v *Variable[T]) Set(ctx context.Context, value T, password string, replacer Replacer[T]) (*Variable[T], error) {
	codec := v.cfg.codec()
	algo := v.cfg.algorithm()
	encrypted := password != ""

	start := time.Now()
	emitSetStart(ctx, codec.ContentType(), v.typeName)

	var retErr error
	size := 0
	defer func() {
		emitSetComplete(ctx, codec.ContentType(), v.typeName, algo, encrypted, size, time.Since(start), retErr)
	}()

	payload, err := Encode(value, replacer, codec)
	if err != nil {
		retErr = err
		return nil, retErr
	}

	if encrypted {
		payload, err = Encrypt(payload, password, algo)
		if err != nil {
			retErr = err
			return nil, retErr
		}
	}

	data := make([]byte, 0, HeaderSize+len(payload))
	data = append(data, CreateHeader(encrypted)...)
	data = append(data, payload...)

	v.data = data
	size = len(data)
	return v, nil
}

// Get returns the decoded value. See Read.
func (v *Variable[T]) Get(ctx context.Context, password string, reviver Reviver[T]) (T, error) {
	detail, err := v.Read(ctx, password, reviver)
	if err != nil {
		var zero T
		return zero, err
	}
	return detail.Decoded, nil
}

// Read parses the header, decrypts the payload when it is encrypted, and
// decodes the result through reviver. It fails with ErrFormat when the
// Variable is empty, ErrMissingPassword when the payload is encrypted and
// password is empty, ErrDecrypt when decryption fails and ErrUnmarshal when
// the payload is not valid serialized data.
func (v *Variable[T]) Read(ctx context.Context, password string, reviver Reviver[T]) (*Detail[T], error) {
	codec := v.cfg.codec()
	algo := v.cfg.algorithm()

	start := time.Now()
	emitReadStart(ctx, codec.ContentType(), v.typeName, len(v.data))

	var header Header
	var retErr error
	defer func() {
		emitReadComplete(ctx, codec.ContentType(), v.typeName, algo, header.Encrypted, time.Since(start), retErr)
	}()

	header, err := ParseHeader(v.data, 0)
	if err != nil {
		retErr = err
		return nil, retErr
	}

	payload := v.data[HeaderSize:]
	detail := &Detail[T]{Header: header}

	if header.Encrypted {
		if password == "" {
			retErr = ErrMissingPassword
			return nil, retErr
		}

		encoded, err := Decrypt(payload, password, algo)
		if err != nil {
			retErr = err
			return nil, retErr
		}
		detail.Encrypted = slices.Clone(payload)
		detail.Encoded = encoded
	} else {
		detail.Encoded = slices.Clone(payload)
	}

	decoded, err := Decode(detail.Encoded, reviver, codec)
	if err != nil {
		retErr = err
		return nil, retErr
	}
	detail.Decoded = decoded

	return detail, nil
}
