package config

import "errors"

// Validation errors returned by Load when the merged configuration is invalid.
var (
	// ErrInvalidStore indicates an empty vault path.
	ErrInvalidStore = errors.New("invalid store path")
	// ErrInvalidAlgorithm indicates an algorithm identifier that is not registered.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")
	// ErrInvalidCodec indicates an unknown codec name.
	ErrInvalidCodec = errors.New("invalid codec")
	// ErrInvalidLogLevel indicates a level zerolog cannot parse.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// ErrUntypedCodec indicates a codec that needs a concrete type to decode,
// such as xml, used where the value type is only known at run time.
var ErrUntypedCodec = errors.New("codec cannot decode untyped values")
