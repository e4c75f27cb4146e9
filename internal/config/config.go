// Package config loads the securevar CLI configuration from the environment
// and command-line flags.
//
// Sources are merged in order, later non-zero values overriding earlier ones:
//  1. Defaults
//  2. Environment variables (prefix SECUREVAR_)
//  3. Command-line flags
package config

import (
	"fmt"

	"github.com/zoobzio/securevar"
	"github.com/zoobzio/securevar/bson"
	"github.com/zoobzio/securevar/msgpack"
	"github.com/zoobzio/securevar/xml"
	"github.com/zoobzio/securevar/yaml"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SECUREVAR_"

// Config is the CLI configuration.
type Config struct {
	// Store is the path of the bbolt vault file.
	// Env: SECUREVAR_STORE
	Store string `env:"STORE"`

	// Password encrypts and decrypts values. When empty the password is
	// looked up in the OS keyring or prompted for.
	// Env: SECUREVAR_PASSWORD
	Password string `env:"PASSWORD"`

	// Algorithm is the cipher algorithm identifier.
	// Env: SECUREVAR_ALGORITHM
	Algorithm string `env:"ALGORITHM"`

	// Codec names the serialization format: json, yaml, msgpack, bson or xml.
	// Env: SECUREVAR_CODEC
	Codec string `env:"CODEC"`

	// LogLevel is a zerolog level name.
	// Env: SECUREVAR_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Encrypt requests a password for commands that write a value.
	// Only set from flags.
	Encrypt bool
}

// Default returns the configuration used when no source sets a field.
func Default() *Config {
	return &Config{
		Store:     "securevar.db",
		Algorithm: string(securevar.DefaultAlgorithm),
		Codec:     "json",
		LogLevel:  "warn",
	}
}

var codecs = map[string]func() securevar.Codec{
	"json":    securevar.JSON,
	"yaml":    yaml.New,
	"msgpack": msgpack.New,
	"bson":    bson.New,
	"xml":     xml.New,
}

// untyped lists the codecs that decode into an any target. The CLI stores
// values parsed from JSON and reads them back as any, so it needs one of these.
var untyped = map[string]bool{
	"json":    true,
	"yaml":    true,
	"msgpack": true,
	"bson":    true,
}

// CheckUntyped returns ErrUntypedCodec when the codec of c cannot decode
// values without a concrete Go type.
func (c *Config) CheckUntyped() error {
	if !untyped[c.Codec] {
		return fmt.Errorf("%w: %s", ErrUntypedCodec, c.Codec)
	}
	return nil
}

// Variable returns the library configuration selected by c.
func (c *Config) Variable() securevar.Config {
	cfg := securevar.Config{Algorithm: securevar.Algorithm(c.Algorithm)}
	if newCodec, ok := codecs[c.Codec]; ok {
		cfg.Codec = newCodec()
	}
	return cfg
}
