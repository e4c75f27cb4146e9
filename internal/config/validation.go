package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/zoobzio/securevar"
)

// validate checks the merged configuration before it is used.
func (c *Config) validate() error {
	if c.Store == "" {
		return ErrInvalidStore
	}
	if !securevar.IsValidAlgorithm(securevar.Algorithm(c.Algorithm)) {
		return fmt.Errorf("%w: %q", ErrInvalidAlgorithm, c.Algorithm)
	}
	if _, ok := codecs[c.Codec]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCodec, c.Codec)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}
