// Package yaml provides a YAML codec implementation.
package yaml

import (
	"bytes"

	"github.com/zoobzio/securevar"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements securevar.Codec for YAML.
type yamlCodec struct {
	strict bool
}

// New returns a YAML codec.
func New() securevar.Codec {
	return &yamlCodec{}
}

// Strict returns a YAML codec that rejects mapping keys with no matching
// struct field when decoding.
func Strict() securevar.Codec {
	return &yamlCodec{strict: true}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML with two space indentation.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes the first YAML document in data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(c.strict)
	return dec.Decode(v)
}
