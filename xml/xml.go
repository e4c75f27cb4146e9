// Package xml provides an XML codec implementation.
package xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"reflect"

	"github.com/zoobzio/securevar"
)

// xmlCodec implements securevar.Codec for XML.
type xmlCodec struct{}

// ErrUntypedTarget is returned by Unmarshal when the target is an interface.
// XML elements carry no type, so a Variable[any] cannot be decoded.
var ErrUntypedTarget = errors.New("xml cannot decode into an interface value")

// New returns an XML codec. Documents carry the standard XML declaration.
// Maps are not supported by encoding/xml; use structs or scalars.
func New() securevar.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as an XML document.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(xml.Header) + len(body))
	buf.WriteString(xml.Header)
	buf.Write(body)
	return buf.Bytes(), nil
}

// Unmarshal decodes XML data into v. v must point to a concrete type.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Interface {
		return ErrUntypedTarget
	}
	return xml.Unmarshal(data, v)
}
