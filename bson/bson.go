// Package bson provides a BSON codec implementation.
//
// BSON can only encode documents at the top level, so every value is stored
// as the single field "v" of a wrapper document. This lets scalars, slices
// and nil round-trip through a securevar.Variable like any other codec.
package bson

import (
	"github.com/zoobzio/securevar"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
)

// valueKey names the wrapper document field holding the value.
const valueKey = "v"

// bsonCodec implements securevar.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() securevar.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as the "v" field of a BSON document.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(bson.D{{Key: valueKey, Value: v}})
}

// Unmarshal decodes the "v" field of a BSON document into v.
// Embedded documents decode as bson.M when the target is untyped.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	raw := bson.Raw(data)
	if err := raw.Validate(); err != nil {
		return err
	}

	val, err := raw.LookupErr(valueKey)
	if err != nil {
		return err
	}

	dec, err := bson.NewDecoder(bsonrw.NewBSONValueReader(val.Type, val.Value))
	if err != nil {
		return err
	}
	dec.DefaultDocumentM()
	return dec.Decode(v)
}
