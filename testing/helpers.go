// Package testing provides test utilities for securevar.
package testing

import (
	"context"
	"testing"

	"github.com/zoobzio/securevar"
)

// TestPassword returns the password used by fixtures.
func TestPassword() string {
	return "test-2"
}

// MustFrom builds a Variable holding value or fails the test.
func MustFrom[T any](tb testing.TB, value T, password string, cfg securevar.Config) *securevar.Variable[T] {
	tb.Helper()
	v, err := securevar.From(context.Background(), value, password, nil, cfg)
	if err != nil {
		tb.Fatalf("From() error: %v", err)
	}
	return v
}

// MustGet reads a Variable or fails the test.
func MustGet[T any](tb testing.TB, v *securevar.Variable[T], password string) T {
	tb.Helper()
	got, err := v.Get(context.Background(), password, nil)
	if err != nil {
		tb.Fatalf("Get() error: %v", err)
	}
	return got
}

// ComplexObject wraps a number. Only the number is serialized.
type ComplexObject struct {
	Value int
}

// ComplexReplacer serializes a ComplexObject as its bare number.
func ComplexReplacer(v ComplexObject) (any, error) {
	return v.Value, nil
}

// ComplexReviver rebuilds a ComplexObject from its bare number.
func ComplexReviver(unmarshal func(any) error) (ComplexObject, error) {
	var n int
	if err := unmarshal(&n); err != nil {
		return ComplexObject{}, err
	}
	return ComplexObject{Value: n}, nil
}

// Options is the nested part of SimpleObject.
type Options struct {
	Enabled bool     `json:"enabled" yaml:"enabled" bson:"enabled" msgpack:"enabled"`
	Tags    []string `json:"tags" yaml:"tags" bson:"tags" msgpack:"tags"`
}

// SimpleObject is a nested value that round-trips through every text and
// binary codec.
type SimpleObject struct {
	Name    string  `json:"name" yaml:"name" bson:"name" msgpack:"name"`
	Count   int     `json:"count" yaml:"count" bson:"count" msgpack:"count"`
	Options Options `json:"options" yaml:"options" bson:"options" msgpack:"options"`
}

// NewSimpleObject returns a populated SimpleObject.
func NewSimpleObject() SimpleObject {
	return SimpleObject{
		Name:  "Hello World",
		Count: 100,
		Options: Options{
			Enabled: true,
			Tags:    []string{"a", "b"},
		},
	}
}

// XMLObject is the XML counterpart of SimpleObject.
type XMLObject struct {
	Name    string   `xml:"name"`
	Count   int      `xml:"count"`
	Enabled bool     `xml:"options>enabled"`
	Tags    []string `xml:"options>tag"`
}
