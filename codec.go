package securevar

import (
	"bytes"
	"encoding/json"
)

// jsonCodec implements Codec for JSON.
type jsonCodec struct{}

// JSON returns the built-in JSON codec.
func JSON() Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as compact JSON without HTML escaping, so strings
// containing <, >, &, U+2028 or U+2029 are written as-is.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})), nil
}

// unescapeLineSeparators replaces the \u2028 and \u2029 escapes that
// encoding/json always writes with the raw runes. Escaped backslashes are
// skipped so a literal "\\u2028" in a string is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if i+5 < len(data) && data[i+1] == 'u' && string(data[i+2:i+5]) == "202" {
			switch data[i+5] {
			case '8':
				out = append(out, "\u2028"...)
				i += 5
				continue
			case '9':
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Encode applies replacer to value and serializes the result with c.
// A nil replacer passes the value through and a nil codec means JSON.
// An untyped nil result encodes to an empty, non-nil slice.
func Encode[T any](value T, replacer Replacer[T], c Codec) ([]byte, error) {
	if c == nil {
		c = JSON()
	}

	var replaced any = value
	if replacer != nil {
		r, err := replacer(value)
		if err != nil {
			return nil, newCodecError(ErrMarshal, c.ContentType(), err)
		}
		replaced = r
	}

	if replaced == nil {
		return []byte{}, nil
	}

	data, err := c.Marshal(replaced)
	if err != nil {
		return nil, newCodecError(ErrMarshal, c.ContentType(), err)
	}
	if data == nil {
		return []byte{}, nil
	}
	return data, nil
}

// Decode deserializes encoded with c and passes it through reviver.
// An empty input returns the zero value of T without calling either.
func Decode[T any](encoded []byte, reviver Reviver[T], c Codec) (T, error) {
	var zero T
	if len(encoded) == 0 {
		return zero, nil
	}

	if c == nil {
		c = JSON()
	}

	if reviver == nil {
		var obj T
		if err := c.Unmarshal(encoded, &obj); err != nil {
			return zero, newCodecError(ErrUnmarshal, c.ContentType(), err)
		}
		return obj, nil
	}

	// Reviver errors that did not come from unmarshal are returned as-is.
	var unmarshalErr error
	obj, err := reviver(func(v any) error {
		if err := c.Unmarshal(encoded, v); err != nil {
			unmarshalErr = newCodecError(ErrUnmarshal, c.ContentType(), err)
			return unmarshalErr
		}
		return nil
	})
	if unmarshalErr != nil {
		return zero, unmarshalErr
	}
	if err != nil {
		return zero, err
	}
	return obj, nil
}
