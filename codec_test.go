package securevar

import (
	"errors"
	"reflect"
	"testing"
)

func TestJSON_ContentType(t *testing.T) {
	if got := JSON().ContentType(); got != "application/json" {
		t.Errorf("ContentType() = %q, want %q", got, "application/json")
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "test-1", `"test-1"`},
		{"number", 42, `42`},
		{"bool", true, `true`},
		{"map", map[string]int{"a": 1}, `{"a":1}`},
		{"typed nil", (*string)(nil), `null`},
		{"html characters", "a<b&c>", `"a<b&c>"`},
		{"line separators", "a\u2028b\u2029c", "\"a\u2028b\u2029c\""},
		{"escaped backslash before u2028", `a\u2028`, `"a\\u2028"`},
		{"control characters", "a\nb\"c", `"a\nb\"c"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.value, nil, nil)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Encode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncode_Absent(t *testing.T) {
	got, err := Encode[any](nil, nil, JSON())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Encode(nil) = %v, want empty non-nil slice", got)
	}
}

func TestEncode_ReplacerAbsent(t *testing.T) {
	got, err := Encode("dropped", func(string) (any, error) { return nil, nil }, nil)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Encode() = %s, want empty", got)
	}
}

func TestEncode_Replacer(t *testing.T) {
	type celsius struct{ Degrees float64 }

	got, err := Encode(celsius{21.5}, func(c celsius) (any, error) { return c.Degrees, nil }, nil)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if string(got) != "21.5" {
		t.Errorf("Encode() = %s, want 21.5", got)
	}
}

func TestEncode_Errors(t *testing.T) {
	t.Run("replacer", func(t *testing.T) {
		_, err := Encode(1, func(int) (any, error) { return nil, errors.New("nope") }, nil)
		if !errors.Is(err, ErrMarshal) {
			t.Errorf("Encode() error = %v, want ErrMarshal", err)
		}
	})

	t.Run("unsupported value", func(t *testing.T) {
		_, err := Encode[any](make(chan int), nil, nil)
		if !errors.Is(err, ErrMarshal) {
			t.Errorf("Encode() error = %v, want ErrMarshal", err)
		}
		var ce *CodecError
		if errors.As(err, &ce) && ce.ContentType != "application/json" {
			t.Errorf("ContentType = %q, want application/json", ce.ContentType)
		}
	})
}

func TestDecode(t *testing.T) {
	got, err := Decode[map[string]any]([]byte(`{"a":{"b":[1,2]}}`), nil, nil)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	want := map[string]any{"a": map[string]any{"b": []any{1.0, 2.0}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode() = %v, want %v", got, want)
	}
}

func TestDecode_Empty(t *testing.T) {
	called := false
	reviver := func(func(any) error) (string, error) {
		called = true
		return "revived", nil
	}

	got, err := Decode([]byte{}, reviver, JSON())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got != "" {
		t.Errorf("Decode() = %q, want zero value", got)
	}
	if called {
		t.Error("reviver should not be called for an empty payload")
	}
}

func TestDecode_Null(t *testing.T) {
	got, err := Decode[*string]([]byte("null"), nil, nil)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got != nil {
		t.Errorf("Decode() = %v, want nil", got)
	}
}

func TestDecode_Reviver(t *testing.T) {
	type celsius struct{ Degrees float64 }

	reviver := func(unmarshal func(any) error) (celsius, error) {
		var d float64
		if err := unmarshal(&d); err != nil {
			return celsius{}, err
		}
		return celsius{Degrees: d}, nil
	}

	got, err := Decode([]byte("21.5"), reviver, nil)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got.Degrees != 21.5 {
		t.Errorf("Decode() = %+v, want 21.5", got)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		_, err := Decode[string]([]byte("{not json"), nil, nil)
		if !errors.Is(err, ErrUnmarshal) {
			t.Errorf("Decode() error = %v, want ErrUnmarshal", err)
		}
	})

	t.Run("invalid payload through reviver", func(t *testing.T) {
		reviver := func(unmarshal func(any) error) (int, error) {
			var n int
			_ = unmarshal(&n)
			return n, errors.New("masked")
		}
		_, err := Decode([]byte("{not json"), reviver, nil)
		if !errors.Is(err, ErrUnmarshal) {
			t.Errorf("Decode() error = %v, want ErrUnmarshal", err)
		}
	})

	t.Run("reviver error", func(t *testing.T) {
		sentinel := errors.New("out of range")
		reviver := func(func(any) error) (int, error) { return 0, sentinel }
		_, err := Decode([]byte("1"), reviver, nil)
		if !errors.Is(err, sentinel) {
			t.Errorf("Decode() error = %v, want %v", err, sentinel)
		}
	})
}
