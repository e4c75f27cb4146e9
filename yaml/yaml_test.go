package yaml

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/securevar"
)

type settings struct {
	Name    string `yaml:"name"`
	Retries int    `yaml:"retries"`
	Server  struct {
		Host string `yaml:"host"`
	} `yaml:"server"`
}

func TestContentType(t *testing.T) {
	if New().ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", New().ContentType(), "application/yaml")
	}
	if Strict().ContentType() != "application/yaml" {
		t.Errorf("Strict().ContentType() = %q, want %q", Strict().ContentType(), "application/yaml")
	}
}

func TestMarshal_TwoSpaceIndent(t *testing.T) {
	var s settings
	s.Name = "primary"
	s.Server.Host = "db.internal"

	data, err := New().Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), "server:\n  host: db.internal\n") {
		t.Errorf("Marshal() = %q, want two space indentation", data)
	}
}

func TestUnmarshal_UnknownFields(t *testing.T) {
	input := []byte("name: primary\nextra: true\n")

	var lax settings
	if err := New().Unmarshal(input, &lax); err != nil {
		t.Errorf("New().Unmarshal() error: %v", err)
	}
	if lax.Name != "primary" {
		t.Errorf("Name = %q, want %q", lax.Name, "primary")
	}

	var strict settings
	if err := Strict().Unmarshal(input, &strict); err == nil {
		t.Error("Strict().Unmarshal() should reject unknown field")
	}
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"string for int", "retries: not_a_number"},
		{"array for int", "retries:\n  - 1\n  - 2"},
		{"map for int", "retries:\n  nested: true"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v settings
			if err := New().Unmarshal([]byte(tc.input), &v); err == nil {
				t.Errorf("Unmarshal(%q) should return error for type mismatch", tc.input)
			}
		})
	}
}

func TestUnmarshal_EmptyDocument(t *testing.T) {
	var v settings
	if err := New().Unmarshal([]byte{}, &v); err == nil {
		t.Error("Unmarshal(empty) should report the missing document")
	}
}

func TestVariable_EncryptedRoundTrip(t *testing.T) {
	ctx := context.Background()

	var original settings
	original.Name = "replica"
	original.Retries = 3
	original.Server.Host = "10.0.0.2"

	v, err := securevar.From(ctx, original, "pw", nil, securevar.Config{Codec: Strict()})
	if err != nil {
		t.Fatalf("From() error: %v", err)
	}

	detail, err := v.Read(ctx, "pw", nil)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if detail.Decoded != original {
		t.Errorf("Decoded = %+v, want %+v", detail.Decoded, original)
	}
	if !strings.HasPrefix(string(detail.Encoded), "name: replica\n") {
		t.Errorf("Encoded = %q, want YAML document", detail.Encoded)
	}
}

func TestVariable_PlaintextMalformed(t *testing.T) {
	ctx := context.Background()

	raw := append(securevar.CreateHeader(false), []byte("name: [unterminated")...)
	v := securevar.Import[settings](raw, securevar.Config{Codec: New()})

	_, err := v.Get(ctx, "", nil)
	if !errors.Is(err, securevar.ErrUnmarshal) {
		t.Errorf("Get() error = %v, want ErrUnmarshal", err)
	}
}
