package integration

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/zoobzio/securevar"
	"github.com/zoobzio/securevar/bson"
	"github.com/zoobzio/securevar/msgpack"
	vartest "github.com/zoobzio/securevar/testing"
	"github.com/zoobzio/securevar/xml"
	"github.com/zoobzio/securevar/yaml"
)

func codecs() map[string]securevar.Codec {
	return map[string]securevar.Codec{
		"json":    securevar.JSON(),
		"yaml":    yaml.New(),
		"msgpack": msgpack.New(),
		"bson":    bson.New(),
	}
}

func TestRoundTrip_Plaintext(t *testing.T) {
	for name, c := range codecs() {
		t.Run(name, func(t *testing.T) {
			testRoundTrip(t, securevar.Config{Codec: c}, "")
		})
	}
}

func TestRoundTrip_Encrypted(t *testing.T) {
	for name, c := range codecs() {
		for _, algo := range securevar.Algorithms() {
			t.Run(name+"/"+string(algo), func(t *testing.T) {
				testRoundTrip(t, securevar.Config{Codec: c, Algorithm: algo}, vartest.TestPassword())
			})
		}
	}
}

func testRoundTrip(t *testing.T, cfg securevar.Config, password string) {
	t.Helper()

	original := vartest.NewSimpleObject()
	v := vartest.MustFrom(t, original, password, cfg)

	if v.IsEncrypted() != (password != "") {
		t.Errorf("IsEncrypted() = %v, want %v", v.IsEncrypted(), password != "")
	}

	// Export and import into a fresh Variable with the same configuration.
	restored := securevar.Import[vartest.SimpleObject](v.Export(), cfg)
	got := vartest.MustGet(t, restored, password)

	if !reflect.DeepEqual(got, original) {
		t.Errorf("round-trip = %+v, want %+v", got, original)
	}
}

func TestRoundTrip_XML(t *testing.T) {
	cfg := securevar.Config{Codec: xml.New()}
	original := vartest.XMLObject{
		Name:    "Hello World",
		Count:   100,
		Enabled: true,
		Tags:    []string{"a", "b"},
	}

	v := vartest.MustFrom(t, original, vartest.TestPassword(), cfg)
	got := vartest.MustGet(t, securevar.Import[vartest.XMLObject](v.Export(), cfg), vartest.TestPassword())

	if !reflect.DeepEqual(got, original) {
		t.Errorf("round-trip = %+v, want %+v", got, original)
	}
}

func TestReplacerReviver_AllCodecs(t *testing.T) {
	ctx := context.Background()

	for name, c := range codecs() {
		t.Run(name, func(t *testing.T) {
			cfg := securevar.Config{Codec: c}
			in := vartest.ComplexObject{Value: 100}

			v, err := securevar.From(ctx, in, vartest.TestPassword(), vartest.ComplexReplacer, cfg)
			if err != nil {
				t.Fatalf("From() error: %v", err)
			}

			got, err := v.Get(ctx, vartest.TestPassword(), vartest.ComplexReviver)
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if got != in {
				t.Errorf("Get() = %+v, want %+v", got, in)
			}
		})
	}
}

func TestCodecMismatch(t *testing.T) {
	v := vartest.MustFrom(t, vartest.NewSimpleObject(), "", securevar.Config{Codec: msgpack.New()})
	w := securevar.Import[vartest.SimpleObject](v.Export(), securevar.Config{})

	if _, err := w.Get(context.Background(), "", nil); !errors.Is(err, securevar.ErrUnmarshal) {
		t.Errorf("Get() error = %v, want ErrUnmarshal", err)
	}
}

func TestMissingPassword_AllAlgorithms(t *testing.T) {
	for _, algo := range securevar.Algorithms() {
		t.Run(string(algo), func(t *testing.T) {
			v := vartest.MustFrom(t, "secret", vartest.TestPassword(), securevar.Config{Algorithm: algo})
			if _, err := v.Get(context.Background(), "", nil); !errors.Is(err, securevar.ErrMissingPassword) {
				t.Errorf("Get() error = %v, want ErrMissingPassword", err)
			}
		})
	}
}
