package encoder

import (
	"errors"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
)

func TestEncode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"hello", "hello", "?edit=aGVsbG9fT0xpR2Fua0V3U1Blcm1Pcw=="},
		{"single", "a", "?edit=YV9PTGlHYW5rRXdTUGVybU9z"},
		{"space", "12345 test", "?edit=MTIzNDUgdGVzdF9PTGlHYW5rRXdTUGVybU9z"},
		{"latin1", "café", "?edit=Y2Fm6V9PTGlHYW5rRXdTUGVybU9z"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Encode(tc.in)
			if err != nil {
				t.Fatalf("Encode(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("Encode(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestEncodeRejectsNonLatin1(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"日本", "emoji 😀", "euro €", "bad \xff byte"} {
		got, err := Encode(in)
		if !errors.Is(err, ErrUnencodable) {
			t.Fatalf("Encode(%q) error = %v, want ErrUnencodable", in, err)
		}
		if got != "" {
			t.Fatalf("Encode(%q) produced partial output %q", in, got)
		}
	}
}

func TestEncodeErrorNamesPosition(t *testing.T) {
	t.Parallel()
	_, err := Encode("ab€")
	if err == nil || !strings.Contains(err.Error(), "position 2") {
		t.Fatalf("expected position in error, got %v", err)
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()
	if got := Message("hello"); got != "?edit=aGVsbG9fT0xpR2Fua0V3U1Blcm1Pcw==" {
		t.Fatalf("Message(hello) = %q", got)
	}
	if got := Message("€"); got != FailureMessage {
		t.Fatalf("Message(€) = %q, want %q", got, FailureMessage)
	}
	if got := Message(""); got != "" {
		t.Fatalf("Message(\"\") = %q, want empty", got)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	f := gofakeit.New(7)
	inputs := []string{"hello", "café crème", "a;b{c}"}
	for i := 0; i < 20; i++ {
		inputs = append(inputs, f.Sentence(6))
	}
	for _, in := range inputs {
		enc, err := Encode(in)
		if err != nil {
			t.Fatalf("Encode(%q): %v", in, err)
		}
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(%q): %v", enc, err)
		}
		if dec != in {
			t.Fatalf("round trip mismatch: got %q want %q", dec, in)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"no prefix":  "aGVsbG9fT0xpR2Fua0V3U1Blcm1Pcw==",
		"bad base64": "?edit=@@@",
		"no suffix":  "?edit=aGVsbG8=",
	}
	for name, in := range cases {
		if _, err := Decode(in); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: Decode(%q) error = %v, want ErrMalformed", name, in, err)
		}
	}
}
