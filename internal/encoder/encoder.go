// Package encoder builds the "?edit=" link fragment consumed by the
// NiceJob editor: the input text, a fixed marker suffix, Base64 over the
// Latin-1 bytes.
package encoder

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const (
	// Prefix is prepended to every encoded result.
	Prefix = "?edit="
	// Suffix is appended to the input before encoding.
	Suffix = "_OLiGankEwSPermOs"

	// FailureMessage is what the result slot shows when Encode fails.
	FailureMessage = "Error: Input contains characters that cannot be encoded."
)

var (
	// ErrUnencodable reports a character outside the Latin-1 range.
	ErrUnencodable = errors.New("encoder: character outside Latin-1 range")
	// ErrMalformed reports a value that was not produced by Encode.
	ErrMalformed = errors.New("encoder: malformed encoded value")
)

// Encode returns Prefix + base64(input + Suffix). The empty string encodes
// to the empty string.
func Encode(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	raw, err := latin1(input + Suffix)
	if err != nil {
		return "", err
	}
	return Prefix + base64.StdEncoding.EncodeToString(raw), nil
}

// Message is Encode for display: the encoded value, or FailureMessage.
func Message(input string) string {
	out, err := Encode(input)
	if err != nil {
		return FailureMessage
	}
	return out
}

// Decode reverses Encode.
func Decode(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}
	body, ok := strings.CutPrefix(encoded, Prefix)
	if !ok {
		return "", fmt.Errorf("%w: missing %q prefix", ErrMalformed, Prefix)
	}
	raw, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	plain, ok := strings.CutSuffix(string(text), Suffix)
	if !ok {
		return "", fmt.Errorf("%w: missing marker suffix", ErrMalformed)
	}
	return plain, nil
}

func latin1(s string) ([]byte, error) {
	pos := 0
	for _, r := range s {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnencodable, r, pos)
		}
		pos++
	}
	out, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnencodable, err)
	}
	return []byte(out), nil
}
