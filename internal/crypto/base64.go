package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ToBase64URL encodes data as URL-safe base64 without padding, the
// encoding the platform uses for encrypted payloads.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeBase64 decodes URL-safe base64 with or without padding.
//
// Ciphertext produced by this package is unpadded, but payloads relayed
// through other custody SDKs sometimes arrive padded. The unpadded
// alphabet is tried first; on failure the input is padded out to a
// multiple of four characters and decoded with the padded alphabet.
func DecodeBase64(s string) ([]byte, error) {
	if b, err := base64.RawURLEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	padded := s
	if n := len(s) % 4; n != 0 {
		padded += strings.Repeat("=", 4-n)
	}
	b, err := base64.URLEncoding.DecodeString(padded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCiphertextEncoding, err)
	}
	return b, nil
}

// ToBase64 encodes data as standard base64 with padding. Signatures use
// this encoding, not the URL-safe one.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard padded base64.
func FromBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
