package crypto

import "errors"

var (
	// ErrKeyFormat is returned when RSA key material cannot be parsed in
	// any accepted encoding.
	ErrKeyFormat = errors.New("invalid RSA key material")

	// ErrCiphertextEncoding is returned when a ciphertext is not valid
	// base64 in either the unpadded or the padded URL-safe alphabet.
	ErrCiphertextEncoding = errors.New("ciphertext is not valid base64")

	// ErrPlaintextEncoding is returned when a decrypted payload is not
	// valid UTF-8.
	ErrPlaintextEncoding = errors.New("decrypted payload is not valid UTF-8")
)
