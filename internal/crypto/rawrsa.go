package crypto

import (
	"crypto/rsa"
	"fmt"
	"math/big"
	"unicode/utf8"
)

// Encrypt encrypts plaintext with the RSA private key and returns
// URL-safe base64 without padding.
//
// The plaintext is split into blocks of k-11 bytes, where k is the
// modulus size in bytes. Each block is wrapped in a PKCS#1 v1.5 type 1
// frame, raised to the private exponent and written out left-padded to
// exactly k bytes. An empty plaintext produces an empty ciphertext.
//
// The filler bytes are a fixed 0xFF run rather than random, so the same
// plaintext under the same key always yields the same ciphertext. The
// platform's signature-style use of the scheme depends on that.
func Encrypt(priv *rsa.PrivateKey, plaintext []byte) (string, error) {
	k := priv.Size()
	max := k - PaddingOverhead
	if max <= 0 {
		return "", fmt.Errorf("%w: %d-byte modulus is too small for block encryption", ErrKeyFormat, k)
	}

	out := make([]byte, 0, ((len(plaintext)+max-1)/max)*k)
	for off := 0; off < len(plaintext); off += max {
		end := off + max
		if end > len(plaintext) {
			end = len(plaintext)
		}
		m := new(big.Int).SetBytes(padBlock(plaintext[off:end], k))
		c := new(big.Int).Exp(m, priv.D, priv.N)
		out = append(out, c.FillBytes(make([]byte, k))...)
	}
	return ToBase64URL(out), nil
}

// Decrypt reverses Encrypt using the RSA public key: base64 decode, apply
// the public exponent to each k-byte window, strip the padding and
// reassemble. The result must be valid UTF-8.
func Decrypt(pub *rsa.PublicKey, ciphertext string) (string, error) {
	raw, err := DecodeBase64(ciphertext)
	if err != nil {
		return "", err
	}

	k := pub.Size()
	e := big.NewInt(int64(pub.E))
	var out []byte
	for off := 0; off < len(raw); off += k {
		end := off + k
		if end > len(raw) {
			end = len(raw)
		}
		c := new(big.Int).SetBytes(raw[off:end])
		m := new(big.Int).Exp(c, e, pub.N)
		out = append(out, stripPadding(m.FillBytes(make([]byte, k)))...)
	}

	if !utf8.Valid(out) {
		return "", ErrPlaintextEncoding
	}
	return string(out), nil
}

// padBlock wraps a chunk in a PKCS#1 v1.5 type 1 frame:
// 0x00 0x01, then 0xFF filler, then a 0x00 separator, then the chunk.
func padBlock(chunk []byte, k int) []byte {
	block := make([]byte, k)
	block[1] = 0x01
	for i := 2; i < k-len(chunk)-1; i++ {
		block[i] = 0xFF
	}
	copy(block[k-len(chunk):], chunk)
	return block
}

// stripPadding removes the type 1 frame from a decrypted block. Blocks
// without a well-formed header fall back to skipping leading zero bytes,
// so malformed input degrades to garbage output instead of an error. The
// platform's SDKs all behave this way and some deployed integrations
// depend on it.
func stripPadding(block []byte) []byte {
	if len(block) >= PaddingOverhead && (block[1] == 0x01 || block[1] == 0x02) {
		for i := 2; i < len(block); i++ {
			if block[i] == 0x00 {
				return block[i+1:]
			}
		}
	}
	i := 0
	for i < len(block) && block[i] == 0x00 {
		i++
	}
	return block[i:]
}
