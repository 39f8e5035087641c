// Package crypto implements the RSA transport scheme used by the ChainUp
// Custody open API.
//
// # Algorithm Suite
//
// The platform does not use a standard RSA encryption mode. Request
// payloads are encrypted with the merchant's PRIVATE key and response
// payloads are decrypted with the platform's PUBLIC key, one PKCS#1 v1.5
// type 1 block at a time:
//
//   - Encrypt: split the payload into (k-11)-byte chunks, where k is the
//     modulus size in bytes; pad each chunk to k bytes as
//     0x00 0x01 0xFF..0xFF 0x00 chunk; apply the private exponent; emit
//     the concatenated blocks as URL-safe base64 without padding.
//   - Decrypt: base64 decode, apply the public exponent to each k-byte
//     window, strip the padding, concatenate, and require valid UTF-8.
//   - Sign: SHA-256 over the lowercase hex MD5 of the payload, wrapped in
//     a DigestInfo header and signed with PKCS#1 v1.5; standard base64
//     with padding.
//   - Verify: recompute the digest and check the signature under the
//     public key.
//
// # Security Model
//
// The scheme provides authenticity, not confidentiality: anyone holding
// the public key can read the traffic. The 0xFF filler is fixed, so equal
// payloads always produce equal ciphertexts. Both properties are required
// for byte compatibility with the platform and its other SDKs and must
// not be changed here.
//
// # Key Handling
//
// Merchant dashboards hand keys out in assorted shapes: bare base64,
// single-line PEM, full PEM, with and without RSA-style headers.
// NormalizeKeyPEM canonicalizes all of them. Parsing accepts PKCS#8 and
// PKCS#1 private keys, and PKIX and PKCS#1 public keys.
package crypto
