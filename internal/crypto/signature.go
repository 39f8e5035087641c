package crypto

import (
	"crypto"
	"crypto/md5"
	"crypto/rsa"
	"crypto/sha256"
	encasn1 "encoding/asn1"
	"encoding/hex"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

var oidSHA256 = encasn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 1}

// Sign produces the platform's transaction signature for data.
//
// The payload is MD5 hashed, the lowercase hex of that hash is SHA-256
// hashed, and the resulting digest is wrapped in a DigestInfo structure
// signed with PKCS#1 v1.5. The double hash looks odd but is load-bearing:
// the platform verifies against the hex-encoded MD5, not the raw payload.
// The signature is returned as standard padded base64.
func Sign(key *rsa.PrivateKey, data string) (string, error) {
	digestInfo, err := signedDigest(data)
	if err != nil {
		return "", err
	}
	// Hash 0 signs the DigestInfo as-is; the prefix is already attached.
	sig, err := rsa.SignPKCS1v15(nil, key, crypto.Hash(0), digestInfo)
	if err != nil {
		return "", err
	}
	return ToBase64(sig), nil
}

// Verify reports whether signature matches data under the public key. It
// recomputes the digest exactly as Sign does, so a signature produced
// with the matching private key always verifies. Malformed signatures
// verify false rather than returning an error.
func Verify(pub *rsa.PublicKey, data, signature string) bool {
	raw, err := FromBase64(signature)
	if err != nil {
		return false
	}
	digestInfo, err := signedDigest(data)
	if err != nil {
		return false
	}
	return rsa.VerifyPKCS1v15(pub, crypto.Hash(0), digestInfo, raw) == nil
}

// signedDigest builds the DigestInfo that gets signed: the SHA-256
// AlgorithmIdentifier followed by the digest of the lowercase hex MD5 of
// the payload.
func signedDigest(data string) ([]byte, error) {
	md5Sum := md5.Sum([]byte(data))
	digest := sha256.Sum256([]byte(hex.EncodeToString(md5Sum[:])))

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(di *cryptobyte.Builder) {
		di.AddASN1(asn1.SEQUENCE, func(alg *cryptobyte.Builder) {
			alg.AddASN1ObjectIdentifier(oidSHA256)
			alg.AddASN1NULL()
		})
		di.AddASN1OctetString(digest[:])
	})
	return b.Bytes()
}
