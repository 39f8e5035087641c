package crypto

import (
	"bytes"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	key := testKey(t)

	tests := []struct {
		name string
		data string
	}{
		{"canonical withdraw string", "address_to=0xabc&amount=1.5&request_id=req-1&sub_wallet_id=42&symbol=eth"},
		{"empty string", ""},
		{"multibyte", "memo=备注&symbol=trx"},
		{"long input", string(bytes.Repeat([]byte("k=v&"), 500))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := Sign(key, tt.data)
			if err != nil {
				t.Fatalf("Sign() error = %v", err)
			}
			if !Verify(&key.PublicKey, tt.data, sig) {
				t.Error("Verify() = false for a freshly produced signature")
			}
		})
	}
}

func TestVerifyRejects(t *testing.T) {
	key := testKey(t)
	sig, err := Sign(key, "legit payload")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	tests := []struct {
		name string
		data string
		sig  string
	}{
		{"different payload", "tampered payload", sig},
		{"not base64", "legit payload", "%%%not-base64%%%"},
		{"base64 of junk", "legit payload", ToBase64([]byte("junk bytes"))},
		{"empty signature", "legit payload", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Verify(&key.PublicKey, tt.data, tt.sig) {
				t.Error("Verify() = true, want false")
			}
		})
	}
}

func TestVerifyWrongKey(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping extra key generation in short mode")
	}
	key := testKey(t)
	sig, err := Sign(key, "payload")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	other := otherTestKey(t)
	if Verify(&other.PublicKey, "payload", sig) {
		t.Error("Verify() = true under an unrelated public key")
	}
}

func TestSignDeterministic(t *testing.T) {
	key := testKey(t)
	first, err := Sign(key, "stable input")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	second, err := Sign(key, "stable input")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if first != second {
		t.Error("same input signed twice produced different signatures")
	}
}

func TestSignatureLength(t *testing.T) {
	key := testKey(t)
	sig, err := Sign(key, "any input")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	raw, err := FromBase64(sig)
	if err != nil {
		t.Fatalf("FromBase64() error = %v", err)
	}
	if len(raw) != key.Size() {
		t.Errorf("signature length = %d, want modulus size %d", len(raw), key.Size())
	}
}

func TestSignedDigestLayout(t *testing.T) {
	// The DigestInfo header for SHA-256, byte for byte. Interoperability
	// with the platform depends on this exact prefix.
	wantPrefix := []byte{
		0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
		0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00, 0x04, 0x20,
	}

	di, err := signedDigest("layout probe")
	if err != nil {
		t.Fatalf("signedDigest() error = %v", err)
	}
	if len(di) != len(wantPrefix)+sha256.Size {
		t.Fatalf("signedDigest() length = %d, want %d", len(di), len(wantPrefix)+sha256.Size)
	}
	if !bytes.Equal(di[:len(wantPrefix)], wantPrefix) {
		t.Errorf("signedDigest() prefix = %x, want %x", di[:len(wantPrefix)], wantPrefix)
	}

	md5Sum := md5.Sum([]byte("layout probe"))
	wantDigest := sha256.Sum256([]byte(hex.EncodeToString(md5Sum[:])))
	if !bytes.Equal(di[len(wantPrefix):], wantDigest[:]) {
		t.Error("signedDigest() trailing bytes are not the SHA-256 of the hex MD5")
	}
}
