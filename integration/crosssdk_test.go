//go:build integration

package integration

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	custody "github.com/chainup-custody/custody-go"
)

// The ChainUp platform ships SDKs for several languages. They all share
// the segmented raw-RSA transport, so ciphertext and signatures produced
// by one implementation must be readable by every other. These tests
// check that property against real key material.

func newProvider(t *testing.T) *custody.RSAProvider {
	t.Helper()

	provider, err := custody.NewRSAProvider(privateKey, publicKey)
	if err != nil {
		t.Fatalf("NewRSAProvider() error = %v", err)
	}
	return provider
}

// TestCrossSDK_CipherRoundTrip proves the configured key pair actually
// corresponds: what the merchant key encrypts, the platform key decrypts.
func TestCrossSDK_CipherRoundTrip(t *testing.T) {
	provider := newProvider(t)

	plaintext := `{"symbol":"ETH","time":"1713088000000","charset":"UTF-8"}`
	cipher, err := provider.EncryptWithPrivateKey(plaintext)
	if err != nil {
		t.Fatalf("EncryptWithPrivateKey() error = %v", err)
	}
	t.Logf("cipher: %d chars", len(cipher))

	back, err := provider.DecryptWithPublicKey(cipher)
	if err != nil {
		t.Fatalf("DecryptWithPublicKey() error = %v", err)
	}
	if back != plaintext {
		t.Errorf("round trip = %q, want %q", back, plaintext)
	}
}

// TestCrossSDK_SignatureRoundTrip checks Sign/Verify against the same key.
// Only meaningful when the signing key pair is configured.
func TestCrossSDK_SignatureRoundTrip(t *testing.T) {
	signKey := os.Getenv("CUSTODY_SIGN_PRIVATE_KEY")
	signPub := os.Getenv("CUSTODY_SIGN_PUBLIC_KEY")
	if signKey == "" || signPub == "" {
		t.Skip("CUSTODY_SIGN_PRIVATE_KEY and CUSTODY_SIGN_PUBLIC_KEY not set")
	}

	provider, err := custody.NewRSAProviderWithSignKey(privateKey, signPub, signKey)
	if err != nil {
		t.Fatalf("NewRSAProviderWithSignKey() error = %v", err)
	}

	payload := custody.SignString(map[string]string{
		"request_id": "cross-sdk-check",
		"symbol":     "ETH",
		"amount":     "0.01",
	})
	t.Logf("sign string: %s", payload)

	signature, err := provider.Sign(payload)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if !provider.Verify(payload, signature) {
		t.Error("Verify() rejected a signature this provider just produced")
	}
}

// TestCrossSDK_DecryptForeignCipher decrypts ciphertext produced by another
// SDK implementation with the same merchant key. Point FOREIGN_CIPHER_FILE
// at a file holding the raw base64 output of, say, the Java SDK's encrypt.
func TestCrossSDK_DecryptForeignCipher(t *testing.T) {
	path := os.Getenv("FOREIGN_CIPHER_FILE")
	if path == "" {
		t.Skip("skipping: FOREIGN_CIPHER_FILE not set")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read cipher file: %v", err)
	}

	provider := newProvider(t)
	plaintext, err := provider.DecryptWithPublicKey(strings.TrimSpace(string(data)))
	if err != nil {
		t.Fatalf("DecryptWithPublicKey() error = %v", err)
	}
	t.Logf("foreign plaintext: %s", plaintext)

	// Every SDK encrypts JSON request bodies, so the plaintext must parse.
	var body map[string]any
	if err := json.Unmarshal([]byte(plaintext), &body); err != nil {
		t.Errorf("foreign plaintext is not JSON: %v", err)
	}
}

// TestCrossSDK_VerifyForeignSignature verifies a signature produced by
// another SDK. FOREIGN_SIGNATURE_FILE holds {"data": "...", "signature": "..."}.
func TestCrossSDK_VerifyForeignSignature(t *testing.T) {
	path := os.Getenv("FOREIGN_SIGNATURE_FILE")
	signPub := os.Getenv("CUSTODY_SIGN_PUBLIC_KEY")
	if path == "" || signPub == "" {
		t.Skip("skipping: FOREIGN_SIGNATURE_FILE and CUSTODY_SIGN_PUBLIC_KEY not set")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read signature file: %v", err)
	}
	var artifact struct {
		Data      string `json:"data"`
		Signature string `json:"signature"`
	}
	if err := json.Unmarshal(raw, &artifact); err != nil {
		t.Fatalf("Failed to parse signature file: %v", err)
	}

	provider, err := custody.NewRSAProvider(privateKey, signPub)
	if err != nil {
		t.Fatalf("NewRSAProvider() error = %v", err)
	}
	if !provider.Verify(artifact.Data, artifact.Signature) {
		t.Errorf("Verify() rejected the foreign signature over %q", artifact.Data)
	}
}

// TestCrossSDK_SignStringGolden pins the canonical sign string so every
// SDK sorts, filters and joins parameters identically.
func TestCrossSDK_SignStringGolden(t *testing.T) {
	got := custody.SignString(map[string]string{
		"symbol":     "ETH",
		"amount":     "1.5",
		"request_id": "WD-42",
		"remark":     "",
	})
	want := "amount=1.5&request_id=wd-42&symbol=eth"
	if got != want {
		t.Errorf("SignString() = %q, want %q", got, want)
	}
}
