package custody

import (
	"crypto/rsa"
	"fmt"

	"github.com/chainup-custody/custody-go/internal/crypto"
)

// CryptoProvider supplies the cryptographic operations the request
// pipeline needs. The default implementation is RSAProvider; supply
// your own to keep private keys in an HSM or remote signer.
//
// Implementations must be safe for concurrent use.
type CryptoProvider interface {
	// EncryptWithPrivateKey encrypts plaintext with the merchant
	// private key and returns URL-safe unpadded base64 ciphertext.
	EncryptWithPrivateKey(plaintext string) (string, error)

	// DecryptWithPublicKey decrypts URL-safe base64 ciphertext with the
	// platform public key.
	DecryptWithPublicKey(ciphertext string) (string, error)

	// Sign produces a standard-base64 signature over data with the
	// signing key.
	Sign(data string) (string, error)

	// Verify reports whether signature is a valid signature over data.
	// It never fails: malformed input verifies as false.
	Verify(data, signature string) bool
}

// RSAProvider is the default CryptoProvider, holding parsed RSA keys.
// Key material is parsed once at construction and immutable afterwards,
// so a provider may be shared freely across goroutines.
type RSAProvider struct {
	priv     *rsa.PrivateKey
	pub      *rsa.PublicKey
	signPriv *rsa.PrivateKey
}

// NewRSAProvider builds a provider from the merchant private key and
// the platform public key. Either may be empty, but not both; keys are
// accepted as PEM, single-line PEM, or bare base64 DER.
func NewRSAProvider(privateKey, publicKey string) (*RSAProvider, error) {
	return NewRSAProviderWithSignKey(privateKey, publicKey, "")
}

// NewRSAProviderWithSignKey builds a provider that signs transactions
// with a dedicated key instead of the merchant private key.
func NewRSAProviderWithSignKey(privateKey, publicKey, signPrivateKey string) (*RSAProvider, error) {
	if privateKey == "" && publicKey == "" && signPrivateKey == "" {
		return nil, ErrMissingKeys
	}

	p := &RSAProvider{}
	var err error

	if privateKey != "" {
		p.priv, err = crypto.ParsePrivateKey(privateKey)
		if err != nil {
			return nil, fmt.Errorf("private key: %w", err)
		}
	}
	if publicKey != "" {
		p.pub, err = crypto.ParsePublicKey(publicKey)
		if err != nil {
			return nil, fmt.Errorf("public key: %w", err)
		}
	}
	if signPrivateKey != "" {
		p.signPriv, err = crypto.ParsePrivateKey(signPrivateKey)
		if err != nil {
			return nil, fmt.Errorf("sign private key: %w", err)
		}
	}
	return p, nil
}

// EncryptWithPrivateKey implements CryptoProvider.
func (p *RSAProvider) EncryptWithPrivateKey(plaintext string) (string, error) {
	if p.priv == nil {
		return "", ErrPrivateKeyRequired
	}
	return crypto.Encrypt(p.priv, []byte(plaintext))
}

// DecryptWithPublicKey implements CryptoProvider.
func (p *RSAProvider) DecryptWithPublicKey(ciphertext string) (string, error) {
	if p.pub == nil {
		return "", ErrPublicKeyRequired
	}
	return crypto.Decrypt(p.pub, ciphertext)
}

// Sign implements CryptoProvider. The dedicated signing key is used
// when configured, falling back to the merchant private key.
func (p *RSAProvider) Sign(data string) (string, error) {
	key := p.signPriv
	if key == nil {
		key = p.priv
	}
	if key == nil {
		return "", ErrSignKeyRequired
	}
	return crypto.Sign(key, data)
}

// Verify implements CryptoProvider. Without a public key every
// signature verifies as false.
func (p *RSAProvider) Verify(data, signature string) bool {
	if p.pub == nil {
		return false
	}
	return crypto.Verify(p.pub, data, signature)
}

// SignKeyAvailable reports whether Sign has a key to work with. The MPC
// client consults this before building transaction signatures.
func (p *RSAProvider) SignKeyAvailable() bool {
	return p.signPriv != nil || p.priv != nil
}
