package waas

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	custody "github.com/chainup-custody/custody-go"
)

// fakeCrypto implements custody.CryptoProvider with a reversible text
// transform so tests can assert on wire payloads without real RSA.
type fakeCrypto struct{}

func (fakeCrypto) EncryptWithPrivateKey(plain string) (string, error) {
	return "enc:" + plain, nil
}

func (fakeCrypto) DecryptWithPublicKey(cipher string) (string, error) {
	if !strings.HasPrefix(cipher, "enc:") {
		return "", errors.New("not ciphertext")
	}
	return strings.TrimPrefix(cipher, "enc:"), nil
}

func (fakeCrypto) Sign(data string) (string, error) { return "sig:" + data, nil }

func (fakeCrypto) Verify(data, signature string) bool { return signature == "sig:"+data }

// newTestClient starts a server for handler and returns a client
// pointed at it, using the fake crypto provider. Requests arrive under
// the default /v2 prefix.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New("app-1", "", "", WithHost(srv.URL), WithCryptoProvider(fakeCrypto{}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

// requestArgs recovers the decrypted request args from the POST form.
func requestArgs(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	if err := r.ParseForm(); err != nil {
		t.Fatalf("ParseForm() error = %v", err)
	}
	plain, err := fakeCrypto{}.DecryptWithPublicKey(r.FormValue("data"))
	if err != nil {
		t.Fatalf("request data is not fake ciphertext: %v", err)
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(plain), &args); err != nil {
		t.Fatalf("request args are not JSON: %v", err)
	}
	return args
}

// respondData writes a success envelope whose encrypted payload
// resolves to the given data JSON.
func respondData(t *testing.T, w http.ResponseWriter, data string) {
	t.Helper()
	inner := `{"code":0,"msg":"success"`
	if data != "" {
		inner += `,"data":` + data
	}
	inner += `}`

	enc, err := fakeCrypto{}.EncryptWithPrivateKey(inner)
	if err != nil {
		t.Fatalf("fake encrypt: %v", err)
	}
	body, err := json.Marshal(map[string]any{"code": 0, "msg": "success", "data": enc})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	w.Write(body)
}

// testKeyPEM generates a fresh RSA key pair and returns both halves in
// PEM form.
func testKeyPEM(t *testing.T) (privPEM, pubPEM string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}
	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("MarshalPKCS8PrivateKey() error = %v", err)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("MarshalPKIXPublicKey() error = %v", err)
	}
	privPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER}))
	pubPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}))
	return privPEM, pubPEM
}

func TestNew(t *testing.T) {
	privPEM, pubPEM := testKeyPEM(t)

	tests := []struct {
		name       string
		appID      string
		privateKey string
		publicKey  string
		opts       []Option
		wantErr    error
	}{
		{
			name:    "missing app id",
			wantErr: custody.ErrMissingAppID,
		},
		{
			name:      "missing private key",
			appID:     "app-1",
			publicKey: pubPEM,
			wantErr:   custody.ErrPrivateKeyRequired,
		},
		{
			name:       "missing public key",
			appID:      "app-1",
			privateKey: privPEM,
			wantErr:    custody.ErrPublicKeyRequired,
		},
		{
			name:       "both keys",
			appID:      "app-1",
			privateKey: privPEM,
			publicKey:  pubPEM,
		},
		{
			name:  "custom provider without keys",
			appID: "app-1",
			opts:  []Option{WithCryptoProvider(fakeCrypto{})},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.appID, tt.privateKey, tt.publicKey, tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && c == nil {
				t.Fatal("New() returned nil client")
			}
		})
	}
}

func TestNewRejectsMalformedKey(t *testing.T) {
	_, pubPEM := testKeyPEM(t)
	_, err := New("app-1", "not a key", pubPEM)
	if err == nil {
		t.Fatal("New() accepted a malformed private key")
	}
	if !errors.Is(err, custody.ErrKeyFormat) {
		t.Errorf("New() error = %v, want ErrKeyFormat", err)
	}
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		version string
		want    string
	}{
		{"trailing slash", "https://api.example.com/", "v2", "https://api.example.com/v2"},
		{"no trailing slash", "https://api.example.com", "v2", "https://api.example.com/v2"},
		{"slashed version", "https://api.example.com/", "/v3/", "https://api.example.com/v3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := baseURL(tt.host, tt.version); got != tt.want {
				t.Errorf("baseURL(%q, %q) = %q, want %q", tt.host, tt.version, got, tt.want)
			}
		})
	}
}

func TestRequestAddressing(t *testing.T) {
	tests := []struct {
		name        string
		opts        []Option
		wantPath    string
		wantCharset string
	}{
		{
			name:        "defaults",
			wantPath:    "/v2/user/getCoinList",
			wantCharset: "UTF-8",
		},
		{
			name:        "custom version and charset",
			opts:        []Option{WithVersion("v3"), WithCharset("GBK")},
			wantPath:    "/v3/user/getCoinList",
			wantCharset: "GBK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			var gotMethod string
			var gotArgs map[string]any
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotMethod = r.Method
				gotArgs = requestArgs(t, r)
				respondData(t, w, `[]`)
			}))
			t.Cleanup(srv.Close)

			opts := append([]Option{WithHost(srv.URL), WithCryptoProvider(fakeCrypto{})}, tt.opts...)
			c, err := New("app-1", "", "", opts...)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if _, err := c.GetCoinList(context.Background()); err != nil {
				t.Fatalf("GetCoinList() error = %v", err)
			}

			if gotMethod != http.MethodPost {
				t.Errorf("method = %s, want POST", gotMethod)
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %s, want %s", gotPath, tt.wantPath)
			}
			if gotArgs["charset"] != tt.wantCharset {
				t.Errorf("charset = %v, want %s", gotArgs["charset"], tt.wantCharset)
			}
		})
	}
}

func TestAppID(t *testing.T) {
	c, err := New("app-9", "", "", WithCryptoProvider(fakeCrypto{}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.AppID() != "app-9" {
		t.Errorf("AppID() = %s, want app-9", c.AppID())
	}
}
