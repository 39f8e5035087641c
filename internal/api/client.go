package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	custody "github.com/chainup-custody/custody-go"
)

// formContentType is the only content type the platform accepts. It is
// sent on GET requests too, matching the platform's other SDKs.
const formContentType = "application/x-www-form-urlencoded"

// defaultTimeout bounds each round trip when the caller does not supply
// an HTTP client.
const defaultTimeout = 30 * time.Second

// Client drives the encrypted pipeline against one product's endpoint
// family. It is safe for concurrent use.
type Client struct {
	appID      string
	baseURL    string
	charset    string
	crypto     custody.CryptoProvider
	httpClient *http.Client
	log        *logrus.Logger
}

// Option configures the pipeline client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithCharset sets the charset field injected into every request.
func WithCharset(charset string) Option {
	return func(c *Client) {
		if charset != "" {
			c.charset = charset
		}
	}
}

// WithLogger routes pipeline debug logging to log.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a pipeline client. baseURL carries scheme and host (plus
// any version prefix) with no trailing slash; request paths are joined
// onto it.
func New(appID, baseURL string, crypto custody.CryptoProvider, opts ...Option) *Client {
	c := &Client{
		appID:   appID,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		charset: "utf-8",
		crypto:  crypto,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		log: discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Get executes a GET request and decodes the success payload into out.
func (c *Client) Get(ctx context.Context, path string, params map[string]any, out any) error {
	env, err := c.Execute(ctx, http.MethodGet, path, params)
	if err != nil {
		return err
	}
	return c.Resolve(env, out)
}

// Post executes a POST request and decodes the success payload into out.
func (c *Client) Post(ctx context.Context, path string, params map[string]any, out any) error {
	env, err := c.Execute(ctx, http.MethodPost, path, params)
	if err != nil {
		return err
	}
	return c.Resolve(env, out)
}

// Execute runs the pipeline and returns the response envelope, already
// swapped for its decrypted form when the platform encrypted it. Most
// callers want Get or Post; Execute exists for the endpoints that break
// the usual code contract and need the envelope itself.
func (c *Client) Execute(ctx context.Context, method, path string, params map[string]any) (*Envelope, error) {
	args := make(map[string]any, len(params)+2)
	for k, v := range params {
		args[k] = v
	}
	args["time"] = time.Now().UnixMilli()
	args["charset"] = c.charset

	raw, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("encode request args: %w", err)
	}
	c.log.Debugf("custody: %s %s args=%s", method, path, raw)

	cipher, err := c.crypto.EncryptWithPrivateKey(string(raw))
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("app_id", c.appID)
	form.Set("data", cipher)

	endpoint := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	var req *http.Request
	if method == http.MethodGet {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+form.Encode(), nil)
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	}
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", formContentType)
	req.Header.Set("User-Agent", "custody-go/"+custody.Version)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &custody.NetworkError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &custody.NetworkError{URL: endpoint, StatusCode: resp.StatusCode, Err: err}
	}
	c.log.Debugf("custody: %s status=%d body=%s", path, resp.StatusCode, body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &custody.NetworkError{URL: endpoint, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return c.decryptEnvelope(&env), nil
}

// decryptEnvelope swaps the envelope for its decrypted form when the
// data field holds an encrypted string. Failures keep the original
// envelope: platform error responses arrive in the clear, and their
// data field is not ciphertext.
func (c *Client) decryptEnvelope(env *Envelope) *Envelope {
	cipher, ok := env.DataString()
	if !ok {
		return env
	}
	plain, err := c.crypto.DecryptWithPublicKey(cipher)
	if err != nil {
		c.log.Debugf("custody: response data left undecrypted: %v", err)
		return env
	}
	c.log.Debugf("custody: decrypted response=%s", plain)

	var inner Envelope
	if err := json.Unmarshal([]byte(plain), &inner); err != nil {
		c.log.Debugf("custody: decrypted response is not an envelope: %v", err)
		return env
	}
	return &inner
}

// Resolve checks the envelope's result code and decodes its payload
// into out. A string payload at this stage is still ciphertext; unlike
// the pipeline-level decrypt, a failure here is returned, because a
// success envelope whose payload cannot be read is unusable.
func (c *Client) Resolve(env *Envelope, out any) error {
	if code := env.ResultCode(); code != 0 {
		return &custody.APIError{
			Code: custody.APICode(code),
			Msg:  env.Message(),
			Data: env.Data,
		}
	}
	if out == nil {
		return nil
	}

	data := env.Data
	if cipher, ok := env.DataString(); ok {
		plain, err := c.crypto.DecryptWithPublicKey(cipher)
		if err != nil {
			return err
		}
		data = []byte(plain)
	}
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), nullLiteral) {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}
