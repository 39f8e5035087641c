package mpc

import (
	"github.com/sirupsen/logrus"

	custody "github.com/chainup-custody/custody-go"
	"github.com/chainup-custody/custody-go/internal/api"
)

// Client is the MPC wallet API client. It is safe for concurrent use.
type Client struct {
	appID  string
	apiKey string
	crypto custody.CryptoProvider
	api    *api.Client
}

// New creates an MPC client for the given workspace.
//
// privateKey is the merchant RSA private key, platformPublicKey the
// ChainUp platform RSA public key. Keys are accepted in PEM form or as
// the bare base64 body shown in the merchant dashboard. The public key
// may be empty when responses are not decrypted locally, and both keys
// may be empty when WithCryptoProvider supplies the cryptography.
func New(appID, privateKey, platformPublicKey string, opts ...Option) (*Client, error) {
	if appID == "" {
		return nil, custody.ErrMissingAppID
	}

	cfg := clientConfig{domain: DefaultDomain}
	for _, opt := range opts {
		opt(&cfg)
	}

	provider := cfg.provider
	if provider == nil {
		if privateKey == "" {
			return nil, custody.ErrPrivateKeyRequired
		}
		var err error
		provider, err = custody.NewRSAProviderWithSignKey(privateKey, platformPublicKey, cfg.signPrivateKey)
		if err != nil {
			return nil, err
		}
	}

	var apiOpts []api.Option
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if log := buildLogger(&cfg); log != nil {
		apiOpts = append(apiOpts, api.WithLogger(log))
	}

	return &Client{
		appID:  appID,
		apiKey: cfg.apiKey,
		crypto: provider,
		api:    api.New(appID, cfg.domain, provider, apiOpts...),
	}, nil
}

func buildLogger(cfg *clientConfig) *logrus.Logger {
	if cfg.logger != nil {
		return cfg.logger
	}
	if cfg.debug {
		log := logrus.New()
		log.SetLevel(logrus.DebugLevel)
		return log
	}
	return nil
}

// AppID returns the workspace app identifier.
func (c *Client) AppID() string { return c.appID }

// APIKey returns the workspace API key configured with WithAPIKey.
func (c *Client) APIKey() string { return c.apiKey }

// signAvailable reports whether the client can produce co-signing
// signatures. Custom crypto providers are assumed to sign.
func (c *Client) signAvailable() bool {
	if p, ok := c.crypto.(*custody.RSAProvider); ok {
		return p.SignKeyAvailable()
	}
	return true
}
