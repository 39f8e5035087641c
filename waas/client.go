package waas

import (
	"strings"

	"github.com/sirupsen/logrus"

	custody "github.com/chainup-custody/custody-go"
	"github.com/chainup-custody/custody-go/internal/api"
)

// Client is the WaaS custodial wallet API client. It is safe for
// concurrent use.
type Client struct {
	appID  string
	crypto custody.CryptoProvider
	api    *api.Client
}

// New creates a WaaS client for the given merchant.
//
// privateKey is the merchant RSA private key, platformPublicKey the
// ChainUp platform RSA public key. Keys are accepted in PEM form or as
// the bare base64 body shown in the merchant dashboard. Both keys are
// required unless WithCryptoProvider supplies the cryptography.
func New(appID, privateKey, platformPublicKey string, opts ...Option) (*Client, error) {
	if appID == "" {
		return nil, custody.ErrMissingAppID
	}

	cfg := clientConfig{
		host:    DefaultHost,
		version: DefaultVersion,
		charset: custody.CharsetUTF8,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	provider := cfg.provider
	if provider == nil {
		if privateKey == "" {
			return nil, custody.ErrPrivateKeyRequired
		}
		if platformPublicKey == "" {
			return nil, custody.ErrPublicKeyRequired
		}
		var err error
		provider, err = custody.NewRSAProvider(privateKey, platformPublicKey)
		if err != nil {
			return nil, err
		}
	}

	apiOpts := []api.Option{api.WithCharset(cfg.charset)}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if log := buildLogger(&cfg); log != nil {
		apiOpts = append(apiOpts, api.WithLogger(log))
	}

	return &Client{
		appID:  appID,
		crypto: provider,
		api:    api.New(appID, baseURL(cfg.host, cfg.version), provider, apiOpts...),
	}, nil
}

// baseURL joins host and version with exactly one separator, however
// the caller spelled the slashes.
func baseURL(host, version string) string {
	return strings.TrimSuffix(host, "/") + "/" + strings.Trim(version, "/")
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

// AppID returns the merchant app identifier.
func (c *Client) AppID() string { return c.appID }
