package mpc

import (
	"net/http"

	"github.com/sirupsen/logrus"

	custody "github.com/chainup-custody/custody-go"
)

// DefaultDomain is the production MPC API endpoint.
const DefaultDomain = "https://openapi.chainup.com/"

// clientConfig holds configuration for the client.
type clientConfig struct {
	domain         string
	apiKey         string
	signPrivateKey string
	provider       custody.CryptoProvider
	httpClient     *http.Client
	logger         *logrus.Logger
	debug          bool
}

// Option configures the client.
type Option func(*clientConfig)

// WithDomain sets the API domain. Default: DefaultDomain.
func WithDomain(domain string) Option {
	return func(c *clientConfig) {
		if domain != "" {
			c.domain = domain
		}
	}
}

// WithAPIKey sets the workspace API key. The key is not sent with
// requests; it is kept for callers that need it alongside the client.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.apiKey = key
	}
}

// WithSignPrivateKey sets a dedicated RSA private key for withdrawal
// and Web3 co-signing. Without it the merchant private key signs.
func WithSignPrivateKey(pemKey string) Option {
	return func(c *clientConfig) {
		c.signPrivateKey = pemKey
	}
}

// WithCryptoProvider replaces the built-in RSA provider, for callers
// that keep key material in an HSM or external signer. When set, the
// key arguments to New are ignored.
func WithCryptoProvider(p custody.CryptoProvider) Option {
	return func(c *clientConfig) {
		c.provider = p
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger for request and response tracing.
func WithLogger(log *logrus.Logger) Option {
	return func(c *clientConfig) {
		c.logger = log
	}
}

// WithDebug enables debug tracing on a default stderr logger. Ignored
// when WithLogger is set.
func WithDebug(debug bool) Option {
	return func(c *clientConfig) {
		c.debug = debug
	}
}
