package waas

import (
	"net/http"

	"github.com/sirupsen/logrus"

	custody "github.com/chainup-custody/custody-go"
)

// DefaultHost is the production WaaS API endpoint.
const DefaultHost = "https://openapi.chainup.com/"

// DefaultVersion is the API version segment joined onto the host.
const DefaultVersion = "v2"

// clientConfig holds configuration for the client.
type clientConfig struct {
	host       string
	version    string
	charset    string
	provider   custody.CryptoProvider
	httpClient *http.Client
	logger     *logrus.Logger
	debug      bool
}

// Option configures the client.
type Option func(*clientConfig)

// WithHost sets the API host. Default: DefaultHost.
func WithHost(host string) Option {
	return func(c *clientConfig) {
		if host != "" {
			c.host = host
		}
	}
}

// WithVersion sets the API version segment. Default: DefaultVersion.
func WithVersion(version string) Option {
	return func(c *clientConfig) {
		if version != "" {
			c.version = version
		}
	}
}

// WithCharset sets the charset field sent with every request. Default:
// custody.CharsetUTF8.
func WithCharset(charset string) Option {
	return func(c *clientConfig) {
		if charset != "" {
			c.charset = charset
		}
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
