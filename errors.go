package custody

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chainup-custody/custody-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAppID is returned when a client is built without an app ID.
	ErrMissingAppID = errors.New("app_id is required")

	// ErrMissingKeys is returned when a provider is built with no key
	// material at all.
	ErrMissingKeys = errors.New("at least one RSA key is required")

	// ErrPrivateKeyRequired is returned when an operation needs the
	// merchant private key and none is configured.
	ErrPrivateKeyRequired = errors.New("private key is not set")

	// ErrPublicKeyRequired is returned when an operation needs the
	// platform public key and none is configured.
	ErrPublicKeyRequired = errors.New("public key is not set")

	// ErrSignKeyRequired is returned when transaction signing is
	// requested but neither a signing key nor a private key is set.
	ErrSignKeyRequired = errors.New("no signing key or private key is set")

	// ErrEmptyNotification is returned when an empty notification body
	// is handed to a notify decoder.
	ErrEmptyNotification = errors.New("notification payload is empty")

	// ErrKeyFormat is returned when RSA key material cannot be parsed.
	ErrKeyFormat = crypto.ErrKeyFormat

	// ErrCiphertextEncoding is returned when ciphertext is not valid
	// base64 in any accepted alphabet.
	ErrCiphertextEncoding = crypto.ErrCiphertextEncoding

	// ErrInvalidPlaintext is returned when a decrypted payload is not
	// valid UTF-8, which almost always means a key mismatch.
	ErrInvalidPlaintext = crypto.ErrPlaintextEncoding
)

// CustodyError is implemented by all SDK errors.
type CustodyError interface {
	error
	CustodyError() // marker method
}

// APIError represents a non-zero result code from the custody platform.
type APIError struct {
	// Code is the platform result code. Compare against the Code*
	// constants in this package.
	Code APICode
	// Msg is the platform's message, already defaulted to
	// "Unknown error" when the response carried none.
	Msg string
	// Data holds any payload the platform attached to the failure.
	Data json.RawMessage
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("API error %d: %s", int64(e.Code), e.Msg)
	}
	return fmt.Sprintf("API error %d: %s", int64(e.Code), e.Code.Description())
}

// CustodyError implements the CustodyError interface.
func (e *APIError) CustodyError() {}

// NetworkError represents a transport-level failure: the request never
// produced a well-formed platform response.
type NetworkError struct {
	URL        string
	StatusCode int    // zero when the request did not complete
	Body       string // raw response body for non-2xx statuses
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network error: %v", e.Err)
	}
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// CustodyError implements the CustodyError interface.
func (e *NetworkError) CustodyError() {}

// ValidationError reports a request parameter rejected before any
// network traffic.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// CustodyError implements the CustodyError interface.
func (e *ValidationError) CustodyError() {}
