// Package api implements the encrypted request pipeline shared by the
// MPC and WaaS products.
//
// Every call follows the same shape: merge the endpoint parameters with
// the common time and charset fields, serialize to JSON, encrypt with
// the merchant private key, and transmit only {app_id, data} as a form
// body (or query string for GET). Responses come back as a
// {code, msg, data} envelope whose data field is usually an encrypted
// string; when it is, the decrypted JSON replaces the envelope
// wholesale. Platform error responses are sent in the clear, so decrypt
// failures at that stage fall back to the raw envelope rather than
// failing the call.
//
// Nothing in this package retries. Transport and status failures are
// surfaced as *custody.NetworkError and left to the caller's policy.
package api
