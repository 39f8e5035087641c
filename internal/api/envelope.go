package api

import (
	"bytes"
	"encoding/json"
	"strconv"
)

var nullLiteral = []byte("null")

// Envelope is the platform's wire response: a result code, a message,
// and a payload. Code and Msg stay raw because the platform emits them
// as strings on some endpoints and as numbers on others.
type Envelope struct {
	Code json.RawMessage `json:"code"`
	Msg  json.RawMessage `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// ResultCode returns the numeric result code. Anything unparseable,
// including a missing or null code, comes back as -1 so it can never be
// mistaken for success.
func (e *Envelope) ResultCode() int64 {
	raw := bytes.TrimSpace(e.Code)
	if len(raw) == 0 || bytes.Equal(raw, nullLiteral) {
		return -1
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return -1
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return -1
		}
		return n
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return -1
	}
	return n
}

// CodeString returns the code exactly as sent when it is a JSON string.
// The wallet show-status endpoint compares the literal text instead of
// parsing it.
func (e *Envelope) CodeString() (string, bool) {
	return rawString(e.Code)
}

// Message returns the platform's message, or "Unknown error" when the
// envelope carries none or carries a non-string.
func (e *Envelope) Message() string {
	s, ok := rawString(e.Msg)
	if !ok {
		return "Unknown error"
	}
	return s
}

// DataString extracts the data field when it is a JSON string, which on
// the wire means it is still encrypted.
func (e *Envelope) DataString() (string, bool) {
	return rawString(e.Data)
}

// HasData reports whether the envelope carries a non-null payload.
func (e *Envelope) HasData() bool {
	raw := bytes.TrimSpace(e.Data)
	return len(raw) > 0 && !bytes.Equal(raw, nullLiteral)
}

func rawString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
