// Package signature signs and verifies webhook bodies with HMAC-SHA256.
//
// Outbound deliveries are signed over the canonical JSON encoding of their
// payload, and inbound provider callbacks are verified over the raw request
// body. Both sides carry the hex digest in the X-Webhook-Signature header.
package signature

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Header is the HTTP header carrying the hex encoded signature.
const Header = "X-Webhook-Signature"

// Sign returns the hex encoded HMAC-SHA256 of payload keyed by secret.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)

	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature is the signature of payload under secret.
// The comparison runs in constant time.
func Verify(payload []byte, secret, signature string) bool {
	if signature == "" {
		return false
	}

	return hmac.Equal([]byte(Sign(payload, secret)), []byte(signature))
}

// Canonical encodes v as compact JSON with object keys sorted and without
// HTML escaping, so the same logical payload always yields the same bytes.
// Raw JSON input (json.RawMessage or []byte) is re-encoded as well.
func Canonical(v any) ([]byte, error) {
	var raw []byte
	switch t := v.(type) {
	case json.RawMessage:
		raw = t
	case []byte:
		raw = t
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("could not marshal payload: %w", err)
		}
		raw = b
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("could not decode payload: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("could not decode payload: trailing data after JSON value")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(generic); err != nil {
		return nil, fmt.Errorf("could not encode payload: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
