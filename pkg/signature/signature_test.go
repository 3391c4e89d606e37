package signature_test

import (
	"atsconnect/pkg/signature"
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSign_KnownVector(t *testing.T) {
	// RFC 4231 test case 2
	got := signature.Sign([]byte("what do ya want for nothing?"), "Jefe")
	require.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", got)
}

func TestSignVerify_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2)) //nolint: gosec

	for range 200 {
		payload := make([]byte, 1+r.IntN(256))
		for i := range payload {
			payload[i] = byte(r.IntN(256))
		}
		secret := make([]byte, 1+r.IntN(64))
		for i := range secret {
			secret[i] = byte('a' + r.IntN(26))
		}

		sig := signature.Sign(payload, string(secret))
		require.Equal(t, sig, signature.Sign(payload, string(secret)), "sign must be deterministic")
		require.True(t, signature.Verify(payload, string(secret), sig))

		mutated := append([]byte(nil), payload...)
		idx := r.IntN(len(mutated))
		mutated[idx] ^= byte(1 + r.IntN(255))
		require.False(t, signature.Verify(mutated, string(secret), sig), "payload mutation must fail")

		badSecret := append([]byte(nil), secret...)
		badSecret[r.IntN(len(badSecret))] ^= 0x01
		require.False(t, signature.Verify(payload, string(badSecret), sig), "secret mutation must fail")
	}
}

func TestVerify_EmptySignature(t *testing.T) {
	require.False(t, signature.Verify([]byte("{}"), "secret", ""))
}

func TestCanonical(t *testing.T) {
	cases := []struct {
		name string
		in   any
		out  string
	}{
		{
			name: "map keys sorted",
			in:   map[string]any{"b": 1, "a": "x"},
			out:  `{"a":"x","b":1}`,
		},
		{
			name: "raw json is normalized",
			in:   json.RawMessage(`{ "id" : "A1",  "nested": {"z": true, "a": null} }`),
			out:  `{"id":"A1","nested":{"a":null,"z":true}}`,
		},
		{
			name: "numbers keep precision",
			in:   []byte(`{"n": 12345678901234567890}`),
			out:  `{"n":12345678901234567890}`,
		},
		{
			name: "html is not escaped",
			in:   map[string]string{"html": "<b>&</b>"},
			out:  `{"html":"<b>&</b>"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := signature.Canonical(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.out, string(got))
		})
	}
}

func TestCanonical_InvalidJSON(t *testing.T) {
	for _, raw := range []string{
		`{"a":`,
		`{"a":1}garbage`,
		`{"a":1} {"b":2}`,
		``,
	} {
		_, err := signature.Canonical(json.RawMessage(raw))
		require.Error(t, err, raw)
	}

	// surrounding whitespace is not trailing data
	b, err := signature.Canonical(json.RawMessage(" {\"a\":1}\n"))
	require.NoError(t, err)
	require.Equal(t, `{"a":1}`, string(b))
}

func TestCanonical_SameLogicalPayloadSameSignature(t *testing.T) {
	a, err := signature.Canonical(json.RawMessage(`{"id":"A1","stage":"hired"}`))
	require.NoError(t, err)
	b, err := signature.Canonical(map[string]string{"stage": "hired", "id": "A1"})
	require.NoError(t, err)

	require.Equal(t, signature.Sign(a, "s"), signature.Sign(b, "s"))
}
