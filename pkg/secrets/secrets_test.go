package secrets_test

import (
	"atsconnect/pkg/secrets"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAESGCM_RoundTrip(t *testing.T) {
	s, err := secrets.NewAESGCM("test-encryption-secret")
	require.NoError(t, err)

	sealed, err := s.Seal([]byte(`{"api_key":"k"}`))
	require.NoError(t, err)
	require.NotContains(t, string(sealed), "api_key")

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	require.JSONEq(t, `{"api_key":"k"}`, string(opened))
}

func TestAESGCM_NonceIsRandom(t *testing.T) {
	s, err := secrets.NewAESGCM("test-encryption-secret")
	require.NoError(t, err)

	a, err := s.Seal([]byte("same"))
	require.NoError(t, err)
	b, err := s.Seal([]byte("same"))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestAESGCM_WrongKeyFails(t *testing.T) {
	s1, err := secrets.NewAESGCM("key-one")
	require.NoError(t, err)
	s2, err := secrets.NewAESGCM("key-two")
	require.NoError(t, err)

	sealed, err := s1.Seal([]byte("payload"))
	require.NoError(t, err)

	_, err = s2.Open(sealed)
	require.Error(t, err)
}

func TestAESGCM_TamperedFails(t *testing.T) {
	s, err := secrets.NewAESGCM("key")
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("payload"))
	require.NoError(t, err)
	sealed[len(sealed)-1] ^= 0xff

	_, err = s.Open(sealed)
	require.Error(t, err)
}

func TestAESGCM_ShortCiphertext(t *testing.T) {
	s, err := secrets.NewAESGCM("key")
	require.NoError(t, err)

	_, err = s.Open([]byte{1, 2, 3})
	require.ErrorIs(t, err, secrets.ErrCiphertextTooShort)
}

func TestNewAESGCM_EmptySecret(t *testing.T) {
	_, err := secrets.NewAESGCM("")
	require.ErrorIs(t, err, secrets.ErrNotConfigured)
}

func TestGenerateSecret(t *testing.T) {
	a, err := secrets.GenerateSecret(32)
	require.NoError(t, err)
	require.Len(t, a, 64)

	b, err := secrets.GenerateSecret(32)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
