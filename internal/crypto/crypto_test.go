package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(seed byte) string {
	key := make([]byte, 32)
	for i := range key {
		key[i] = seed + byte(i)
	}
	return base64.StdEncoding.EncodeToString(key)
}

func TestNewCipherRejectsBadKeys(t *testing.T) {
	_, err := NewCipher("not base64!!")
	assert.Error(t, err)

	short := base64.StdEncoding.EncodeToString([]byte("too short"))
	_, err = NewCipher(short)
	assert.Error(t, err)
}

func TestSealOpenRoundTrip(t *testing.T) {
	c, err := NewCipher(testKey(1))
	require.NoError(t, err)

	plaintext := `{"namaa_profile":{"name":"يا بطل"}}`
	sealed, err := c.Seal(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, sealed)

	opened, err := c.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestSealIsNonDeterministic(t *testing.T) {
	c, err := NewCipher(testKey(1))
	require.NoError(t, err)

	a, err := c.Seal("same input")
	require.NoError(t, err)
	b, err := c.Seal("same input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestOpenRejectsWrongKey(t *testing.T) {
	sealer, err := NewCipher(testKey(1))
	require.NoError(t, err)
	opener, err := NewCipher(testKey(2))
	require.NoError(t, err)

	sealed, err := sealer.Seal("secret")
	require.NoError(t, err)
	_, err = opener.Open(sealed)
	assert.Error(t, err)
}

func TestOpenRejectsTamperedCiphertext(t *testing.T) {
	c, err := NewCipher(testKey(1))
	require.NoError(t, err)

	sealed, err := c.Seal("secret")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	_, err = c.Open(base64.StdEncoding.EncodeToString(raw))
	assert.Error(t, err)
}

func TestOpenRejectsTruncatedPayload(t *testing.T) {
	c, err := NewCipher(testKey(1))
	require.NoError(t, err)

	_, err = c.Open(base64.StdEncoding.EncodeToString([]byte("tiny")))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "nonce"))
}
