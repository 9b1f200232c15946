package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt(t *testing.T) {
	t.Run("round trips a secret", func(t *testing.T) {
		encrypted, err := Encrypt("test-key", "discord-token-value")
		require.NoError(t, err)
		assert.NotEqual(t, "discord-token-value", encrypted)

		decrypted, err := Decrypt("test-key", encrypted)
		require.NoError(t, err)
		assert.Equal(t, "discord-token-value", decrypted)
	})

	t.Run("same plaintext encrypts differently each time", func(t *testing.T) {
		a, _ := Encrypt("test-key", "secret")
		b, _ := Encrypt("test-key", "secret")
		assert.NotEqual(t, a, b)
	})

	t.Run("wrong key fails to decrypt", func(t *testing.T) {
		encrypted, _ := Encrypt("test-key", "secret")
		_, err := Decrypt("other-key", encrypted)
		assert.Error(t, err)
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		_, err := Encrypt("", "secret")
		assert.Error(t, err)
		_, err = Decrypt("", "whatever")
		assert.Error(t, err)
	})

	t.Run("garbage ciphertext is rejected", func(t *testing.T) {
		_, err := Decrypt("test-key", "not-base64!!!")
		assert.Error(t, err)

		_, err = Decrypt("test-key", "c2hvcnQ=")
		assert.Error(t, err)
	})
}
