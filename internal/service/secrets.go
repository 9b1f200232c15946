package service

import (
	"github.com/discordpilot/dashboard-server-go/internal/util"
)

// secretBox seals secrets for storage. With no encryption key configured
// it passes values through unchanged, matching the config warning emitted
// at startup.
type secretBox struct {
	key string
}

func newSecretBox(encryptionKey string) secretBox {
	return secretBox{key: encryptionKey}
}

func (b secretBox) seal(plaintext string) (string, error) {
	if b.key == "" {
		return plaintext, nil
	}
	return util.Encrypt(b.key, plaintext)
}

func (b secretBox) open(stored string) (string, error) {
	if b.key == "" {
		return stored, nil
	}
	return util.Decrypt(b.key, stored)
}
