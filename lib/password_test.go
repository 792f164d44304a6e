package lib

import (
	"encoding/base64"
	"fmt"
	"testing"

	"golang.org/x/crypto/argon2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeHash(memory, timeCost uint32, threads uint8, salt, hash []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memory, timeCost, threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
}

func TestDecodeArgon2Hash(t *testing.T) {
	salt := []byte("sixteen-bytes!!!")
	hash := argon2.IDKey([]byte("correct horse"), salt, 1, 64*1024, 4, 32)

	parts, err := DecodeArgon2Hash(encodeHash(64*1024, 1, 4, salt, hash))
	require.NoError(t, err)

	assert.Equal(t, uint32(64*1024), parts.Memory)
	assert.Equal(t, uint32(1), parts.Time)
	assert.Equal(t, uint8(4), parts.Threads)
	assert.Equal(t, uint32(32), parts.KeyLen)
	assert.Equal(t, salt, parts.Salt)
	assert.Equal(t, hash, parts.Hash)
}

func TestDecodeArgon2HashRejectsGarbage(t *testing.T) {
	_, err := DecodeArgon2Hash("not a hash")
	assert.ErrorIs(t, err, ErrInvalidHash)

	_, err = DecodeArgon2Hash("$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestDecodeArgon2HashRejectsWrongVersion(t *testing.T) {
	encoded := "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA"
	_, err := DecodeArgon2Hash(encoded)
	assert.ErrorIs(t, err, ErrIncompatibleVersion)
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare([]byte("abc"), []byte("abc")))
	assert.False(t, SecureCompare([]byte("abc"), []byte("abd")))
	assert.False(t, SecureCompare([]byte("abc"), []byte("abcd")))
}
