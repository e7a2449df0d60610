package auth

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenGenerator_Generate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	gen := newResetTokenGenerator(10*time.Minute, fixedClock(now))

	token, err := gen.Generate()
	require.NoError(t, err)

	raw, err := hex.DecodeString(token.Plain)
	require.NoError(t, err)
	assert.Len(t, raw, resetTokenBytes)
	assert.Len(t, token.Hash, 64)
	assert.NotEqual(t, token.Plain, token.Hash)
	assert.Equal(t, gen.HashToken(token.Plain), token.Hash)
	assert.Equal(t, now.Add(10*time.Minute), token.ExpiresAt)

	again, err := gen.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, token.Plain, again.Plain)
}

func TestResetTokenGenerator_HashToken(t *testing.T) {
	gen := newResetTokenGenerator(time.Minute, time.Now)

	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", gen.HashToken("abc"))
}

func TestResetTokenGenerator_Matches(t *testing.T) {
	gen := newResetTokenGenerator(time.Minute, time.Now)

	token, err := gen.Generate()
	require.NoError(t, err)

	assert.True(t, gen.Matches(token.Plain, token.Hash))
	assert.False(t, gen.Matches(token.Plain+"0", token.Hash))
	assert.False(t, gen.Matches("", token.Hash))
}
