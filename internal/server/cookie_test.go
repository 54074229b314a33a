package server

import (
	"encoding/base64"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coopcredit/pkg/types"
)

func TestCookieKeysConfigured(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	hash := make([]byte, 32)
	block := make([]byte, 32)
	for i := range hash {
		hash[i] = byte(i)
		block[i] = byte(255 - i)
	}

	config := &types.Config{
		CookieHashKey:  base64.StdEncoding.EncodeToString(hash),
		CookieBlockKey: base64.StdEncoding.EncodeToString(block),
	}

	gotHash, gotBlock := cookieKeys(config, logger)
	assert.Equal(t, hash, gotHash)
	assert.Equal(t, block, gotBlock)
}

func TestCookieKeysUnset(t *testing.T) {
	logger, hook := test.NewNullLogger()

	hash, block := cookieKeys(&types.Config{}, logger)

	assert.Len(t, hash, 32)
	assert.Len(t, block, 32)
	assert.NotEqual(t, hash, block)
	assert.Empty(t, hook.Entries, "missing keys are an accepted default, not a warning")
}

func TestCookieKeysMalformed(t *testing.T) {
	logger, hook := test.NewNullLogger()

	config := &types.Config{
		CookieHashKey:  "%%% not base64 %%%",
		CookieBlockKey: "also not base64!",
	}

	hash, block := cookieKeys(config, logger)

	// still usable keys, but the operator gets told
	assert.Len(t, hash, 32)
	assert.Len(t, block, 32)

	require.Len(t, hook.Entries, 2)
	for _, e := range hook.Entries {
		assert.Equal(t, logrus.WarnLevel, e.Level)
	}
	assert.Equal(t, "COOKIE_HASH_KEY", hook.Entries[0].Data["key"])
	assert.Equal(t, "COOKIE_BLOCK_KEY", hook.Entries[1].Data["key"])
}
