package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "testify-admin.yaml")
}

func TestMissingFileStartsEmpty(t *testing.T) {
	t.Parallel()

	s, err := NewStore(tempConfigPath(t))
	require.NoError(t, err)
	assert.Empty(t, s.Credential())
	assert.Empty(t, s.BaseURL())
}

func TestSaveCredentialRoundTrip(t *testing.T) {
	t.Parallel()

	path := tempConfigPath(t)

	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveCredential("s3cret"))

	// A fresh store simulates the next process start.
	reopened, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", reopened.Credential())
}

func TestEmptyCredentialNeverOverwrites(t *testing.T) {
	t.Parallel()

	path := tempConfigPath(t)

	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveCredential("keep-me"))
	require.NoError(t, s.SaveCredential(""))

	assert.Equal(t, "keep-me", s.Credential())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, "keep-me", reopened.Credential())
}

func TestSaveBaseURL(t *testing.T) {
	t.Parallel()

	path := tempConfigPath(t)

	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveBaseURL("https://staging.example.com"))

	reopened, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", reopened.BaseURL())
}

func TestCredentialStoredUnderFixedKey(t *testing.T) {
	t.Parallel()

	path := tempConfigPath(t)

	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveCredential("s3cret"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "ta_admin_pwd")
}
