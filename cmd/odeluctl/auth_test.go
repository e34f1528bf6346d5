package main

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedKeyPath(t *testing.T) string {
	t.Helper()
	dir, err := os.UserConfigDir()
	require.NoError(t, err)
	return filepath.Join(dir, "odelu", "api_key")
}

func TestLogin_StoresVerifiedKey(t *testing.T) {
	isolateConfigDir(t)

	var sentKey string
	srv := newMockServer(t).
		ExpectPath("/api/admin/users").
		ExpectGET().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			sentKey = r.Header.Get("x-api-key")
			respondJSON(t, w, listBody([]any{}, 0))
		}).
		Build()
	defer srv.Close()
	defer withServerURL(srv.URL)()

	cmd := testCmd(t, nil, nil)
	require.NoError(t, runLogin(cmd, []string{"the-admin-key"}))
	assert.Equal(t, "the-admin-key", sentKey)

	data, err := os.ReadFile(storedKeyPath(t))
	require.NoError(t, err)
	assert.Equal(t, "the-admin-key\n", string(data))
}

func TestLogin_RejectedKeyNotStored(t *testing.T) {
	isolateConfigDir(t)

	srv := newMockServer(t).
		RespondError(http.StatusUnauthorized, "Unauthorized").
		Build()
	defer srv.Close()
	defer withServerURL(srv.URL)()

	cmd := testCmd(t, nil, nil)
	err := runLogin(cmd, []string{"wrong-key"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")

	_, statErr := os.Stat(storedKeyPath(t))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLogout_ClearsStoredKey(t *testing.T) {
	isolateConfigDir(t)

	path := storedKeyPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("stale-key\n"), 0o600))

	cmd := testCmd(t, nil, nil)
	require.NoError(t, runLogout(cmd, nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStatus_NoStoredKey(t *testing.T) {
	isolateConfigDir(t)
	defer withServerURL("http://localhost:1")()

	// Without a stored key status settles without a network call.
	cmd := testCmd(t, nil, nil)
	require.NoError(t, runStatus(cmd, nil))
}
