package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, primaryStatus int, primaryBody, page string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/profiles/v1/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(primaryStatus)
		_, _ = w.Write([]byte(primaryBody))
	})
	mux.HandleFunc("/user/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLookup_TextOutput(t *testing.T) {
	srv := newBackend(t, http.StatusNotFound, "", `"username":"oy.r","displayName":"Oy R","accountId":999`)

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"oy.r", "--api-url", srv.URL, "--site-url", srv.URL})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Source:       rec.net fallback")
	assert.Contains(t, out.String(), "Display name: Oy R")
	assert.Contains(t, out.String(), "Account ID:   999")
	assert.Contains(t, out.String(), "Username:     oy.r")
}

func TestLookup_JSONOutput(t *testing.T) {
	srv := newBackend(t, http.StatusOK, `{"level":7,"platform":"PC"}`, "")

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"someone", "--json", "--api-url", srv.URL, "--site-url", srv.URL})

	require.NoError(t, cmd.Execute())

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "resolved", got["outcome"])
	profile, ok := got["profile"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(7), profile["level"])
	assert.Equal(t, "PC", profile["platform"])
}

func TestLookup_NotFound(t *testing.T) {
	srv := newBackend(t, http.StatusInternalServerError, "", "<html></html>")

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"ghost", "--api-url", srv.URL, "--site-url", srv.URL})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Player not found\n", out.String())
}

func TestLookup_TransportErrorFails(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"ghost", "--api-url", "http://127.0.0.1:1", "--site-url", "http://127.0.0.1:1"})

	assert.Error(t, cmd.Execute())
	assert.Contains(t, out.String(), "Error: primary request")
}

func TestLookup_RequiresUsername(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}
