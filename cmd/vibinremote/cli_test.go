package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/vibinremote/pkg/capture"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(t.Context(), args, strings.NewReader(stdin), &stdout, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCLI_NoConfigFile(t *testing.T) {
	res := runCLI(t, "")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, `required flag(s) "config" not set`)
}

func TestCLI_ConfigFileDoesNotExist(t *testing.T) {
	res := runCLI(t, "", "--config", "does/not/exist.json")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "Could not load config data")
	assert.Contains(t, res.stderr, "no such file or directory")
}

func TestCLI_ConfigFileContainsInvalidJSON(t *testing.T) {
	path := writeConfig(t, "test.json", "this is not JSON")

	res := runCLI(t, "", "--config", path)
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "Could not parse config data")
}

func TestCLI_InvalidKeyName(t *testing.T) {
	path := writeConfig(t, "test.json", `{"vibin": "h", "keymap": {"Banana": {"url": "/x"}}}`)

	res := runCLI(t, "", "run", "--config", path)
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "Provided key name was invalid: Banana")
	assert.Contains(t, res.stderr, "level=ERROR")
}

func TestCLI_AliasKeyNameSuggestsKey(t *testing.T) {
	path := writeConfig(t, "test.json", `{"vibin": "h", "keymap": {"PgUp": {"url": "/x"}}}`)

	res := runCLI(t, "", "validate", "--config", path)
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "Provided key name was invalid: PgUp (did you mean PageUp?)")
}

func TestCLI_InvalidLogLevel(t *testing.T) {
	res := runCLI(t, "", "version", "--log-level", "loud")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "invalid log level")
}

func TestCLI_RunWithScriptedEvents(t *testing.T) {
	var mu sync.Mutex
	var hits []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits = append(hits, r.Method+" "+r.URL.Path)
		mu.Unlock()
	}))
	defer srv.Close()

	path := writeConfig(t, "vibin.yaml", "vibin: "+strings.TrimPrefix(srv.URL, "http://")+`
request_timeout: 1
keymap:
  PageUp:
    url: /x
`)

	res := runCLI(t, "press PageUp\nrelease PageUp\nrelease PageDown\n", "--config", path, "--events", "-")
	require.NoError(t, res.err, res.stderr)

	mu.Lock()
	assert.Equal(t, []string{"POST /x"}, hits)
	mu.Unlock()

	assert.Contains(t, res.stderr, "Registered keys for intercept")
	assert.NotContains(t, res.stderr, "level=ERROR")
}

func TestCLI_CaptureFailureLoggedOnce(t *testing.T) {
	path := writeConfig(t, "test.json", `{"vibin": "h", "keymap": {"PageUp": {"url": "/x"}}}`)

	res := runCLI(t, "release PageUp now\n", "--config", path, "--events", "-")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, capture.ErrCaptureTerminated)
	assert.Equal(t, 1, strings.Count(res.stderr, "level=ERROR"), res.stderr)
	assert.Equal(t, 1, strings.Count(res.stderr, "Keypress listener error"), res.stderr)
}

func TestCLI_RunEventsFileMissing(t *testing.T) {
	path := writeConfig(t, "test.json", `{"vibin": "h", "keymap": {}}`)

	res := runCLI(t, "", "run", "--config", path, "--events", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "could not open key script")
}

func TestCLI_Validate(t *testing.T) {
	path := writeConfig(t, "test.json", `{"vibin": "vibin.local", "keymap": {"PageUp": {"url": "/up"}, "PageDown": {"url": "/down"}}}`)

	res := runCLI(t, "", "validate", "--config", path)
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "| PageUp | http://vibin.local/up |")
	assert.Contains(t, res.stdout, "| PageDown | http://vibin.local/down |")
	assert.Contains(t, res.stderr, "Configuration is valid")
}

func TestCLI_Keys(t *testing.T) {
	res := runCLI(t, "", "keys")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "- PageUp\n")
	assert.Contains(t, res.stdout, "| Enter | Return |")
	assert.NotContains(t, res.stdout, "- Enter\n")
}

func TestCLI_Version(t *testing.T) {
	res := runCLI(t, "", "version")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "vibinremote version "))
}
