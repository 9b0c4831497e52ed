package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duogito/internal/domain"
)

// runCmd executes the root command in-process against a temporary
// configuration directory and returns stdout.
func runCmd(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("DUOGITO_DEBUG", "")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config-dir", dir}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestRoot_Welcome(t *testing.T) {
	dir := t.TempDir()

	out, err := runCmd(t, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Duogito へようこそ！")
	assert.Contains(t, out, "duogito check octocat")

	_, err = runCmd(t, dir, "config", "set", "display.language", "en")
	require.NoError(t, err)

	out, err = runCmd(t, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to Duogito!")
}

func TestRoot_Version(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		out, err := runCmd(t, t.TempDir(), flag)
		require.NoError(t, err)
		assert.Equal(t, Version+"\n", out)
	}
}

func TestRoot_UnknownCommand(t *testing.T) {
	_, err := runCmd(t, t.TempDir(), "streaks")
	assert.Error(t, err)
}

func TestRoot_ConfigDirFromEnvironment(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "from-env")
	t.Setenv("NO_COLOR", "1")
	t.Setenv("DUOGITO_CONFIG_DIR", dir)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"config", "path"})
	require.NoError(t, root.Execute())

	assert.Equal(t, filepath.Join(dir, "config.json")+"\n", out.String())
}

func TestCheck(t *testing.T) {
	t.Run("uses stored display settings", func(t *testing.T) {
		dir := t.TempDir()
		_, err := runCmd(t, dir, "config", "set", "display.language", "en")
		require.NoError(t, err)

		out, err := runCmd(t, dir, "check", "octocat")
		require.NoError(t, err)
		assert.Equal(t, "🔍 Checking contribution streak for: octocat\n"+
			"📊 Output format: text\n"+
			"🚧 This feature is not implemented yet.\n", out)
	})

	t.Run("json flag", func(t *testing.T) {
		out, err := runCmd(t, t.TempDir(), "check", "octocat", "-f", "json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"username":"octocat","format":"json","status":"not_implemented"}`, out)
	})

	t.Run("json from config", func(t *testing.T) {
		dir := t.TempDir()
		_, err := runCmd(t, dir, "config", "set", "display.format", "json")
		require.NoError(t, err)

		out, err := runCmd(t, dir, "check", "octocat")
		require.NoError(t, err)
		assert.JSONEq(t, `{"username":"octocat","format":"json","status":"not_implemented"}`, out)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := runCmd(t, t.TempDir(), "check", "octocat", "--format", "xml")
		assert.ErrorContains(t, err, `invalid format "xml"`)
	})

	t.Run("requires username", func(t *testing.T) {
		_, err := runCmd(t, t.TempDir(), "check")
		assert.Error(t, err)
	})
}

func TestConfig_Show(t *testing.T) {
	dir := t.TempDir()

	out, err := runCmd(t, dir, "config")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "config.json"))
	assert.Contains(t, out, "display.language")

	out, err = runCmd(t, dir, "config", "show", "-f", "json")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, map[string]any{"language": "ja", "colorOutput": true, "format": "text"}, doc["display"])
	assert.NotContains(t, doc, "github")
}

func TestConfig_ShowEnvironmentToken(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NO_COLOR", "1")
	t.Setenv("GITHUB_TOKEN", "ghp_fromenv9876")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--config-dir", dir, "config", "show", "--format", "json"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "9876")
	assert.NotContains(t, out.String(), "ghp_fromenv")

	// Never persisted
	_, err := os.Stat(filepath.Join(dir, "config.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestConfig_SetAndGet(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		key, value, want string
	}{
		{"github.username", "u1", "u1"},
		{"github.token", "ghp_abcdefgh", "********efgh"},
		{"display.colorOutput", "false", "false"},
		{"cache.enabled", "false", "false"},
		{"cache.ttl", "30", "30"},
		{"display.format", "text", "text"},
		{"display.language", "en", "en"},
	}
	for _, tc := range cases {
		out, err := runCmd(t, dir, "config", "set", tc.key, tc.value)
		require.NoError(t, err, tc.key)
		assert.Contains(t, out, tc.key)

		out, err = runCmd(t, dir, "config", "get", tc.key)
		require.NoError(t, err, tc.key)
		assert.Equal(t, tc.want+"\n", out, tc.key)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"github": {"username": "u1", "token": "ghp_abcdefgh"},
		"display": {"language": "en", "colorOutput": false, "format": "text"},
		"cache": {"enabled": false, "ttl": 30}
	}`, string(data))
	assert.True(t, strings.HasPrefix(string(data), "{\n  \""))
}

func TestConfig_SetErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := runCmd(t, dir, "config", "set", "display.language", "fr")
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.Equal(t, "display.language", verr.Field)

	_, err = runCmd(t, dir, "config", "set", "--", "cache.ttl", "-5")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "cache.ttl", verr.Field)

	for _, ttl := range []string{"NaN", "Inf", "+Inf"} {
		_, err = runCmd(t, dir, "config", "set", "cache.ttl", ttl)
		require.True(t, errors.As(err, &verr), "expected ValidationError for %s, got %v", ttl, err)
		assert.Equal(t, "cache.ttl", verr.Field)
	}
	_, err = os.Stat(filepath.Join(dir, "config.json"))
	assert.True(t, os.IsNotExist(err))

	_, err = runCmd(t, dir, "config", "set", "cache.ttl", "soon")
	assert.ErrorContains(t, err, "cache.ttl must be a number")

	_, err = runCmd(t, dir, "config", "set", "cache.enabled", "maybe")
	assert.ErrorContains(t, err, "cache.enabled must be true or false")

	_, err = runCmd(t, dir, "config", "set", "display.theme", "dark")
	assert.ErrorContains(t, err, `unknown config key "display.theme"`)

	_, err = runCmd(t, dir, "config", "get", "nope")
	assert.Error(t, err)
}

func TestConfig_SetFileError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := runCmd(t, filepath.Join(blocker, "duogito"), "config", "set", "github.username", "u1")

	var ferr *domain.FileAccessError
	assert.True(t, errors.As(err, &ferr), "expected FileAccessError, got %v", err)
}

func TestConfig_Reset(t *testing.T) {
	dir := t.TempDir()
	_, err := runCmd(t, dir, "config", "set", "display.language", "en")
	require.NoError(t, err)

	out, err := runCmd(t, dir, "config", "reset")
	require.NoError(t, err)
	// Rendered with the restored default language
	assert.Contains(t, out, "設定を初期値に戻しました")

	out, err = runCmd(t, dir, "config", "get", "display.language")
	require.NoError(t, err)
	assert.Equal(t, "ja\n", out)
}

func TestConfig_Path(t *testing.T) {
	dir := t.TempDir()

	out, err := runCmd(t, dir, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.json")+"\n", out)
}

func TestConfigKeyNames(t *testing.T) {
	assert.Equal(t, []string{
		"cache.enabled", "cache.ttl",
		"display.colorOutput", "display.format", "display.language",
		"github.token", "github.username",
	}, configKeyNames())
}
