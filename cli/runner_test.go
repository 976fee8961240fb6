package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tradingpost/client/auth/mock"
	"github.com/viant/tradingpost/schema"
)

func credentialsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_Commands(t *testing.T) {
	var testCases = []struct {
		description string
		args        []string
		path        string
		expect      map[string]interface{}
	}{
		{
			description: "user",
			args:        []string{"user"},
			path:        schema.ProfilePath,
			expect:      map[string]interface{}{"name": "Test User"},
		},
		{
			description: "buy with quantity",
			args:        []string{"buy", "--quantity", "100", "GOOG"},
			path:        schema.BuyOrdersPath,
			expect:      map[string]interface{}{"side": "buy", "ticker": "GOOG", "quantity": float64(100)},
		},
		{
			description: "sell with default quantity",
			args:        []string{"sell", "AAPL"},
			path:        schema.SellOrdersPath,
			expect:      map[string]interface{}{"side": "sell", "ticker": "AAPL", "quantity": float64(1)},
		},
	}

	for _, testCase := range testCases {
		server := mock.NewServer("r1")
		path := credentialsFile(t, `{"refresh_token":"r1"}`)
		stdout := &bytes.Buffer{}
		args := append([]string{"--base-url", server.URL, "-c", path}, testCase.args...)

		err := Run(context.Background(), args, stdout)
		require.NoError(t, err, testCase.description)
		assert.True(t, strings.HasPrefix(stdout.String(), "{\n  \""), "output is indented: "+testCase.description)

		var output map[string]interface{}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &output), testCase.description)
		for k, v := range testCase.expect {
			assert.Equal(t, v, output[k], testCase.description+" "+k)
		}
		assert.Equal(t, 1, server.Calls(schema.TokenPath), testCase.description)
		assert.Equal(t, 1, server.Calls(testCase.path), testCase.description)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"access_token"`, testCase.description)
		server.Close()
	}
}

func TestRun_ConfigErrorBeforeNetwork(t *testing.T) {
	server := mock.NewServer("r1")
	defer server.Close()

	var testCases = []struct {
		description string
		path        string
	}{
		{description: "missing refresh token", path: credentialsFile(t, `{"access_token":"a1"}`)},
		{description: "invalid JSON", path: credentialsFile(t, `{`)},
		{description: "missing file", path: filepath.Join(t.TempDir(), "none.json")},
	}
	for _, testCase := range testCases {
		err := Run(context.Background(), []string{"-b", server.URL, "-c", testCase.path, "user"}, &bytes.Buffer{})
		var configErr *schema.ConfigError
		assert.True(t, errors.As(err, &configErr), testCase.description)
	}
	assert.Equal(t, 0, server.TotalCalls())
}

func TestRun_UsageErrors(t *testing.T) {
	server := mock.NewServer("r1")
	defer server.Close()
	path := credentialsFile(t, `{"refresh_token":"r1"}`)

	err := Run(context.Background(), []string{"-b", server.URL, "-c", path}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "missing a <command>")

	err = Run(context.Background(), []string{"-b", server.URL, "-c", path, "buy"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "<TICKER>")

	err = Run(context.Background(), []string{"-b", server.URL, "-c", path, "sell", "-q", "0", "GOOG"}, &bytes.Buffer{})
	assert.Error(t, err)

	err = Run(context.Background(), []string{"-b", server.URL, "-c", path, "transfer"}, &bytes.Buffer{})
	assert.Error(t, err)

	assert.Equal(t, 0, server.TotalCalls())
}

func TestRun_RefreshRejected(t *testing.T) {
	server := mock.NewServer("another")
	defer server.Close()
	path := credentialsFile(t, `{"refresh_token":"r1"}`)

	stdout := &bytes.Buffer{}
	err := Run(context.Background(), []string{"-b", server.URL, "-c", path, "user"}, stdout)
	var authErr *schema.AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, 401, authErr.StatusCode)
	assert.Equal(t, 0, stdout.Len())
	assert.Equal(t, 0, server.Calls(schema.ProfilePath))
}

func TestRun_VersionAndHelp(t *testing.T) {
	stdout := &bytes.Buffer{}
	require.NoError(t, Run(context.Background(), []string{"--version"}, stdout))
	assert.Equal(t, Version+"\n", stdout.String())

	stdout.Reset()
	require.NoError(t, Run(context.Background(), []string{"--help"}, stdout))
	assert.Contains(t, stdout.String(), "credentials-file")
	assert.Contains(t, stdout.String(), "buy")

	stdout.Reset()
	require.NoError(t, Run(context.Background(), []string{"sell", "--help"}, stdout))
	assert.Contains(t, stdout.String(), "quantity")
}

func TestRun_EnvironmentDefaults(t *testing.T) {
	server := mock.NewServer("r1")
	defer server.Close()
	t.Setenv("TRADING_POST_BASE_URL", server.URL)
	t.Setenv("TRADING_POST_CREDENTIALS_FILE", credentialsFile(t, `{"refresh_token":"r1"}`))

	stdout := &bytes.Buffer{}
	require.NoError(t, Run(context.Background(), []string{"user"}, stdout))
	assert.Equal(t, 1, server.Calls(schema.ProfilePath))
}

func TestRun_ReusesTokenNearExpiry(t *testing.T) {
	server := mock.NewServer("r1")
	defer server.Close()
	cached, err := server.CreateJWT(5 * time.Second)
	require.NoError(t, err)
	path := credentialsFile(t, `{"refresh_token":"r1","access_token":"`+cached+`"}`)

	stdout := &bytes.Buffer{}
	require.NoError(t, Run(context.Background(), []string{"-b", server.URL, "-c", path, "user"}, stdout))
	assert.Equal(t, 0, server.Calls(schema.TokenPath))
	assert.Equal(t, 1, server.Calls(schema.ProfilePath))
	require.Len(t, server.Requests(schema.ProfilePath), 1)
	assert.Equal(t, "Bearer "+cached, server.Requests(schema.ProfilePath)[0].Authorization)
}
