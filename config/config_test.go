package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tradingpost/client/auth"
	"github.com/viant/tradingpost/schema"
)

func TestDefault(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvTimeout, "")
	t.Setenv(EnvCredentialsFile, "/tmp/creds.json")
	t.Setenv(EnvExpiryMargin, "not-a-duration")

	cfg := Default()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "/tmp/creds.json", cfg.CredentialsFile)
	assert.Equal(t, auth.DefaultTimeout, cfg.Timeout)
	assert.Equal(t, auth.DefaultExpiryMargin, cfg.ExpiryMargin)
}

func TestLoad(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TRADING_POST_TIMEOUT=5s\nTRADING_POST_BASE_URL=http://from-file\n"), 0o600))
	t.Setenv(EnvBaseURL, "http://from-env")
	t.Setenv(EnvTimeout, "")
	require.NoError(t, os.Unsetenv(EnvTimeout))

	Load(envFile, filepath.Join(t.TempDir(), "missing.env"))
	cfg := Default()
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "http://from-env", cfg.BaseURL, "existing variables win over the file")
}

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		config      Config
		expectErr   bool
	}{
		{description: "defaults", config: Config{BaseURL: DefaultBaseURL, CredentialsFile: DefaultCredentialsFile}},
		{description: "missing credentials", config: Config{BaseURL: DefaultBaseURL}, expectErr: true},
		{description: "missing base url", config: Config{CredentialsFile: "c.json"}, expectErr: true},
		{description: "bad scheme", config: Config{BaseURL: "ftp://host", CredentialsFile: "c.json"}, expectErr: true},
		{description: "negative timeout", config: Config{BaseURL: DefaultBaseURL, CredentialsFile: "c.json", Timeout: -time.Second}, expectErr: true},
	}
	for _, testCase := range testCases {
		err := testCase.config.Validate()
		if !testCase.expectErr {
			assert.NoError(t, err, testCase.description)
			continue
		}
		var configErr *schema.ConfigError
		assert.True(t, errors.As(err, &configErr), testCase.description)
	}
}
