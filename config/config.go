package config

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/viant/tradingpost/client/auth"
	"github.com/viant/tradingpost/schema"
)

const (
	EnvBaseURL         = "TRADING_POST_BASE_URL"
	EnvCredentialsFile = "TRADING_POST_CREDENTIALS_FILE"
	EnvTimeout         = "TRADING_POST_TIMEOUT"
	EnvExpiryMargin    = "TRADING_POST_EXPIRY_MARGIN"
	EnvLogLevel        = "TRADING_POST_LOG_LEVEL"
	EnvEnv             = "TRADING_POST_ENV"

	DefaultBaseURL         = "https://trading-post.club"
	DefaultCredentialsFile = "./credentials.json"
	DefaultLogLevel        = "warn"
	DefaultEnv             = "prod"
)

// Config holds the runtime configuration; the tags bind the global CLI options.
type Config struct {
	BaseURL         string        `json:"baseURL,omitempty" short:"b" long:"base-url" env:"TRADING_POST_BASE_URL" default:"https://trading-post.club" description:"URL where the trading-post API can be found"`
	CredentialsFile string        `json:"credentialsFile,omitempty" short:"c" long:"credentials-file" env:"TRADING_POST_CREDENTIALS_FILE" default:"./credentials.json" description:"JSON file containing a refresh_token; access_token is retrieved and cached here automatically"`
	Timeout         time.Duration `json:"timeout,omitempty" long:"timeout" env:"TRADING_POST_TIMEOUT" default:"30s" description:"HTTP timeout per request"`
	ExpiryMargin    time.Duration `json:"expiryMargin,omitempty" long:"expiry-margin" env:"TRADING_POST_EXPIRY_MARGIN" default:"0s" description:"refresh access tokens expiring within this margin"`
	LogLevel        string        `json:"logLevel,omitempty" long:"log-level" env:"TRADING_POST_LOG_LEVEL" default:"warn" description:"log level (debug, info, warn, error)"`
	Env             string        `json:"env,omitempty" long:"env" env:"TRADING_POST_ENV" default:"prod" description:"logging environment (dev, prod)"`
}

// Default returns configuration populated from environment variables with defaults.
func Default() *Config {
	return &Config{
		BaseURL:         GetEnv(EnvBaseURL, DefaultBaseURL),
		CredentialsFile: GetEnv(EnvCredentialsFile, DefaultCredentialsFile),
		Timeout:         GetEnvDuration(EnvTimeout, auth.DefaultTimeout),
		ExpiryMargin:    GetEnvDuration(EnvExpiryMargin, auth.DefaultExpiryMargin),
		LogLevel:        GetEnv(EnvLogLevel, DefaultLogLevel),
		Env:             GetEnv(EnvEnv, DefaultEnv),
	}
}

// Validate checks required settings
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CredentialsFile) == "" {
		return schema.NewConfigError("", "missing required global option --credentials-file, -c", nil)
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		return schema.NewConfigError("", "missing required global option --base-url, -b", nil)
	}
	URL, err := url.Parse(c.BaseURL)
	if err != nil {
		return schema.NewConfigError(c.BaseURL, "invalid base URL", err)
	}
	if URL.Scheme != "http" && URL.Scheme != "https" {
		return schema.NewConfigError(c.BaseURL, "invalid base URL", errors.New("scheme must be http or https"))
	}
	if c.Timeout < 0 || c.ExpiryMargin < 0 {
		return schema.NewConfigError("", "durations must not be negative", nil)
	}
	return nil
}
