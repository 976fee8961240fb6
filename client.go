package tradingpost

import (
	"context"
	"net/http"

	"github.com/viant/tradingpost/client"
	"github.com/viant/tradingpost/client/auth"
	"github.com/viant/tradingpost/client/auth/store"
	"github.com/viant/tradingpost/config"
	"go.uber.org/zap"
)

// ClientOptions defines optional collaborators of a client.
type ClientOptions struct {
	// Transport is the base HTTP transport for refresh and business calls
	Transport http.RoundTripper
	// Logger defaults to a no-op logger
	Logger *zap.Logger
	// Store replaces the file store built from config.CredentialsFile
	Store store.Store
}

// NewClient creates a trading-post client configured by cfg.
func NewClient(ctx context.Context, cfg *config.Config, options *ClientOptions) (*client.Client, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if options == nil {
		options = &ClientOptions{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	transport := options.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	credentials := options.Store
	if credentials == nil {
		credentials = store.NewFileStore(cfg.CredentialsFile)
	}
	if _, err := credentials.Load(ctx); err != nil {
		return nil, err
	}

	manager := auth.New(cfg.BaseURL, credentials,
		auth.WithHTTPClient(&http.Client{Transport: transport, Timeout: cfg.Timeout}),
		auth.WithExpiryMargin(cfg.ExpiryMargin),
		auth.WithLogger(logger.Named("session")),
	)
	return client.New(cfg.BaseURL, manager,
		client.WithTransport(transport),
		client.WithTimeout(cfg.Timeout),
		client.WithLogger(logger.Named("client")),
	)
}
