package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/viant/tradingpost/client/auth"
	authtransport "github.com/viant/tradingpost/client/auth/transport"
	"github.com/viant/tradingpost/schema"
	"go.uber.org/zap"
)

// Client represents a trading-post API client
type Client struct {
	baseURL   string
	session   *auth.Manager
	http      *http.Client
	transport http.RoundTripper
	timeout   time.Duration
	logger    *zap.Logger
}

// Session returns the session manager
func (c *Client) Session() *auth.Manager {
	return c.session
}

// User returns the profile of the authenticated user
func (c *Client) User(ctx context.Context) (json.RawMessage, error) {
	return c.AuthorizedRequest(ctx, http.MethodGet, schema.ProfilePath, nil, http.StatusOK)
}

// CreateBuyOrder places a buy order
func (c *Client) CreateBuyOrder(ctx context.Context, order *schema.OrderRequest) (json.RawMessage, error) {
	return c.createOrder(ctx, schema.BuyOrdersPath, order)
}

// CreateSellOrder places a sell order
func (c *Client) CreateSellOrder(ctx context.Context, order *schema.OrderRequest) (json.RawMessage, error) {
	return c.createOrder(ctx, schema.SellOrdersPath, order)
}

func (c *Client) createOrder(ctx context.Context, path string, order *schema.OrderRequest) (json.RawMessage, error) {
	if order == nil {
		return nil, errors.New("order was nil")
	}
	if err := order.Validate(); err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}
	return c.AuthorizedRequest(ctx, http.MethodPost, path, order, http.StatusCreated)
}

// AuthorizedRequest sends body as JSON with the bearer token and returns the JSON response
// when the status code equals expected. It is never retried, including on 401/403.
func (c *Client) AuthorizedRequest(ctx context.Context, method, path string, body interface{}, expected int) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}
	URL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, URL, reader)
	if err != nil {
		return nil, schema.NewConfigError(c.baseURL, "invalid base URL", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if sessionErr := asSessionError(err); sessionErr != nil {
			return nil, sessionErr
		}
		c.logger.Warn("client.http_failed", zap.String("method", method), zap.String("url", URL), zap.Error(err))
		return nil, schema.NewNetworkError(method, URL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, schema.NewNetworkError(method, URL, err)
	}
	elapsed := time.Since(start)

	if resp.StatusCode != expected {
		c.logger.Warn("client.unexpected_status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("expected", expected),
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", elapsed))
		return nil, schema.NewAPIError(method, path, expected, resp.StatusCode, data)
	}
	if len(bytes.TrimSpace(data)) == 0 || !json.Valid(data) {
		apiErr := schema.NewAPIError(method, path, expected, resp.StatusCode, data)
		apiErr.Err = errors.New("response is not valid JSON")
		return nil, apiErr
	}

	c.logger.Debug("client.http_success",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed))
	return json.RawMessage(data), nil
}

// asSessionError returns typed errors raised while acquiring the token, unwrapped from *url.Error
func asSessionError(err error) error {
	var configErr *schema.ConfigError
	if errors.As(err, &configErr) {
		return configErr
	}
	var authErr *schema.AuthError
	if errors.As(err, &authErr) {
		return authErr
	}
	var persistenceErr *schema.PersistenceError
	if errors.As(err, &persistenceErr) {
		return persistenceErr
	}
	var networkErr *schema.NetworkError
	if errors.As(err, &networkErr) {
		return networkErr
	}
	return nil
}

// New creates a client for baseURL authorized by session
func New(baseURL string, session *auth.Manager, options ...Option) (*Client, error) {
	if session == nil {
		return nil, errors.New("session manager was nil")
	}
	ret := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		session:   session,
		transport: http.DefaultTransport,
		timeout:   auth.DefaultTimeout,
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	bearer, err := authtransport.New(session, authtransport.WithTransport(ret.transport), authtransport.WithLogger(ret.logger))
	if err != nil {
		return nil, err
	}
	ret.http = &http.Client{Transport: bearer, Timeout: ret.timeout}
	return ret, nil
}
