package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/viant/tradingpost/schema"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// TokenProvider supplies the access token for a request
type TokenProvider interface {
	Token(ctx context.Context) (*oauth2.Token, error)
}

type RoundTripper struct {
	provider  TokenProvider
	transport http.RoundTripper
	logger    *zap.Logger
}

func New(provider TokenProvider, options ...Option) (*RoundTripper, error) {
	if provider == nil {
		return nil, errors.New("token provider was nil")
	}
	ret := &RoundTripper{
		provider:  provider,
		transport: http.DefaultTransport,
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret, nil
}

// RoundTrip obtains a token and sends the request with the Bearer header; a 401 is returned as is.
func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := r.provider.Token(req.Context())
	if err != nil {
		closeBody(req)
		r.logger.Debug("transport.token_unavailable", zap.String("url", req.URL.String()), zap.Error(err))
		return nil, err
	}
	authorized := req.Clone(req.Context())
	token.SetAuthHeader(authorized)
	if authorized.Header.Get(schema.RequestIDHeader) == "" {
		authorized.Header.Set(schema.RequestIDHeader, uuid.NewString())
	}
	return r.transport.RoundTrip(authorized)
}

func closeBody(req *http.Request) {
	if req.Body != nil {
		_ = req.Body.Close()
	}
}
