package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tradingpost/schema"
	"golang.org/x/oauth2"
)

type providerFunc func(ctx context.Context) (*oauth2.Token, error)

func (f providerFunc) Token(ctx context.Context) (*oauth2.Token, error) {
	return f(ctx)
}

func TestRoundTripper_AttachesBearer(t *testing.T) {
	var authorization, requestID, body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		requestID = r.Header.Get(schema.RequestIDHeader)
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	rt, err := New(providerFunc(func(ctx context.Context) (*oauth2.Token, error) {
		return &oauth2.Token{AccessToken: "a1", TokenType: "Bearer"}, nil
	}))
	require.NoError(t, err)
	client := &http.Client{Transport: rt}

	req, err := http.NewRequest(http.MethodPost, server.URL, strings.NewReader(`{"ticker":"GOOG"}`))
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Bearer a1", authorization)
	assert.NotEmpty(t, requestID)
	assert.Equal(t, `{"ticker":"GOOG"}`, body)
	assert.Equal(t, "", req.Header.Get("Authorization"), "caller request must not be mutated")
}

func TestRoundTripper_ProviderError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	rt, err := New(providerFunc(func(ctx context.Context) (*oauth2.Token, error) {
		return nil, schema.NewAuthError(http.StatusInternalServerError, []byte("boom"), nil)
	}))
	require.NoError(t, err)
	client := &http.Client{Transport: rt}

	_, err = client.Get(server.URL)
	var authErr *schema.AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, http.StatusInternalServerError, authErr.StatusCode)
	assert.Equal(t, 0, calls)
}

func TestRoundTripper_NoReplayOnUnauthorized(t *testing.T) {
	calls, tokens := 0, 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	rt, err := New(providerFunc(func(ctx context.Context) (*oauth2.Token, error) {
		tokens++
		return &oauth2.Token{AccessToken: "revoked"}, nil
	}))
	require.NoError(t, err)
	resp, err := (&http.Client{Transport: rt}).Get(server.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, tokens)
}

func TestNew_NilProvider(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}
