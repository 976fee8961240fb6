package auth

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/viant/tradingpost/client/auth/store"
	"github.com/viant/tradingpost/logger"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	// DefaultExpiryMargin is subtracted from token expiry before it is trusted; zero trusts a token until it expires
	DefaultExpiryMargin = time.Duration(0)
	// DefaultTimeout bounds a single refresh exchange
	DefaultTimeout = 30 * time.Second
)

// Manager owns the access token lifecycle for a single credential document.
type Manager struct {
	baseURL string
	store   store.Store
	client  *http.Client
	logger  *zap.Logger
	now     func() time.Time
	margin  time.Duration
	mux     sync.Mutex
}

// New creates a session manager refreshing tokens against baseURL
func New(baseURL string, aStore store.Store, options ...Option) *Manager {
	ret := &Manager{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   aStore,
		client:  &http.Client{Timeout: DefaultTimeout},
		logger:  zap.NewNop(),
		now:     time.Now,
		margin:  DefaultExpiryMargin,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Store returns the credential store
func (m *Manager) Store() store.Store {
	return m.store
}

// AccessToken returns a usable access token. When the refreshed token could not be
// persisted the token is returned together with a *schema.PersistenceError.
func (m *Manager) AccessToken(ctx context.Context) (string, error) {
	token, err := m.Token(ctx)
	if token == nil {
		return "", err
	}
	return token.AccessToken, err
}

// Token returns the cached access token when usable, otherwise refreshes and persists a new one.
func (m *Manager) Token(ctx context.Context) (*oauth2.Token, error) {
	m.mux.Lock()
	defer m.mux.Unlock()

	document, err := m.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	cached, err := ParseToken(document.AccessToken, m.now(), m.margin)
	if err == nil {
		m.logger.Debug("session.token_cached", zap.Time("expiry", cached.Expiry))
		return cached, nil
	}
	m.logger.Debug("session.token_refresh", zap.String("reason", err.Error()))

	accessToken, err := m.refresh(ctx, document.RefreshToken)
	if err != nil {
		return nil, err
	}
	token, err := ParseToken(accessToken, m.now(), 0)
	if err != nil {
		token = &oauth2.Token{TokenType: "Bearer", AccessToken: accessToken}
	}

	document.AccessToken = accessToken
	if err = m.store.Save(ctx, document); err != nil {
		m.logger.Warn("session.persist_failed", zap.Error(err))
		return token, err
	}
	m.logger.Info("session.token_refreshed", zap.String("token", logger.MaskToken(accessToken)), zap.Time("expiry", token.Expiry))
	return token, nil
}

// TokenSource returns an oauth2.TokenSource bound to ctx
func (m *Manager) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &tokenSource{ctx: ctx, manager: m}
}

type tokenSource struct {
	ctx     context.Context
	manager *Manager
}

func (s *tokenSource) Token() (*oauth2.Token, error) {
	return s.manager.Token(s.ctx)
}
