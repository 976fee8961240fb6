package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/viant/tradingpost/schema"
	"go.uber.org/zap"
)

// refresh trades refreshToken for a new access token; it is never retried.
func (m *Manager) refresh(ctx context.Context, refreshToken string) (string, error) {
	payload, err := json.Marshal(&schema.TokenRequest{GrantType: schema.GrantTypeRefreshToken, RefreshToken: refreshToken})
	if err != nil {
		return "", err
	}
	URL := m.baseURL + schema.TokenPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, URL, bytes.NewReader(payload))
	if err != nil {
		return "", schema.NewConfigError(m.baseURL, "invalid base URL", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(schema.RequestIDHeader, requestID)

	resp, err := m.client.Do(req)
	if err != nil {
		m.logger.Warn("session.refresh_failed", zap.String("url", URL), zap.String("request_id", requestID), zap.Error(err))
		return "", schema.NewNetworkError(http.MethodPost, URL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", schema.NewNetworkError(http.MethodPost, URL, err)
	}
	if resp.StatusCode != http.StatusCreated {
		m.logger.Warn("session.refresh_rejected", zap.Int("status", resp.StatusCode), zap.String("request_id", requestID))
		return "", schema.NewAuthError(resp.StatusCode, body, nil)
	}
	tokenResponse := &schema.TokenResponse{}
	if err = json.Unmarshal(body, tokenResponse); err != nil {
		return "", schema.NewAuthError(resp.StatusCode, body, fmt.Errorf("decode token response: %w", err))
	}
	if tokenResponse.AccessToken == "" {
		return "", schema.NewAuthError(resp.StatusCode, body, errors.New("token response has no access_token"))
	}
	return tokenResponse.AccessToken, nil
}
