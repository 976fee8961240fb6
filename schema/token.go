package schema

// GrantTypeRefreshToken is the only supported grant
const GrantTypeRefreshToken = "refresh_token"

type (
	// TokenRequest represents refresh exchange request body
	TokenRequest struct {
		GrantType    string `json:"grant_type"`
		RefreshToken string `json:"refresh_token"`
	}

	// TokenResponse represents refresh exchange response body
	TokenResponse struct {
		AccessToken string `json:"access_token"`
	}
)
