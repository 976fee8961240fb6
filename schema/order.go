package schema

import (
	"errors"
	"strings"
)

// OrderRequest represents a buy or sell order forwarded verbatim to the API
type OrderRequest struct {
	Ticker   string `json:"ticker"`
	Quantity int    `json:"quantity"`
}

// Validate checks the only local constraints: non empty ticker and positive quantity
func (o *OrderRequest) Validate() error {
	if strings.TrimSpace(o.Ticker) == "" {
		return errors.New("missing a <TICKER>")
	}
	if o.Quantity <= 0 {
		return errors.New("quantity must be a positive integer")
	}
	return nil
}
