package mock

import (
	"bytes"
	"io"
	"net/http"

	"github.com/viant/tradingpost/schema"
)

// Handler routes HTTP requests to the mock trading-post endpoints.
type Handler struct {
	Server *Server
}

// ServeHTTP records the request and dispatches it based on URL path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))
	h.Server.record(r, body)

	switch r.URL.Path {
	case schema.TokenPath:
		h.dispatch(w, r, h.Server.TokenHandler, h.Server.defaultTokenHandler)
	case schema.ProfilePath:
		h.dispatch(w, r, h.Server.ProfileHandler, h.Server.defaultProfileHandler)
	case schema.BuyOrdersPath:
		h.dispatch(w, r, h.Server.BuyOrderHandler, h.Server.orderHandler("buy"))
	case schema.SellOrdersPath:
		h.dispatch(w, r, h.Server.SellOrderHandler, h.Server.orderHandler("sell"))
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request, custom, fallback http.HandlerFunc) {
	if custom != nil {
		custom(w, r)
		return
	}
	fallback(w, r)
}
