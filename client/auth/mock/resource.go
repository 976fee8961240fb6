package mock

import (
	"encoding/json"
	"net/http"
	"strings"
)

func (s *Server) authorize(w http.ResponseWriter, r *http.Request) bool {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return false
	}
	if err := s.verify(strings.TrimPrefix(header, "Bearer ")); err != nil {
		http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return false
	}
	return true
}

// defaultProfileHandler returns the configured profile
func (s *Server) defaultProfileHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.authorize(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, s.Profile)
}

func (s *Server) orderHandler(side string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if !s.authorize(w, r) {
			return
		}
		var order struct {
			Ticker   string `json:"ticker"`
			Quantity int    `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if order.Ticker == "" || order.Quantity <= 0 {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "invalid order"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"id":       s.nextOrderID(),
			"side":     side,
			"ticker":   order.Ticker,
			"quantity": order.Quantity,
			"status":   "filled",
		})
	}
}
