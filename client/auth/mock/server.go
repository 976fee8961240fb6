package mock

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

type (
	// Request is a recorded inbound request
	Request struct {
		Method        string
		Path          string
		Authorization string
		RequestID     string
		Body          []byte
	}

	// Server is a mock trading-post API
	Server struct {
		*httptest.Server
		Secret       []byte
		Subject      string
		RefreshToken string
		TokenTTL     time.Duration
		Profile      map[string]interface{}

		TokenHandler     http.HandlerFunc
		ProfileHandler   http.HandlerFunc
		BuyOrderHandler  http.HandlerFunc
		SellOrderHandler http.HandlerFunc

		mux      sync.Mutex
		requests []*Request
		orders   int
	}
)

// NewServer starts a mock server accepting refreshToken
func NewServer(refreshToken string) *Server {
	ret := &Server{
		Secret:       []byte("trading-post-test-secret"),
		Subject:      "test_user",
		RefreshToken: refreshToken,
		TokenTTL:     time.Hour,
		Profile: map[string]interface{}{
			"name":   "Test User",
			"cash":   10000,
			"stocks": map[string]int{"GOOG": 3},
		},
	}
	ret.Server = httptest.NewServer(&Handler{Server: ret})
	return ret
}

// Calls returns number of requests received for path
func (s *Server) Calls(path string) int {
	s.mux.Lock()
	defer s.mux.Unlock()
	count := 0
	for _, request := range s.requests {
		if request.Path == path {
			count++
		}
	}
	return count
}

// TotalCalls returns number of all received requests
func (s *Server) TotalCalls() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.requests)
}

// Requests returns recorded requests for path
func (s *Server) Requests(path string) []*Request {
	s.mux.Lock()
	defer s.mux.Unlock()
	var ret []*Request
	for _, request := range s.requests {
		if request.Path == path {
			ret = append(ret, request)
		}
	}
	return ret
}

func (s *Server) record(r *http.Request, body []byte) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.requests = append(s.requests, &Request{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		RequestID:     r.Header.Get("X-Request-Id"),
		Body:          body,
	})
}

func (s *Server) nextOrderID() string {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.orders++
	return fmt.Sprintf("order-%d", s.orders)
}
