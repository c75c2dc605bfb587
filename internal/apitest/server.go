// Package apitest runs a fake fortnite-api upstream over real HTTP so endpoint
// clients can be exercised end to end.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/escrow-tf/fortnite/api"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Hit is a request the server received.
type Hit struct {
	Path    string
	Query   map[string][]string
	Headers http.Header
}

type Server struct {
	*httptest.Server

	router chi.Router
	mu     sync.Mutex
	hits   []Hit
}

// New starts a server that is closed when t finishes. Unrouted paths answer
// with the upstream's 404 envelope and are recorded like routed ones.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{router: chi.NewRouter()}
	s.router.Use(middleware.Recoverer)
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, nil, "not found")
	})

	s.Server = httptest.NewServer(s.record(s.router))
	t.Cleanup(s.Close)
	return s
}

// Data answers GET path with a 200 envelope around data. data may be raw JSON
// (string, []byte, json.RawMessage) or any value encoding/json can marshal.
func (s *Server) Data(path string, data any) {
	s.router.Get(path, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, data, "")
	})
}

// Status answers GET path with status and an envelope carrying message.
func (s *Server) Status(path string, status int, message string) {
	s.router.Get(path, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, status, nil, message)
	})
}

// Handle routes path to an arbitrary handler.
func (s *Server) Handle(path string, handler http.HandlerFunc) {
	s.router.Get(path, handler)
}

// Transport returns a transport pointed at the server.
func (s *Server) Transport(apiKey string) *api.HttpTransport {
	return api.NewTransport(api.HttpTransportOptions{
		BaseURL: s.URL,
		ApiKey:  apiKey,
	})
}

func (s *Server) Hits() []Hit {
	s.mu.Lock()
	defer s.mu.Unlock()

	hits := make([]Hit, len(s.hits))
	copy(hits, s.hits)
	return hits
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits = append(s.hits, Hit{
			Path:    r.URL.Path,
			Query:   r.URL.Query(),
			Headers: r.Header.Clone(),
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func writeEnvelope(w http.ResponseWriter, status int, data any, message string) {
	var raw json.RawMessage
	switch d := data.(type) {
	case nil:
		raw = json.RawMessage("null")
	case string:
		raw = json.RawMessage(d)
	case []byte:
		raw = d
	case json.RawMessage:
		raw = d
	default:
		encoded, err := json.Marshal(d)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		raw = encoded
	}

	body := struct {
		Status int             `json:"status"`
		Data   json.RawMessage `json:"data,omitempty"`
		Error  string          `json:"error,omitempty"`
	}{Status: status, Data: raw, Error: message}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
