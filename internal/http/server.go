// Package http exposes the JSON API: the four metric routes, the raw
// transactions route and the two aggregator token routes.
package http

import (
	"context"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"finwell/internal/source"
	"finwell/internal/transactions"
)

type Server struct {
	http.Server
	txs       *transactions.Service
	tokens    *transactions.TokenStore
	links     source.LinkTokenCreator
	exchanger source.TokenExchanger

	rateLimiter *rateLimiter

	// legacyRand supplies the entropy for the non-deterministic variation
	// pass on the raw transactions route. Tests inject a fixed seed.
	legacyRand func() *rand.Rand

	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, txs *transactions.Service, tokens *transactions.TokenStore, links source.LinkTokenCreator, exchanger source.TokenExchanger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		txs:         txs,
		tokens:      tokens,
		links:       links,
		exchanger:   exchanger,
		rateLimiter: newRateLimiter(),
		legacyRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	mux.HandleFunc("/api/dashboard", s.withMiddleware(s.handleDashboard))
	mux.HandleFunc("/api/behavior", s.withMiddleware(s.handleBehavior))
	mux.HandleFunc("/api/microsavings", s.withMiddleware(s.handleMicrosavings))
	mux.HandleFunc("/api/insights", s.withMiddleware(s.handleInsights))
	mux.HandleFunc("/api/transactions", s.withMiddleware(s.handleTransactions))
	mux.HandleFunc("/api/create_link_token", s.withMiddleware(s.handleCreateLinkToken))
	mux.HandleFunc("/api/exchange_public_token", s.withMiddleware(s.handleExchangePublicToken))

	return s
}

// Shutdown gracefully shuts down the server and its cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
