package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"finwell/internal/core"
	"finwell/internal/enrich"
	"finwell/internal/report"
	"finwell/internal/transactions"
)

const (
	exchangeAttempts = 3
	exchangeBackoff  = 500 * time.Millisecond
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	list := s.txs.Fetch(r.Context())
	writeJSON(w, http.StatusOK, report.BuildDashboard(list))
}

func (s *Server) handleBehavior(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	list := s.txs.Fetch(r.Context())
	writeJSON(w, http.StatusOK, report.BuildBehavior(list))
}

func (s *Server) handleMicrosavings(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	list := s.txs.Fetch(r.Context())
	writeJSON(w, http.StatusOK, report.BuildMicrosavings(list))
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	list := s.txs.Fetch(r.Context())
	writeJSON(w, http.StatusOK, report.BuildInsights(list))
}

type transactionsResponse struct {
	Period       string             `json:"period"`
	Transactions []core.Transaction `json:"transactions"`
}

// handleTransactions returns the fetch window with the legacy variation pass
// applied. Unlike the metric routes it bypasses the enriched cache.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	list, err := s.txs.FetchWindow(r.Context())
	if errors.Is(err, transactions.ErrNoAccessToken) {
		writeJSON(w, http.StatusOK, map[string]string{"error": "No access token found"})
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Transactions fetch failed", "error", err)
		list = nil
	}

	enhanced := enrich.EnhanceLegacy(list, s.legacyRand())
	writeJSON(w, http.StatusOK, transactionsResponse{
		Period:       "last_90_days",
		Transactions: enhanced,
	})
}

func (s *Server) handleCreateLinkToken(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	token, err := s.links.CreateLinkToken(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Link token create failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "Link token creation failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"link_token": token})
}

type exchangeRequest struct {
	PublicToken string `json:"public_token"`
}

// handleExchangePublicToken swaps a temporary public token for the durable
// credential, retrying transient network failures before giving up with 503.
func (s *Server) handleExchangePublicToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req exchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.PublicToken) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing public_token"})
		return
	}

	var (
		token string
		err   error
	)
	for attempt := 1; attempt <= exchangeAttempts; attempt++ {
		token, err = s.exchanger.ExchangePublicToken(r.Context(), req.PublicToken)
		if err == nil {
			break
		}
		if !isTransient(err) {
			break
		}
		slog.WarnContext(r.Context(), "Token exchange attempt failed",
			"attempt", attempt, "error", err)
		if attempt < exchangeAttempts {
			select {
			case <-time.After(exchangeBackoff):
			case <-r.Context().Done():
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "Aggregator connection failed"})
				return
			}
		}
	}
	if err != nil {
		if isTransient(err) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "Aggregator connection failed"})
			return
		}
		slog.ErrorContext(r.Context(), "Token exchange failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "Token exchange failed"})
		return
	}

	s.tokens.Set(token)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Access token saved successfully"})
}

// isTransient reports whether the error looks like a temporary network
// failure worth retrying.
func isTransient(err error) bool {
	var nerr net.Error
	if errors.As(err, &nerr) {
		return true
	}
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET)
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}
