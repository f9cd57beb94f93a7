package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Chinmay4285/Stock-Comparer/internal/analyzer"
	"github.com/Chinmay4285/Stock-Comparer/internal/provider"
	"github.com/Chinmay4285/Stock-Comparer/internal/store"
	"github.com/Chinmay4285/Stock-Comparer/pkg/logger"
)

// AnalysisHandler handles analysis API endpoints
type AnalysisHandler struct {
	analyzer *analyzer.Analyzer
	repo     *store.Repository
	logger   *logger.Logger
}

// NewAnalysisHandler creates a new analysis handler. The repository
// is optional; without it the history endpoint reports unavailable.
func NewAnalysisHandler(a *analyzer.Analyzer, repo *store.Repository, log *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer: a,
		repo:     repo,
		logger:   log,
	}
}

// Analyze runs a fresh analysis for one ticker
// GET /api/analysis/{ticker}?type=value|growth_momentum|dual
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ticker := strings.ToUpper(mux.Vars(r)["ticker"])
	if ticker == "" {
		respondError(w, http.StatusBadRequest, "Ticker is required")
		return
	}

	kind, err := parseKindParam(r.URL.Query().Get("type"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := h.analyzer.Analyze(ctx, ticker, kind)
	if err != nil {
		if errors.Is(err, provider.ErrTickerNotFound) {
			respondError(w, http.StatusNotFound, "Ticker not found: "+ticker)
			return
		}
		h.logger.WithError(err).WithField("ticker", ticker).Error("Analysis failed")
		respondError(w, http.StatusBadGateway, "Analysis failed for "+ticker)
		return
	}

	if h.repo != nil {
		if err := h.repo.Save(ctx, outcome); err != nil {
			h.logger.WithError(err).WithField("ticker", ticker).Warn("Failed to persist outcome")
		}
	}

	respondJSON(w, http.StatusOK, outcome)
}

// BatchRequest is the body of a batch analysis request
type BatchRequest struct {
	Tickers []string `json:"tickers"`
	Type    string   `json:"type"`
}

// BatchEntryResponse is one ticker's result within a batch response
type BatchEntryResponse struct {
	Ticker  string            `json:"ticker"`
	Outcome *analyzer.Outcome `json:"outcome,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// AnalyzeBatch runs analyses for several tickers concurrently
// POST /api/analyze
func (h *AnalysisHandler) AnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Tickers) == 0 {
		respondError(w, http.StatusBadRequest, "At least one ticker is required")
		return
	}

	kind, err := parseKindParam(req.Type)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	tickers := make([]string, len(req.Tickers))
	for i, t := range req.Tickers {
		tickers[i] = strings.ToUpper(strings.TrimSpace(t))
	}

	entries, err := h.analyzer.AnalyzeBatch(ctx, tickers, kind)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	results := make([]BatchEntryResponse, len(entries))
	for i, entry := range entries {
		results[i] = BatchEntryResponse{
			Ticker:  entry.Ticker,
			Outcome: entry.Outcome,
		}
		if entry.Err != nil {
			results[i].Error = entry.Err.Error()
		}

		if h.repo != nil && entry.Outcome != nil {
			if err := h.repo.Save(ctx, entry.Outcome); err != nil {
				h.logger.WithError(err).WithField("ticker", entry.Ticker).Warn("Failed to persist outcome")
			}
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(results),
		"results": results,
	})
}

// History returns stored snapshots for a ticker, newest first
// GET /api/history/{ticker}?limit=N
func (h *AnalysisHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.repo == nil {
		respondError(w, http.StatusServiceUnavailable, "History storage is not configured")
		return
	}

	ticker := strings.ToUpper(mux.Vars(r)["ticker"])

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	snapshots, err := h.repo.History(ctx, ticker, limit)
	if err != nil {
		h.logger.WithError(err).WithField("ticker", ticker).Error("Failed to load history")
		respondError(w, http.StatusInternalServerError, "Failed to load history")
		return
	}
	if len(snapshots) == 0 {
		respondError(w, http.StatusNotFound, "No snapshots for "+ticker)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ticker":    ticker,
		"count":     len(snapshots),
		"snapshots": snapshots,
	})
}

// parseKindParam maps the type query parameter, defaulting to dual
func parseKindParam(raw string) (analyzer.Kind, error) {
	if raw == "" {
		return analyzer.KindDual, nil
	}
	return analyzer.ParseKind(raw)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
