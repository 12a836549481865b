/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
// Package http exposes the swiss engine's six operations over a chi
// REST API, following leaderboard-redis's internal/handler/http.go
// shape: a Handler wrapping a storage dependency, an APIResponse
// envelope, and a Router method assembling chi middleware and routes.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mikeb26/swisstd/swiss"
)

// Store is the persistence seam the handler needs: load a section,
// mutate it transactionally, or save it outright. store/memory and
// store/realtime both satisfy it.
type Store interface {
	Load(ctx context.Context, name string) (*swiss.Section, error)
	Save(ctx context.Context, sec *swiss.Section) error
	Mutate(ctx context.Context, name string, fn func(*swiss.Section) error) error
}

// Handler serves the section API.
type Handler struct {
	store  Store
	logger *slog.Logger

	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

// NewHandler builds a Handler over store with its own private
// Prometheus registry, so multiple Handlers (as in tests) never
// collide over a shared default registry.
func NewHandler(store Store, logger *slog.Logger) *Handler {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "swiss_http_requests_total",
		Help: "Total HTTP requests served by the swiss API, by route and outcome.",
	}, []string{"route", "outcome"})

	reg := prometheus.NewRegistry()
	reg.MustRegister(requests)

	return &Handler{
		store:    store,
		logger:   logger,
		registry: reg,
		requests: requests,
	}
}

// APIResponse is the standard response envelope.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Router assembles the chi router and middleware chain.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.HealthCheck)
	r.Handle("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1/sections/{section}", func(r chi.Router) {
		r.Get("/", h.GetSection)
		r.Post("/players", h.RegisterPlayer)
		r.Delete("/players/{playerID}", h.WithdrawPlayer)
		r.Post("/lock", h.LockSection)
		r.Post("/reset", h.ResetSection)
		r.Post("/pair", h.PairNextRound)
		r.Get("/standings", h.GetStandings)
		r.Post("/rounds/{round}/boards/{board}/result", h.ApplyResult)
		r.Post("/rounds/{round}/boards/{board}/swap", h.Swap)
		r.Post("/rounds/{round}/boards/{board}/replace", h.Replace)
		r.Post("/rounds/{round}/boards/{board}/force-color", h.ForceColor)
	})

	return r
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeSuccess(w http.ResponseWriter, data any) {
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

func (h *Handler) writeError(w http.ResponseWriter, route string, err error) {
	status := http.StatusInternalServerError
	if kind, ok := swiss.KindOf(err); ok {
		switch kind {
		case swiss.ErrKindRoundNotFound, swiss.ErrKindBoardNotFound, swiss.ErrKindPlayerMissing:
			status = http.StatusNotFound
		case swiss.ErrKindInvalidResultToken, swiss.ErrKindSectionNotLocked, swiss.ErrKindAllRoundsStarted, swiss.ErrKindUnknownPlayerID:
			status = http.StatusBadRequest
		}
	}
	h.requests.WithLabelValues(route, "error").Inc()
	h.writeJSON(w, status, APIResponse{Success: false, Error: err.Error()})
}

func (h *Handler) ok(w http.ResponseWriter, route string, data any) {
	h.requests.WithLabelValues(route, "ok").Inc()
	h.writeSuccess(w, data)
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, map[string]string{"status": "healthy"})
}

func sectionName(r *http.Request) string {
	return chi.URLParam(r, "section")
}

func (h *Handler) loadSection(w http.ResponseWriter, r *http.Request, route string) *swiss.Section {
	sec, err := h.store.Load(r.Context(), sectionName(r))
	if err != nil {
		h.writeError(w, route, err)
		return nil
	}
	if sec == nil {
		h.writeError(w, route, errors.New("section not found"))
		return nil
	}
	return sec
}

// GetSection returns the raw section document.
func (h *Handler) GetSection(w http.ResponseWriter, r *http.Request) {
	const route = "get_section"
	sec := h.loadSection(w, r, route)
	if sec == nil {
		return
	}
	h.ok(w, route, sec)
}

// GetStandings computes and returns current standings.
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	const route = "get_standings"
	sec := h.loadSection(w, r, route)
	if sec == nil {
		return
	}
	h.ok(w, route, swiss.ComputeStandings(sec))
}

// RegisterPlayer adds a player to an open section.
func (h *Handler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	const route = "register_player"
	var p swiss.Player
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.writeError(w, route, err)
		return
	}
	err := h.store.Mutate(r.Context(), sectionName(r), func(sec *swiss.Section) error {
		return sec.RegisterPlayer(p)
	})
	if err != nil {
		h.writeError(w, route, err)
		return
	}
	h.ok(w, route, map[string]string{"status": "registered"})
}

// WithdrawPlayer marks a player withdrawn.
func (h *Handler) WithdrawPlayer(w http.ResponseWriter, r *http.Request) {
	const route = "withdraw_player"
	id := swiss.PlayerID(chi.URLParam(r, "playerID"))
	err := h.store.Mutate(r.Context(), sectionName(r), func(sec *swiss.Section) error {
		return sec.WithdrawPlayer(id)
	})
	if err != nil {
		h.writeError(w, route, err)
		return
	}
	h.ok(w, route, map[string]string{"status": "withdrawn"})
}

// LockSection freezes the roster.
func (h *Handler) LockSection(w http.ResponseWriter, r *http.Request) {
	const route = "lock_section"
	err := h.store.Mutate(r.Context(), sectionName(r), func(sec *swiss.Section) error {
		sec.Lock()
		return nil
	})
	if err != nil {
		h.writeError(w, route, err)
		return
	}
	h.ok(w, route, map[string]string{"status": "locked"})
}

// ResetSection reopens the section, clearing all round state.
func (h *Handler) ResetSection(w http.ResponseWriter, r *http.Request) {
	const route = "reset_section"
	err := h.store.Mutate(r.Context(), sectionName(r), func(sec *swiss.Section) error {
		sec.Reset()
		return nil
	})
	if err != nil {
		h.writeError(w, route, err)
		return
	}
	h.ok(w, route, map[string]string{"status": "reset"})
}

// PairNextRound pairs and commits the next round.
func (h *Handler) PairNextRound(w http.ResponseWriter, r *http.Request) {
	const route = "pair_next_round"
	var pairings []swiss.Pairing
	err := h.store.Mutate(r.Context(), sectionName(r), func(sec *swiss.Section) error {
		var err error
		pairings, _, err = swiss.PairNextRound(sec)
		return err
	})
	if err != nil {
		h.writeError(w, route, err)
		return
	}
	h.ok(w, route, pairings)
}

type resultRequest struct {
	Token swiss.ResultToken `json:"token"`
}

// ApplyResult records or corrects a board's outcome.
func (h *Handler) ApplyResult(w http.ResponseWriter, r *http.Request) {
	const route = "apply_result"
	round, board, ok := roundAndBoard(w, r, h, route)
	if !ok {
		return
	}
	var req resultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, route, err)
		return
	}
	err := h.store.Mutate(r.Context(), sectionName(r), func(sec *swiss.Section) error {
		return swiss.ApplyResult(sec, round, board, req.Token)
	})
	if err != nil {
		h.writeError(w, route, err)
		return
	}
	h.ok(w, route, map[string]string{"status": "recorded"})
}

// Swap exchanges the colors on a board.
func (h *Handler) Swap(w http.ResponseWriter, r *http.Request) {
	const route = "swap"
	round, board, ok := roundAndBoard(w, r, h, route)
	if !ok {
		return
	}
	err := h.store.Mutate(r.Context(), sectionName(r), func(sec *swiss.Section) error {
		return swiss.TDSwap(sec, round, board)
	})
	if err != nil {
		h.writeError(w, route, err)
		return
	}
	h.ok(w, route, map[string]string{"status": "swapped"})
}

type replaceRequest struct {
	Side        swiss.Side      `json:"side"`
	NewPlayerID swiss.PlayerID  `json:"newPlayerId"`
}

// Replace substitutes a new player onto a board.
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	const route = "replace"
	round, board, ok := roundAndBoard(w, r, h, route)
	if !ok {
		return
	}
	var req replaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, route, err)
		return
	}
	err := h.store.Mutate(r.Context(), sectionName(r), func(sec *swiss.Section) error {
		return swiss.TDReplace(sec, round, board, req.Side, req.NewPlayerID)
	})
	if err != nil {
		h.writeError(w, route, err)
		return
	}
	h.ok(w, route, map[string]string{"status": "replaced"})
}

type forceColorRequest struct {
	WhitePlayerID swiss.PlayerID `json:"whitePlayerId"`
}

// ForceColor pins which player plays White on a board.
func (h *Handler) ForceColor(w http.ResponseWriter, r *http.Request) {
	const route = "force_color"
	round, board, ok := roundAndBoard(w, r, h, route)
	if !ok {
		return
	}
	var req forceColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, route, err)
		return
	}
	err := h.store.Mutate(r.Context(), sectionName(r), func(sec *swiss.Section) error {
		return swiss.TDForceColor(sec, round, board, req.WhitePlayerID)
	})
	if err != nil {
		h.writeError(w, route, err)
		return
	}
	h.ok(w, route, map[string]string{"status": "forced"})
}

func roundAndBoard(w http.ResponseWriter, r *http.Request, h *Handler, route string) (round, board int, ok bool) {
	round, err := strconv.Atoi(chi.URLParam(r, "round"))
	if err != nil {
		h.writeError(w, route, err)
		return 0, 0, false
	}
	board, err = strconv.Atoi(chi.URLParam(r, "board"))
	if err != nil {
		h.writeError(w, route, err)
		return 0, 0, false
	}
	return round, board, true
}
