// internal/httpserver/server.go
//
// HTTP server wiring for the daily puzzle.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, request logs).
//   - Public endpoints: "/", "/health", "/words/{word}".
//   - Daily puzzle endpoints, mounted under /daily (routes_daily.go).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so the player cookie works).
//   - Every /daily request runs as an anonymous player (player.go).

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/kluro/internal/daily"
	"github.com/robalobadob/kluro/internal/store"
	"github.com/robalobadob/kluro/internal/words"
)

// Options carries the HTTP-facing settings.
type Options struct {
	TokenSecret  string
	CookieName   string
	ClientOrigin string
	Secure       bool // mark cookies Secure / SameSite=None
}

// Server bundles router, saved-game store, results store, word list and selector.
type Server struct {
	r        *chi.Mux
	store    store.Store
	results  *daily.Store // nil disables results and leaderboard
	words    *words.List
	selector daily.Selector
	opt      Options

	// mu serializes load → submit → save so two requests from the same
	// player cannot interleave guesses.
	mu sync.Mutex
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, results *daily.Store, list *words.List, sel daily.Selector, opt Options) *Server {
	if opt.CookieName == "" {
		opt.CookieName = "kluro_player"
	}
	s := &Server{r: chi.NewRouter(), store: st, results: results, words: list, selector: sel, opt: opt}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"kluro","endpoints":["/health","GET /daily","POST /daily/guess","/daily/leaderboard","/daily/share","/words/{word}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/words/{word}", s.handleWordCheck)

	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// ServeHTTP makes Server an http.Handler (useful for tests).
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.r.ServeHTTP(w, r) }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.opt.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Expose-Headers", "X-Player-Token")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs method, path, status and latency for every request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ------------------------------- words -------------------------------------

type wordCheckRes struct {
	Word  string `json:"word"`
	Valid bool   `json:"valid"`
}

// handleWordCheck reports whether a word would be accepted as a guess.
func (s *Server) handleWordCheck(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	writeJSON(w, http.StatusOK, wordCheckRes{Word: word, Valid: s.words.Contains(word)})
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorRes struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorRes{Error: code})
}
