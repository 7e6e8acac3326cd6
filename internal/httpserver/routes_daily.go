// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzle.
// Exposes, under /daily:
//   - GET  /daily             → today's puzzle for the caller (resumed or new)
//   - POST /daily/guess       → submit a guess for today's puzzle
//   - GET  /daily/leaderboard → winners for today (or ?date=YYYY-MM-DD)
//   - GET  /daily/share       → share text for the caller's game
//   - GET  /daily/share.png   → the same text as a QR code
//
// The saved game is {lastPlayedDate, gameState}. It is resumed only when
// lastPlayedDate is today; anything older is discarded and a new game starts.
// Finished games are recorded in daily_results.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/kluro/internal/daily"
	"github.com/robalobadob/kluro/internal/game"
	"github.com/robalobadob/kluro/internal/share"
	"github.com/robalobadob/kluro/internal/store"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Use(s.withPlayer)
		r.Get("/", s.handleToday)
		r.Post("/guess", s.handleGuess)
		r.Get("/leaderboard", s.handleLeaderboard)
		r.Get("/share", s.handleShare)
		r.Get("/share.png", s.handleShareQR)
	})
}

// today holds everything derived from the clock for one request.
type today struct {
	now    time.Time
	date   string
	record daily.Record
}

func (s *Server) today() (today, error) {
	now := s.selector.Today()
	rec, err := s.selector.ForDate(now)
	if err != nil {
		return today{}, err
	}
	return today{now: now, date: daily.DateKey(now), record: rec}, nil
}

// loadSession resumes the player's saved game for td, or starts a new one.
// fresh reports whether nothing usable was saved.
func (s *Server) loadSession(ctx context.Context, pid string, td today) (sess *game.Session, saved store.Saved, fresh bool, err error) {
	saved, err = s.store.Load(ctx, pid)
	switch {
	case err == nil && saved.LastPlayedDate == td.date:
		sess, err = game.Resume(td.record.Word, saved.GameState)
		if err == nil {
			return sess, saved, false, nil
		}
		log.Warn().Err(err).Str("player", pid).Str("date", td.date).Msg("discarding unreadable saved game")
	case err != nil && !errors.Is(err, store.ErrNotFound):
		return nil, store.Saved{}, false, err
	}

	sess, err = game.New(td.record.Word)
	if err != nil {
		return nil, store.Saved{}, false, err
	}
	return sess, store.Saved{LastPlayedDate: td.date, StartedAt: td.now}, true, nil
}

// persist writes the session back under the player's ID.
func (s *Server) persist(ctx context.Context, pid string, sess *game.Session, saved store.Saved) error {
	blob, err := sess.Serialize()
	if err != nil {
		return err
	}
	saved.GameState = blob
	return s.store.Save(ctx, pid, saved)
}

// -----------------------------------------------------------------------------
// GET /daily

// todayRes is returned by GET /daily.
type todayRes struct {
	Date        string      `json:"date"`
	DayIndex    int         `json:"dayIndex"`
	WordLength  int         `json:"wordLength"`
	MaxAttempts int         `json:"maxAttempts"`
	NextInMs    int64       `json:"nextInMs"` // until the next puzzle
	Played      bool        `json:"played"`   // result on record but no saved game
	Status      game.Status `json:"status"`
	State       game.State  `json:"state"`
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	td, err := s.today()
	if err != nil {
		log.Error().Err(err).Msg("select daily word")
		writeError(w, http.StatusServiceUnavailable, "no_puzzle")
		return
	}
	pid := playerID(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, saved, fresh, err := s.loadSession(r.Context(), pid, td)
	if err != nil {
		log.Error().Err(err).Str("player", pid).Msg("load session")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}
	played := fresh && s.alreadyPlayed(r.Context(), pid, td.date)
	if fresh && !played {
		if err := s.persist(r.Context(), pid, sess, saved); err != nil {
			log.Warn().Err(err).Str("player", pid).Msg("save new game")
		}
	}

	writeJSON(w, http.StatusOK, todayRes{
		Date:        td.date,
		DayIndex:    td.record.DayIndex,
		WordLength:  sess.WordLength(),
		MaxAttempts: game.MaxAttempts,
		NextInMs:    daily.UntilNextDay(td.now).Milliseconds(),
		Played:      played,
		Status:      sess.Status(),
		State:       sess.State(),
	})
}

// -----------------------------------------------------------------------------
// POST /daily/guess

// guessReq is the request payload for /daily/guess.
type guessReq struct {
	Guess string `json:"guess"`
}

// guessRes is the response payload for /daily/guess.
type guessRes struct {
	Status game.Status `json:"status"`
	State  game.State  `json:"state"`
}

// handleGuess validates and applies a guess to today's game.
// - Rejects words not in the word list (422) before touching the game.
// - Maps game rejections to 400, or 409 once the game is over or a result
//   for today is already on record.
// - Saves the new state; records the result when the game ends.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	guess := strings.TrimSpace(req.Guess)
	if guess != "" && !s.words.Contains(guess) {
		writeError(w, http.StatusUnprocessableEntity, "not_in_word_list")
		return
	}

	td, err := s.today()
	if err != nil {
		log.Error().Err(err).Msg("select daily word")
		writeError(w, http.StatusServiceUnavailable, "no_puzzle")
		return
	}
	pid := playerID(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, saved, fresh, err := s.loadSession(r.Context(), pid, td)
	if err != nil {
		log.Error().Err(err).Str("player", pid).Msg("load session")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}
	// A finished result without a saved game (lost save, store reset) must
	// not open a second attempt at today's word.
	if fresh && s.alreadyPlayed(r.Context(), pid, td.date) {
		writeError(w, http.StatusConflict, "already_played")
		return
	}

	st, err := sess.Submit(guess)
	if err != nil {
		writeJSON(w, guessErrorStatus(err), errorRes{Error: guessErrorCode(err), Detail: err.Error()})
		return
	}
	if err := s.persist(r.Context(), pid, sess, saved); err != nil {
		log.Error().Err(err).Str("player", pid).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	if st.IsComplete {
		s.recordResult(r.Context(), pid, td, st, saved.StartedAt)
	}

	writeJSON(w, http.StatusOK, guessRes{Status: sess.Status(), State: st})
}

// alreadyPlayed reports whether a result for date is on record for pid.
// Lookup failures count as not played.
func (s *Server) alreadyPlayed(ctx context.Context, pid, date string) bool {
	if s.results == nil {
		return false
	}
	played, err := s.results.AlreadyPlayed(ctx, pid, date)
	if err != nil {
		log.Warn().Err(err).Str("player", pid).Msg("check daily result")
		return false
	}
	return played
}

// recordResult stores a finished game (best effort, non-fatal if it fails).
func (s *Server) recordResult(ctx context.Context, pid string, td today, st game.State, startedAt time.Time) {
	if s.results == nil {
		return
	}
	var elapsed int64
	if !startedAt.IsZero() {
		elapsed = time.Since(startedAt).Milliseconds()
	}
	err := s.results.InsertResult(ctx, daily.Result{
		PlayerID:  pid,
		Date:      td.date,
		DayIndex:  td.record.DayIndex,
		Guesses:   st.CurrentRow,
		Won:       st.IsWon,
		ElapsedMs: elapsed,
	})
	if err != nil {
		log.Warn().Err(err).Str("player", pid).Msg("insert daily result")
		return
	}
	log.Info().Str("player", pid).Str("date", td.date).Int("guesses", st.CurrentRow).Bool("won", st.IsWon).Msg("daily finished")
}

func guessErrorStatus(err error) int {
	if errors.Is(err, game.ErrSessionComplete) {
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func guessErrorCode(err error) string {
	switch {
	case errors.Is(err, game.ErrSessionComplete):
		return "game_complete"
	case errors.Is(err, game.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, game.ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, game.ErrInvalidCharacters):
		return "invalid_characters"
	default:
		return "invalid_guess"
	}
}

// -----------------------------------------------------------------------------
// GET /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		writeError(w, http.StatusServiceUnavailable, "no_results_store")
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = s.selector.TodayKey()
	}
	rows, err := s.results.Leaderboard(r.Context(), date, 20)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("leaderboard")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}

// -----------------------------------------------------------------------------
// GET /daily/share, /daily/share.png

func (s *Server) shareText(r *http.Request) (string, error) {
	td, err := s.today()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, _, _, err := s.loadSession(r.Context(), playerID(r), td)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	return share.Text(sess.State(), td.record.DayIndex, td.date), nil
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	text, err := s.shareText(r)
	if err != nil {
		log.Error().Err(err).Msg("share text")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

func (s *Server) handleShareQR(w http.ResponseWriter, r *http.Request) {
	text, err := s.shareText(r)
	if err != nil {
		log.Error().Err(err).Msg("share text")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	png, err := share.QR(text, 256)
	if err != nil {
		log.Error().Err(err).Msg("share qr")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
