// internal/httpserver/routes_solve.go
//
// HTTP routes for the solving engine.
//   - POST /solve/new       → start an assist session; the bot proposes a guess
//   - POST /solve/feedback  → submit a b/y/g code; bot winnows and guesses again
//   - GET  /solve/{id}      → session snapshot
//   - POST /solve/selfplay  → solve a known answer end to end
//
// The assist flow mirrors playing against a puzzle the server cannot see:
// the client is the oracle, the bot narrows candidates each round.
// Contradictory feedback fails the session with a distinct error; there is
// no retry inside the engine, the client starts over.

package httpserver

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Epidiah/wordlebot/internal/daily"
	"github.com/Epidiah/wordlebot/internal/render"
	"github.com/Epidiah/wordlebot/internal/solver"
	"github.com/Epidiah/wordlebot/internal/words"
)

// mountSolve registers all /solve routes.
func (s *Server) mountSolve(r chi.Router) {
	r.Route("/solve", func(r chi.Router) {
		r.Post("/new", s.handleNewSolve)
		r.Post("/feedback", s.handleFeedback)
		r.Post("/selfplay", s.handleSelfplay)
		r.Get("/{id}", s.handleGetSolve)
	})
}

// newSolveReq/Res payloads for POST /solve/new.
type newSolveReq struct {
	Seed *int64 `json:"seed"` // optional fixed seed (testing/reproduction)
}
type newSolveRes struct {
	SessionID string `json:"sessionId"`
	Guess     string `json:"guess"`
	Round     int    `json:"round"`
	Remaining int    `json:"remaining"`
}

// handleNewSolve creates a session over the full dictionary and returns
// the bot's opening guess.
func (s *Server) handleNewSolve(w http.ResponseWriter, r *http.Request) {
	var req newSolveReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	sess := solver.NewSession(words.Dictionary(), seedOrRandom(req.Seed))
	guess, err := sess.NextGuess()
	if err != nil {
		log.Error().Err(err).Msg("opening guess")
		http.Error(w, `{"error":"empty_dictionary"}`, http.StatusInternalServerError)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	s.insertSolveRow(w, r, sess, "assist")

	_ = json.NewEncoder(w).Encode(newSolveRes{
		SessionID: sess.ID,
		Guess:     guess,
		Round:     sess.Round(),
		Remaining: sess.Remaining(),
	})
}

// feedbackReq/Res payloads for POST /solve/feedback.
type feedbackReq struct {
	SessionID string `json:"sessionId"`
	Feedback  string `json:"feedback"` // b/y/g code for the pending guess
}
type feedbackRes struct {
	State     string   `json:"state"` // playing | solved | failed
	Guess     string   `json:"guess,omitempty"`
	Round     int      `json:"round"`
	Remaining int      `json:"remaining"`
	Emoji     []string `json:"emoji,omitempty"`
	Share     string   `json:"share,omitempty"`
}

// handleFeedback applies one round of oracle feedback and returns either
// the next guess or the terminal state.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	fb, err := solver.ParseFeedback(strings.ToLower(strings.TrimSpace(req.Feedback)))
	if err != nil {
		http.Error(w, `{"error":"invalid_feedback","hint":"5 symbols: b=absent y=present g=correct"}`, http.StatusBadRequest)
		return
	}

	state, err := sess.ApplyFeedback(fb)
	switch {
	case errors.Is(err, solver.ErrExhausted):
		// Feedback contradicts every candidate; fatal for this game.
		s.finishSolveRow(r, sess)
		http.Error(w, `{"error":"contradictory_feedback"}`, http.StatusConflict)
		return
	case errors.Is(err, solver.ErrFinished):
		http.Error(w, `{"error":"session_finished"}`, http.StatusConflict)
		return
	case err != nil:
		log.Error().Err(err).Str("sessionId", sess.ID).Msg("apply feedback")
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	res := feedbackRes{State: state, Round: sess.Round(), Remaining: sess.Remaining()}
	if state == solver.StatePlaying {
		guess, err := sess.NextGuess()
		if err != nil {
			log.Error().Err(err).Str("sessionId", sess.ID).Msg("next guess")
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		res.Guess = guess
	} else {
		s.finishSolveRow(r, sess)
		res.Emoji = render.EmojiRows(sess.History)
		res.Share = render.ShareText(daily.GameNumber(time.Now()), sess.History, state == solver.StateSolved)
	}
	_ = json.NewEncoder(w).Encode(res)
}

// solveSnapshot is returned by GET /solve/{id}.
type solveSnapshot struct {
	SessionID string        `json:"sessionId"`
	State     string        `json:"state"`
	Round     int           `json:"round"`
	Remaining int           `json:"remaining"`
	Pending   string        `json:"pending,omitempty"`
	History   []solver.Turn `json:"history"`
	Emoji     []string      `json:"emoji"`
}

// handleGetSolve returns a full session snapshot.
func (s *Server) handleGetSolve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(solveSnapshot{
		SessionID: sess.ID,
		State:     sess.State(),
		Round:     sess.Round(),
		Remaining: sess.Remaining(),
		Pending:   sess.PendingGuess(),
		History:   sess.History,
		Emoji:     render.EmojiRows(sess.History),
	})
}

// selfplayReq/Res payloads for POST /solve/selfplay.
type selfplayReq struct {
	Answer string `json:"answer"`
	Seed   *int64 `json:"seed"`
}
type selfplayRes struct {
	State      string   `json:"state"` // solved | failed
	GameNumber int      `json:"gameNumber"`
	Guesses    []string `json:"guesses"`
	Feedback   []string `json:"feedback"` // b/y/g code per round
	Emoji      []string `json:"emoji"`
	Share      string   `json:"share"`
}

// handleSelfplay solves a supplied answer end to end and returns the full
// history with rendered rows.
func (s *Server) handleSelfplay(w http.ResponseWriter, r *http.Request) {
	var req selfplayReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	sess := solver.NewSession(words.Dictionary(), seedOrRandom(req.Seed))
	if err := sess.Play(req.Answer); err != nil {
		if errors.Is(err, solver.ErrInvalidWord) {
			http.Error(w, `{"error":"invalid_answer"}`, http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("selfplay")
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	s.insertSolveRow(w, r, sess, "selfplay")
	s.finishSolveRow(r, sess)

	guesses := make([]string, len(sess.History))
	codes := make([]string, len(sess.History))
	for i, turn := range sess.History {
		guesses[i] = turn.Guess
		codes[i] = turn.Feedback.Code()
	}
	num := daily.GameNumber(time.Now())
	_ = json.NewEncoder(w).Encode(selfplayRes{
		State:      sess.State(),
		GameNumber: num,
		Guesses:    guesses,
		Feedback:   codes,
		Emoji:      render.EmojiRows(sess.History),
		Share:      render.ShareText(num, sess.History, sess.State() == solver.StateSolved),
	})
}

// seedOrRandom honors an explicit seed and otherwise draws one.
func seedOrRandom(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return rand.Int63()
}

// ------------------------- solve persistence -------------------------------

// insertSolveRow persists an owner row for history/stats (best effort,
// non-fatal if it fails). No-op without a DB handle.
func (s *Server) insertSolveRow(w http.ResponseWriter, r *http.Request, sess *solver.Session, mode string) {
	if s.db == nil {
		return
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		_, err := s.db.Exec(`INSERT INTO solves (id, user_id, mode, status, guesses, started_at)
		                     VALUES (?,?,?,?,0,?)`, sess.ID, me.ID, mode, sess.State(), now)
		if err != nil {
			log.Warn().Err(err).Str("sessionId", sess.ID).Msg("insert user solve row")
		}
	} else {
		anon := s.ensureAnonID(w, r)
		_, err := s.db.Exec(`INSERT INTO solves (id, anonymous_id, mode, status, guesses, started_at)
		                     VALUES (?,?,?,?,0,?)`, sess.ID, anon, mode, sess.State(), now)
		if err != nil {
			log.Warn().Err(err).Str("sessionId", sess.ID).Msg("insert anon solve row")
		}
	}
}

// finishSolveRow records the terminal state and updates user stats in a
// best-effort transaction. No-op while the session is still playing or
// without a DB handle.
func (s *Server) finishSolveRow(r *http.Request, sess *solver.Session) {
	if s.db == nil || sess.State() == solver.StatePlaying {
		return
	}
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)

	tx, err := s.db.Begin()
	if err != nil {
		log.Warn().Err(err).Msg("begin solve tx")
		return
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE solves SET status=?, guesses=?, finished_at=? WHERE id=?`,
		sess.State(), sess.Round(), time.Now().UTC().Format(time.RFC3339), sess.ID); err != nil {
		log.Warn().Err(err).Str("sessionId", sess.ID).Msg("finish solve row")
	}
	if me != nil {
		if err := bumpStats(tx, me.ID, sess.State() == solver.StateSolved); err != nil {
			log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
		}
	}
	_ = tx.Commit()
}
