// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily solve.
// Exposes two endpoints under /daily:
//   - POST /daily/solve       → run the bot against today's word, record result
//   - GET  /daily/leaderboard → top results for today (or a given date)
//
// Each user gets one recorded daily solve per day (enforced by DB).
// Deterministic word selection is based on date + salt; the game number
// counts days since the fixed epoch.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Epidiah/wordlebot/internal/daily"
	"github.com/Epidiah/wordlebot/internal/render"
	"github.com/Epidiah/wordlebot/internal/solver"
	"github.com/Epidiah/wordlebot/internal/words"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv   *Server
	store *daily.Store
	salt  string
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:  s,
		salt: getEnv("DAILY_SALT", "local_dev_salt"),
	}
	if s.db != nil {
		dd.store = daily.NewStore(s.db)
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/solve", dd.handleSolve)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// today returns the date key, game number, word index, and answer for now.
func (d *dailyServer) today() (date string, num, idx int, answer string) {
	now := time.Now()
	date = daily.DateKey(now)
	num = daily.GameNumber(now)
	dict := words.Dictionary()
	if len(dict) == 0 {
		return date, num, 0, ""
	}
	idx = daily.WordIndex(now, d.salt, len(dict))
	return date, num, idx, dict[idx]
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID cookie.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// dailySolveRes is returned by POST /daily/solve.
type dailySolveRes struct {
	Date       string   `json:"date"`
	GameNumber int      `json:"gameNumber"`
	Played     bool     `json:"played"` // true when today's result already existed
	State      string   `json:"state,omitempty"`
	Guesses    int      `json:"guesses,omitempty"`
	Emoji      []string `json:"emoji,omitempty"`
	Share      string   `json:"share,omitempty"`
}

// handleSolve runs the bot against today's word for this user.
// A user's first call of the day records the result; later calls return
// Played=true without re-running.
func (d *dailyServer) handleSolve(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)
	date, num, idx, answer := d.today()
	if answer == "" {
		http.Error(w, `{"error":"empty_dictionary"}`, http.StatusInternalServerError)
		return
	}

	if d.store != nil {
		if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
			_ = json.NewEncoder(w).Encode(dailySolveRes{Date: date, GameNumber: num, Played: true})
			return
		}
	}

	sess := solver.NewSession(words.Dictionary(), seedOrRandom(nil))
	if err := sess.Play(answer); err != nil {
		log.Error().Err(err).Str("date", date).Msg("daily solve")
		http.Error(w, `{"error":"solve_failed"}`, http.StatusInternalServerError)
		return
	}

	if d.store != nil {
		err := d.store.InsertResult(r.Context(), daily.Result{
			UserID:     uid,
			Date:       date,
			GameNumber: num,
			WordIndex:  idx,
			Guesses:    sess.Round(),
			Solved:     sess.State() == solver.StateSolved,
		})
		if err != nil {
			log.Warn().Err(err).Str("date", date).Msg("record daily solve")
		}
	}

	_ = json.NewEncoder(w).Encode(dailySolveRes{
		Date:       date,
		GameNumber: num,
		State:      sess.State(),
		Guesses:    sess.Round(),
		Emoji:      render.EmojiRows(sess.History),
		Share:      render.ShareText(num, sess.History, sess.State() == solver.StateSolved),
	})
}

// lbRes is returned by GET /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if d.store == nil {
		http.Error(w, `{"error":"no_database"}`, http.StatusServiceUnavailable)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _, _, _ = d.today()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
