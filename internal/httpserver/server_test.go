// internal/httpserver/server_test.go
//
// Handler tests over httptest with an in-memory session store and no DB.

package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Epidiah/wordlebot/internal/solver"
	"github.com/Epidiah/wordlebot/internal/store"
	"github.com/Epidiah/wordlebot/internal/words"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	if err := words.Init(); err != nil {
		t.Fatalf("words.Init: %v", err)
	}
	return New(store.NewMemoryStore(), nil)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestNewSolveReturnsOpeningGuess(t *testing.T) {
	s := newTestServer(t)
	seed := int64(42)
	rec := doJSON(t, s, http.MethodPost, "/solve/new", map[string]any{"seed": seed})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var res newSolveRes
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.SessionID == "" {
		t.Fatal("missing sessionId")
	}
	if len(res.Guess) != solver.WordLen {
		t.Fatalf("guess %q: want %d letters", res.Guess, solver.WordLen)
	}
	if res.Round != 0 {
		t.Fatalf("round = %d, want 0", res.Round)
	}
	if res.Remaining != len(words.Dictionary()) {
		t.Fatalf("remaining = %d, want %d", res.Remaining, len(words.Dictionary()))
	}
}

// Drives a full assist session: compute real feedback against a fixed
// answer and feed it back until the bot solves.
func TestAssistFlowSolves(t *testing.T) {
	s := newTestServer(t)
	answer := "crane"
	seed := int64(7)

	rec := doJSON(t, s, http.MethodPost, "/solve/new", map[string]any{"seed": seed})
	if rec.Code != http.StatusOK {
		t.Fatalf("new: %d %s", rec.Code, rec.Body.String())
	}
	var start newSolveRes
	if err := json.Unmarshal(rec.Body.Bytes(), &start); err != nil {
		t.Fatalf("decode: %v", err)
	}

	guess := start.Guess
	for round := 0; round < solver.MaxRounds; round++ {
		code := solver.Score(answer, guess).Code()
		rec := doJSON(t, s, http.MethodPost, "/solve/feedback", map[string]any{
			"sessionId": start.SessionID,
			"feedback":  code,
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("feedback round %d: %d %s", round, rec.Code, rec.Body.String())
		}
		var res feedbackRes
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if res.State == solver.StateSolved {
			if guess != answer {
				t.Fatalf("solved but last guess %q != %q", guess, answer)
			}
			if res.Share == "" || len(res.Emoji) != res.Round {
				t.Fatalf("terminal payload incomplete: %+v", res)
			}
			wantShare := fmt.Sprintf("%d/6", res.Round)
			if !strings.Contains(res.Share, wantShare) {
				t.Fatalf("share %q missing %q", res.Share, wantShare)
			}
			return
		}
		if res.State != solver.StatePlaying {
			t.Fatalf("unexpected state %q", res.State)
		}
		guess = res.Guess
	}
	t.Fatalf("did not solve %q within %d rounds", answer, solver.MaxRounds)
}

func TestFeedbackInvalidCode(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/solve/new", map[string]any{"seed": int64(1)})
	var start newSolveRes
	if err := json.Unmarshal(rec.Body.Bytes(), &start); err != nil {
		t.Fatalf("decode: %v", err)
	}

	for _, bad := range []string{"", "gg", "gggggg", "gyxbg"} {
		rec := doJSON(t, s, http.MethodPost, "/solve/feedback", map[string]any{
			"sessionId": start.SessionID,
			"feedback":  bad,
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("feedback %q: status = %d, want 400", bad, rec.Code)
		}
	}
}

func TestFeedbackUnknownSession(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/solve/feedback", map[string]any{
		"sessionId": "nope",
		"feedback":  "ggggg",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetSolveSnapshot(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/solve/new", map[string]any{"seed": int64(3)})
	var start newSolveRes
	if err := json.Unmarshal(rec.Body.Bytes(), &start); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doJSON(t, s, http.MethodGet, "/solve/"+start.SessionID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var snap solveSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.State != solver.StatePlaying || snap.Pending != start.Guess {
		t.Fatalf("snapshot = %+v, want playing with pending %q", snap, start.Guess)
	}

	rec = doJSON(t, s, http.MethodGet, "/solve/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing id: status = %d, want 404", rec.Code)
	}
}

func TestSelfplaySolvesKnownAnswer(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/solve/selfplay", map[string]any{
		"answer": "crane",
		"seed":   int64(11),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var res selfplayRes
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.State != solver.StateSolved {
		t.Fatalf("state = %q, want solved", res.State)
	}
	if n := len(res.Guesses); n == 0 || n > solver.MaxRounds {
		t.Fatalf("guess count = %d", n)
	}
	if last := res.Guesses[len(res.Guesses)-1]; last != "crane" {
		t.Fatalf("last guess = %q, want crane", last)
	}
	if res.Feedback[len(res.Feedback)-1] != "ggggg" {
		t.Fatalf("last feedback = %q, want ggggg", res.Feedback[len(res.Feedback)-1])
	}
	if len(res.Emoji) != len(res.Guesses) || res.Share == "" {
		t.Fatalf("render fields incomplete: %+v", res)
	}
}

func TestSelfplayRejectsInvalidAnswer(t *testing.T) {
	s := newTestServer(t)
	for _, bad := range []string{"", "abcd", "toolong", "cr4ne"} {
		rec := doJSON(t, s, http.MethodPost, "/solve/selfplay", map[string]any{"answer": bad})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("answer %q: status = %d, want 400", bad, rec.Code)
		}
	}
}

func TestFeedbackAfterSolvedConflicts(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/solve/new", map[string]any{"seed": int64(5)})
	var start newSolveRes
	if err := json.Unmarshal(rec.Body.Bytes(), &start); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// All-correct terminates the session; further feedback conflicts.
	rec = doJSON(t, s, http.MethodPost, "/solve/feedback", map[string]any{
		"sessionId": start.SessionID,
		"feedback":  "ggggg",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("solved feedback: %d %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, s, http.MethodPost, "/solve/feedback", map[string]any{
		"sessionId": start.SessionID,
		"feedback":  "bbbbb",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("finished session: status = %d, want 409", rec.Code)
	}
}

func TestAuthRequiresDatabase(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/auth/signup", map[string]string{
		"username": "solver_fan", "password": "longenough1",
	})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("signup without db: status = %d, want 503", rec.Code)
	}
	rec = doJSON(t, s, http.MethodGet, "/daily/leaderboard", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("leaderboard without db: status = %d, want 503", rec.Code)
	}
}
