package web

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"gradquest/internal/game"
	"gradquest/internal/rng"
	"gradquest/internal/session"
)

// MaxSettleFrames bounds how far a single request fast-forwards a battle.
const MaxSettleFrames = 1 << 16

// Session is one browser's run. Handlers hold mu while touching run.
type Session struct {
	mu     sync.Mutex
	run    *game.Run
	sounds *soundLog
	seed   uint64
}

type Server struct {
	Store   session.Store[*Session]
	Balance game.Balance
	// Seed fixes the RNG of every new run. Zero draws a fresh seed per run.
	Seed uint64
	Log  *slog.Logger
	Tmpl *template.Template
}

const cookieName = "gradquest_sid"

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /play", s.handlePlay)
	mux.HandleFunc("GET /map.pdf", s.handleMap)
	mux.Handle("GET /static/", staticHandler())

	mux.HandleFunc("POST /start", s.handleStart)
	mux.HandleFunc("POST /restart", s.handleRestart)
	mux.HandleFunc("POST /quit", s.handleQuit)
	mux.HandleFunc("POST /continue", s.action(s.continueRun))
	mux.HandleFunc("POST /select", s.action(selectNode))
	mux.HandleFunc("POST /card", s.action(chooseCard))
	mux.HandleFunc("POST /target", s.action(chooseTarget))
	mux.HandleFunc("POST /cancel", s.action(func(sess *Session, _ *http.Request) (bool, error) {
		return sess.run.CancelCard(), nil
	}))
	mux.HandleFunc("POST /reward", s.action(chooseReward))
	mux.HandleFunc("POST /godmode", s.action(func(sess *Session, _ *http.Request) (bool, error) {
		return sess.run.GodMode(), nil
	}))
	return mux
}

func (s *Server) logger() *slog.Logger {
	if s.Log == nil {
		return slog.Default()
	}
	return s.Log
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/play", http.StatusFound)
}

// GET /play renders the current screen, or the title page without a run.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	sess, _, ok := s.lookup(r)
	if !ok {
		s.render(w, "layout.html", PlayViewModel{Screen: "none"})
		return
	}
	sess.mu.Lock()
	vm := makeViewModel(sess)
	sess.mu.Unlock()
	s.render(w, "layout.html", vm)
}

// action wraps a run operation: it loads the caller's run, applies fn under
// the session lock, fast-forwards any animation it started and redirects
// back to /play. fn returns false for a soft no-op, a badForm for input it
// cannot parse and any other error for a failure of its own.
func (s *Server) action(fn func(*Session, *http.Request) (bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		sess, id, ok := s.lookup(r)
		if !ok {
			http.Redirect(w, r, "/play", http.StatusSeeOther)
			return
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()
		applied, err := fn(sess, r)
		var bad badForm
		switch {
		case errors.As(err, &bad):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case err != nil:
			s.logger().Error("action", "session", id, "path", r.URL.Path, "err", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		frames := sess.run.Settle(MaxSettleFrames)
		s.logger().Debug("action", "session", id, "path", r.URL.Path, "applied", applied,
			"frames", frames, "screen", sess.run.Screen().String())
		if err := s.Store.Put(r.Context(), id, sess); err != nil {
			http.Error(w, "failed to save run", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/play", http.StatusSeeOther)
	}
}

// lookup finds the run behind the session cookie.
func (s *Server) lookup(r *http.Request) (*Session, string, bool) {
	id := s.sessionID(r)
	if id == "" {
		return nil, "", false
	}
	sess, ok, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.logger().Error("session lookup", "session", id, "err", err)
		return nil, "", false
	}
	if !ok {
		return nil, "", false
	}
	return sess, id, true
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// newSession builds a run for a fresh session id.
func (s *Server) newSession(ctx context.Context, id string) (*Session, error) {
	sess := &Session{sounds: &soundLog{}}
	if err := s.reseed(sess, id); err != nil {
		return nil, err
	}
	if err := s.Store.Put(ctx, id, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// reseed replaces the session's run with a new one on its own RNG, so the
// seed shown for a run always regenerates its map. The caller holds sess.mu
// unless sess is not shared yet.
func (s *Server) reseed(sess *Session, id string) error {
	seed := s.Seed
	if seed == 0 {
		seed = rng.RandomSeed()
	}
	run, err := game.NewRun(game.Env{
		Rand:  rng.New(seed),
		Audio: sess.sounds,
		Log:   s.logger().With("session", id, "seed", seed),
	}, s.Balance)
	if err != nil {
		return err
	}
	sess.run, sess.seed = run, seed
	sess.sounds.Drain()
	return nil
}

// continueRun leaves the current screen. Play again after a finished run
// starts over on a new seed.
func (s *Server) continueRun(sess *Session, r *http.Request) (bool, error) {
	if sess.run.Screen() != game.ScreenGameOver {
		return sess.run.Continue(), nil
	}
	if err := s.reseed(sess, s.sessionID(r)); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Server) render(w http.ResponseWriter, name string, vm PlayViewModel) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.Tmpl.ExecuteTemplate(w, name, vm); err != nil {
		s.logger().Error("render", "template", name, "err", err)
		http.Error(w, "failed to render template", http.StatusInternalServerError)
	}
}

func formInt(r *http.Request, key string) (int, error) {
	v, err := strconv.Atoi(r.FormValue(key))
	if err != nil {
		return 0, badForm{key}
	}
	return v, nil
}

type badForm struct{ key string }

func (e badForm) Error() string { return "bad or missing field " + strconv.Quote(e.key) }
