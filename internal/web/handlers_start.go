package web

import (
	"net/http"

	"gradquest/internal/combat"
	"gradquest/internal/levelgraph"
)

// POST /start opens a new run on the menu screen. A browser without a
// session cookie gets one; a browser with a live run has it replaced in
// place.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if sess, id, ok := s.lookup(r); ok {
		sess.mu.Lock()
		err := s.reseed(sess, id)
		seed := sess.seed
		sess.mu.Unlock()
		if err != nil {
			s.logger().Error("start run", "session", id, "err", err)
			http.Error(w, "failed to start run", http.StatusInternalServerError)
			return
		}
		s.logger().Info("run opened", "session", id, "seed", seed)
		http.Redirect(w, r, "/play", http.StatusSeeOther)
		return
	}

	id := s.sessionID(r)
	if id == "" {
		id = s.Store.NewID()
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	sess, err := s.newSession(ctx, id)
	if err != nil {
		s.logger().Error("start run", "session", id, "err", err)
		http.Error(w, "failed to start run", http.StatusInternalServerError)
		return
	}
	s.logger().Info("run opened", "session", id, "seed", sess.seed)
	http.Redirect(w, r, "/play", http.StatusSeeOther)
}

// POST /restart throws the current run away and deals a new map and deck on
// a new seed.
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	sess, id, ok := s.lookup(r)
	if !ok {
		http.Redirect(w, r, "/play", http.StatusSeeOther)
		return
	}
	sess.mu.Lock()
	err := s.reseed(sess, id)
	sess.mu.Unlock()
	if err != nil {
		s.logger().Error("restart run", "session", id, "err", err)
		http.Error(w, "failed to restart run", http.StatusInternalServerError)
		return
	}
	if err := s.Store.Put(r.Context(), id, sess); err != nil {
		http.Error(w, "failed to save run", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/play", http.StatusSeeOther)
}

// POST /quit drops the run and the session cookie.
func (s *Server) handleQuit(w http.ResponseWriter, r *http.Request) {
	if id := s.sessionID(r); id != "" {
		if err := s.Store.Delete(r.Context(), id); err != nil {
			http.Error(w, "failed to drop run", http.StatusInternalServerError)
			return
		}
		s.logger().Info("run quit", "session", id)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/play", http.StatusSeeOther)
}

func selectNode(sess *Session, r *http.Request) (bool, error) {
	id, err := formInt(r, "node")
	if err != nil {
		return false, err
	}
	return sess.run.SelectNode(levelgraph.NodeID(id)), nil
}

func chooseCard(sess *Session, r *http.Request) (bool, error) {
	slot, err := formInt(r, "slot")
	if err != nil {
		return false, err
	}
	if slot < 0 || slot >= combat.DeckSize {
		return false, badForm{"slot"}
	}
	return sess.run.ChooseCard(slot), nil
}

// chooseTarget confirms the picked card. A missing enemy field is a miss:
// damage cards cancel, self-targeted cards still commit.
func chooseTarget(sess *Session, r *http.Request) (bool, error) {
	if r.FormValue("enemy") == "" {
		return sess.run.ChooseTarget(-1, false), nil
	}
	index, err := formInt(r, "enemy")
	if err != nil {
		return false, err
	}
	return sess.run.ChooseTarget(index, true), nil
}

func chooseReward(sess *Session, r *http.Request) (bool, error) {
	slot, err := formInt(r, "slot")
	if err != nil {
		return false, err
	}
	return sess.run.ChooseReward(slot), nil
}
