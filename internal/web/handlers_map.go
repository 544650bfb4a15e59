package web

import (
	"fmt"
	"net/http"

	"gradquest/internal/mapgen"
)

// GET /map.pdf exports the run's map as a printable PDF.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	sess, id, ok := s.lookup(r)
	if !ok {
		http.Redirect(w, r, "/play", http.StatusFound)
		return
	}

	sess.mu.Lock()
	current, _ := sess.run.Current()
	pdf, err := mapgen.Generate(sess.run.Graph(), current, fmt.Sprintf("Seed %d", sess.seed))
	sess.mu.Unlock()
	if err != nil {
		s.logger().Error("map export", "session", id, "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="gradquest-map.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		s.logger().Warn("map write", "session", id, "err", err)
	}
}
