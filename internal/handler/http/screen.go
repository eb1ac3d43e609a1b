package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/competency-web/internal/handler/http/response"
	"github.com/cmlabs-hris/competency-web/internal/pkg/session"
)

// screen is embedded by every handler. It persists session changes before
// anything is written.
type screen struct {
	views    *response.Renderer
	sessions session.Store
}

func (s screen) render(w http.ResponseWriter, r *http.Request, statusCode int, name string, page response.Page) {
	sess := session.FromContext(r.Context())
	s.saveSession(w, r, sess)
	page.Authenticated = sess.Authenticated()
	s.views.Render(w, statusCode, name, page)
}

func (s screen) redirect(w http.ResponseWriter, r *http.Request, url string) {
	s.saveSession(w, r, session.FromContext(r.Context()))
	response.Redirect(w, r, url)
}

func (s screen) saveSession(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := s.sessions.Save(w, r, sess); err != nil {
		slog.Error("Session save error", "error", err)
	}
}
