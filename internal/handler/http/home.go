package http

import (
	"net/http"

	"github.com/cmlabs-hris/competency-web/internal/handler/http/response"
	"github.com/cmlabs-hris/competency-web/internal/pkg/session"
)

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
}

type HomeHandlerImpl struct {
	screen
}

func NewHomeHandler(views *response.Renderer, sessions session.Store) HomeHandler {
	return &HomeHandlerImpl{screen: screen{views: views, sessions: sessions}}
}

// Index implements HomeHandler.
func (h *HomeHandlerImpl) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "home", response.Page{Title: "Competency Management"})
}
