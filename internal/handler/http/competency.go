package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/competency-web/internal/domain/competency"
	"github.com/cmlabs-hris/competency-web/internal/handler/http/response"
	"github.com/cmlabs-hris/competency-web/internal/pkg/session"
	competencyService "github.com/cmlabs-hris/competency-web/internal/service/competency"
	"github.com/go-chi/chi/v5"
)

type CompetencyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	NewPage(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type CompetencyHandlerImpl struct {
	screen
	competencyService competencyService.CompetencyService
}

func NewCompetencyHandler(views *response.Renderer, sessions session.Store, competencyService competencyService.CompetencyService) CompetencyHandler {
	return &CompetencyHandlerImpl{
		screen:            screen{views: views, sessions: sessions},
		competencyService: competencyService,
	}
}

const (
	listTitle   = "Competencies"
	createTitle = "Create Competency"
)

// List implements CompetencyHandler.
func (h *CompetencyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	list := h.competencyService.Mount(r.Context())

	if list.Competencies.Ok() {
		query := r.URL.Query()
		if raw := query.Get("edit"); raw != "" {
			if id, err := strconv.Atoi(raw); err != nil || !list.BeginEdit(id) {
				list.Error = response.ErrorMessage(competency.ErrCompetencyNotFound, "")
			}
		}
		if raw := query.Get("confirm_delete"); raw != "" {
			id, _ := strconv.Atoi(raw)
			list.RequestDelete(id)
		}
	}

	h.render(w, r, http.StatusOK, "competencies", response.Page{Title: listTitle, Data: list})
}

// Update implements CompetencyHandler.
func (h *CompetencyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, "Competency not found")
		return
	}

	var updateReq competency.UpdateCompetencyRequest
	if err := decodeForm(r, &updateReq); err != nil {
		slog.Error("UpdateCompetency decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	updateReq.ID = id

	list := h.competencyService.Mount(r.Context())
	if list.Competencies.Ok() {
		h.competencyService.Update(r.Context(), list, updateReq)
	}
	h.render(w, r, http.StatusOK, "competencies", response.Page{Title: listTitle, Data: list})
}

// Delete implements CompetencyHandler.
func (h *CompetencyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, "Competency not found")
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.Error("DeleteCompetency decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	confirmed := r.PostForm.Get("confirm") == "yes"

	list := h.competencyService.Mount(r.Context())
	if list.Competencies.Ok() {
		h.competencyService.Delete(r.Context(), list, id, confirmed)
	}
	h.render(w, r, http.StatusOK, "competencies", response.Page{Title: listTitle, Data: list})
}

// NewPage implements CompetencyHandler.
func (h *CompetencyHandlerImpl) NewPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "competency_new", response.Page{Title: createTitle, Data: competencyService.CreateForm{}})
}

// Create implements CompetencyHandler.
func (h *CompetencyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq competency.CreateCompetencyRequest
	if err := decodeForm(r, &createReq); err != nil {
		slog.Error("CreateCompetency decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	form := h.competencyService.Create(r.Context(), createReq)
	h.render(w, r, http.StatusOK, "competency_new", response.Page{Title: createTitle, Data: form})
}
