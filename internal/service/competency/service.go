package competency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/competency-web/internal/domain/competency"
	"github.com/cmlabs-hris/competency-web/internal/pkg/apiclient"
	"github.com/cmlabs-hris/competency-web/internal/pkg/resource"
	"github.com/cmlabs-hris/competency-web/internal/pkg/session"
	"github.com/cmlabs-hris/competency-web/internal/pkg/validator"
)

const (
	MsgNotAuthenticated = "User not authenticated"
	MsgLoadFailed       = "Failed to load competencies"
	MsgCreateFailed     = "Failed to create competency"
	MsgUpdateFailed     = "Failed to update competency"
	MsgDeleteFailed     = "Failed to delete competency"
)

// CreateForm is the state of the Create Competency screen after a submit.
type CreateForm struct {
	Values      competency.CreateCompetencyRequest
	FieldErrors map[string]string
	Message     string
	Error       string
}

type CompetencyService interface {
	// Create validates and submits a new competency. Validation failures
	// never reach the backend.
	Create(ctx context.Context, req competency.CreateCompetencyRequest) CreateForm
	// Mount loads the Competencies List. Without a session token it fails
	// without fetching.
	Mount(ctx context.Context) *ListScreen
	// Update replaces one competency and merges the returned value into
	// screen by id.
	Update(ctx context.Context, screen *ListScreen, req competency.UpdateCompetencyRequest)
	// Delete removes id from the backend and from screen. Without
	// confirmation it only asks for it.
	Delete(ctx context.Context, screen *ListScreen, id int, confirmed bool)
}

type competencyServiceImpl struct {
	competencyRepo competency.CompetencyRepository
}

func NewCompetencyService(competencyRepo competency.CompetencyRepository) CompetencyService {
	return &competencyServiceImpl{competencyRepo: competencyRepo}
}

func (s *competencyServiceImpl) Create(ctx context.Context, req competency.CreateCompetencyRequest) CreateForm {
	form := CreateForm{Values: req}

	if err := req.Validate(); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			form.FieldErrors = validationErrs.ToMap()
			return form
		}
		form.Error = MsgCreateFailed
		return form
	}

	created, err := s.competencyRepo.Create(ctx, req)
	if err != nil {
		slog.Error("CreateCompetency service error", "error", err)
		form.Error = apiclient.DetailOr(err, MsgCreateFailed)
		return form
	}

	return CreateForm{
		Message: fmt.Sprintf("Competency \"%s\" created successfully!", created.Name),
	}
}

func (s *competencyServiceImpl) Mount(ctx context.Context) *ListScreen {
	screen := &ListScreen{}

	if !session.FromContext(ctx).Authenticated() {
		screen.Competencies = resource.Failed[[]competency.Competency](competency.ErrNotAuthenticated)
		screen.Error = MsgNotAuthenticated
		return screen
	}

	screen.Competencies = resource.Load(ctx, s.competencyRepo.List)
	if screen.Competencies.Failed() {
		slog.Error("ListCompetencies service error", "error", screen.Competencies.Err)
		screen.Error = MsgLoadFailed
	}
	return screen
}

func (s *competencyServiceImpl) Update(ctx context.Context, screen *ListScreen, req competency.UpdateCompetencyRequest) {
	screen.Editing = &competency.Competency{ID: req.ID, Code: req.Code, Name: req.Name}

	updated, err := s.competencyRepo.Update(ctx, req)
	if err != nil {
		slog.Error("UpdateCompetency service error", "error", err, "id", req.ID)
		screen.Error = MsgUpdateFailed
		return
	}

	screen.Merge(req.ID, updated)
	screen.CancelEdit()
}

func (s *competencyServiceImpl) Delete(ctx context.Context, screen *ListScreen, id int, confirmed bool) {
	if !confirmed {
		screen.RequestDelete(id)
		return
	}
	screen.ConfirmDeleteID = 0

	if err := s.competencyRepo.Delete(ctx, id); err != nil {
		slog.Error("DeleteCompetency service error", "error", err, "id", id)
		screen.Error = MsgDeleteFailed
		return
	}

	screen.Remove(id)
}
