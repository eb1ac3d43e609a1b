package employee

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cmlabs-hris/competency-web/internal/domain/competency"
	"github.com/cmlabs-hris/competency-web/internal/domain/employee"
	"github.com/cmlabs-hris/competency-web/internal/pkg/apiclient"
	"github.com/cmlabs-hris/competency-web/internal/pkg/resource"
)

const (
	MsgCatalogFailed  = "Failed to fetch competencies. Please try again later."
	MsgIncompleteRows = "Please complete all competency selections"
	MsgDuplicateRows  = "Each competency can only be selected once"
	MsgCreated        = "Employee added successfully!"
	MsgCreateFailed   = "Failed to create employee"
	MsgListFailed     = "Failed to load employees"
)

type EmployeeService interface {
	// MountCreate loads the competency catalog for the Create Employee form.
	MountCreate(ctx context.Context) *CreateForm
	// Submit sends form.Values when every competency row is complete.
	Submit(ctx context.Context, form *CreateForm)
	// List loads the catalog and then every employee. listPath is the
	// screen's path, used to build each row's expand toggle link.
	List(ctx context.Context, expanded Expansion, listPath string) *ListScreen
}

type employeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	competencyRepo competency.CompetencyRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, competencyRepo competency.CompetencyRepository) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo:   employeeRepo,
		competencyRepo: competencyRepo,
	}
}

func (s *employeeServiceImpl) MountCreate(ctx context.Context) *CreateForm {
	form := &CreateForm{}
	form.Catalog = resource.Load(ctx, s.competencyRepo.List)
	if form.Catalog.Failed() {
		slog.Error("ListCompetencies service error", "error", form.Catalog.Err)
		form.Error = MsgCatalogFailed
	}
	return form
}

func (s *employeeServiceImpl) Submit(ctx context.Context, form *CreateForm) {
	form.Message, form.Error = "", ""

	if err := form.Values.Validate(); err != nil {
		switch {
		case errors.Is(err, employee.ErrIncompleteCompetencies):
			form.Error = MsgIncompleteRows
			return
		case errors.Is(err, employee.ErrDuplicateCompetencies):
			form.Error = MsgDuplicateRows
			return
		}
		form.Error = MsgCreateFailed
		return
	}

	if _, err := s.employeeRepo.Create(ctx, form.Values); err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		form.Error = apiclient.DetailOr(err, MsgCreateFailed)
		return
	}

	form.Values = employee.CreateEmployeeRequest{}
	form.Message = MsgCreated
}

func (s *employeeServiceImpl) List(ctx context.Context, expanded Expansion, listPath string) *ListScreen {
	screen := &ListScreen{}

	// The catalog only supplies names; a failure falls back to placeholders.
	catalog, err := s.competencyRepo.List(ctx)
	if err != nil {
		slog.Warn("ListCompetencies for employee list failed", "error", err)
	}

	screen.Employees = resource.Load(ctx, s.loadEmployees)
	if screen.Employees.Failed() {
		slog.Error("ListEmployees service error", "error", screen.Employees.Err)
		screen.Error = MsgListFailed
		return screen
	}

	screen.Rows = buildRows(screen.Employees.Data, NameLookup(catalog), expanded, listPath)
	return screen
}

func (s *employeeServiceImpl) loadEmployees(ctx context.Context) ([]employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !needsCompetencies(employees) {
		return employees, nil
	}

	rows, err := s.employeeRepo.ListCompetencies(ctx)
	if err != nil {
		return nil, err
	}
	attachCompetencies(employees, rows)
	return employees, nil
}
