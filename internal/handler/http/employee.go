package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/competency-web/internal/domain/employee"
	"github.com/cmlabs-hris/competency-web/internal/handler/http/response"
	"github.com/cmlabs-hris/competency-web/internal/pkg/session"
	employeeService "github.com/cmlabs-hris/competency-web/internal/service/employee"
)

const employeeListPath = "/employees"

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	NewPage(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	screen
	employeeService employeeService.EmployeeService
}

func NewEmployeeHandler(views *response.Renderer, sessions session.Store, employeeService employeeService.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		screen:          screen{views: views, sessions: sessions},
		employeeService: employeeService,
	}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	expanded := employeeService.ParseExpansion(r.URL.Query()["expanded"])
	list := h.employeeService.List(r.Context(), expanded, employeeListPath)
	h.render(w, r, http.StatusOK, "employees", response.Page{Title: "Employees", Data: list})
}

// NewPage implements EmployeeHandler.
func (h *EmployeeHandlerImpl) NewPage(w http.ResponseWriter, r *http.Request) {
	form := h.employeeService.MountCreate(r.Context())
	h.render(w, r, http.StatusOK, "employee_new", response.Page{Title: "Create Employee", Data: form})
}

// Create implements EmployeeHandler. The same post adds a row, removes a row
// or submits, depending on which button was pressed.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest
	if err := decodeForm(r, &createReq); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	form := h.employeeService.MountCreate(r.Context())
	form.Values = createReq

	action := r.PostForm.Get("action")
	switch {
	case action == "add":
		form.AddRow()
	case strings.HasPrefix(action, "remove-"):
		i, err := strconv.Atoi(strings.TrimPrefix(action, "remove-"))
		if err != nil {
			i = -1
		}
		if err := form.RemoveRow(i); err != nil {
			form.Error = response.ErrorMessage(err, "")
		}
	default:
		h.employeeService.Submit(r.Context(), form)
	}

	h.render(w, r, http.StatusOK, "employee_new", response.Page{Title: "Create Employee", Data: form})
}
