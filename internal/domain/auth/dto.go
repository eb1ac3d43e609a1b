package auth

import "github.com/cmlabs-hris/competency-web/internal/pkg/validator"

type Role string

const (
	RoleHR  Role = "HR"
	RoleHOD Role = "HOD"
)

// Roles lists the roles a user can register with, default first.
var Roles = []Role{RoleHR, RoleHOD}

// Department is a registration choice. Value is what the backend stores and
// keeps the backend's spelling.
type Department struct {
	Value string
	Label string
}

// Departments lists the departments offered at registration.
var Departments = []Department{
	{Value: "IT", Label: "IT"},
	{Value: "Fincance", Label: "Finance"},
	{Value: "Functional", Label: "Functional"},
}

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

type RegisterRequest struct {
	Username       string `json:"username" form:"username"`
	Password       string `json:"password" form:"password"`
	Role           Role   `json:"role" form:"role"`
	DepartmentName string `json:"department_name" form:"department_name"`
}

func (r *RegisterRequest) Validate() error {
	if validator.IsEmpty(r.Username) ||
		r.Password == "" ||
		validator.IsEmpty(string(r.Role)) ||
		validator.IsEmpty(r.DepartmentName) {
		return ErrMissingFields
	}
	return nil
}
