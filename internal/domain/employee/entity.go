package employee

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type Employee struct {
	ID                int              `json:"id"`
	EmpNumber         string           `json:"emp_number"`
	JobCode           string           `json:"job_code"`
	EmpName           string           `json:"emp_name"`
	JobRole           string           `json:"job_role"`
	DepartmentID      int              `json:"department_id"`
	EvaluationStatus  EvaluationStatus `json:"evaluation_status"`
	LastEvaluatedDate *string          `json:"last_evaluated_date"`
	Department        *Department      `json:"department"`
	// Competencies is nil when the backend omitted the field and empty when
	// the employee has no requirements.
	Competencies []Competency `json:"competencies"`
}

// Competency is one competency requirement attached to an employee.
// ActualScore stays nil until the employee is evaluated.
type Competency struct {
	ID            int      `json:"id,omitempty"`
	EmployeeID    int      `json:"employee_id,omitempty"`
	CompetencyID  int      `json:"competency_id"`
	RequiredScore int      `json:"required_score"`
	ActualScore   *float64 `json:"actual_score"`
}

// Passed reports whether the actual score meets the required score. It is
// false while the competency is unevaluated.
func (c Competency) Passed() bool {
	return c.ActualScore != nil && *c.ActualScore >= float64(c.RequiredScore)
}

type EvaluationStatus string

const (
	EvaluationStatusPending    EvaluationStatus = "PENDING"
	EvaluationStatusInProgress EvaluationStatus = "IN_PROGRESS"
	EvaluationStatusCompleted  EvaluationStatus = "COMPLETED"
)

// Label is the display form of the status, e.g. "IN PROGRESS".
func (s EvaluationStatus) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

func (s EvaluationStatus) IsValid() bool {
	switch s {
	case EvaluationStatusPending, EvaluationStatusInProgress, EvaluationStatusCompleted:
		return true
	}
	return false
}

// Department accepts either `"IT"` or `{"id": 1, "name": "IT"}`.
type Department struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

func (d *Department) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &d.Name)
	}

	type plain Department
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("department: %w", err)
	}
	*d = Department(p)
	return nil
}
