package employee

type CreateEmployeeRequest struct {
	EmpNumber    string                  `json:"emp_number" form:"emp_number"`
	JobCode      string                  `json:"job_code" form:"job_code"`
	EmpName      string                  `json:"emp_name" form:"emp_name"`
	JobRole      string                  `json:"job_role" form:"job_role"`
	DepartmentID int                     `json:"department_id" form:"department_id"`
	Competencies []CompetencyRequirement `json:"competencies" form:"competencies"`
}

type CompetencyRequirement struct {
	CompetencyID  int `json:"competency_id" form:"competency_id"`
	RequiredScore int `json:"required_score" form:"required_score"`
}

// Complete reports whether a competency and a score have both been chosen.
func (c CompetencyRequirement) Complete() bool {
	return c.CompetencyID > 0 && c.RequiredScore > 0
}

// Validate checks the competency rows only: every row complete and no
// competency chosen twice. The score range is enforced by the input itself
// and is not re-checked here.
func (r *CreateEmployeeRequest) Validate() error {
	for _, c := range r.Competencies {
		if !c.Complete() {
			return ErrIncompleteCompetencies
		}
	}

	seen := make(map[int]bool, len(r.Competencies))
	for _, c := range r.Competencies {
		if seen[c.CompetencyID] {
			return ErrDuplicateCompetencies
		}
		seen[c.CompetencyID] = true
	}
	return nil
}
