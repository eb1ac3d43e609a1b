package competency

import "github.com/cmlabs-hris/competency-web/internal/pkg/validator"

type CreateCompetencyRequest struct {
	Code string `json:"code" form:"code" validate:"required"`
	Name string `json:"name" form:"name" validate:"required"`
}

func (r *CreateCompetencyRequest) Validate() error {
	return validator.Struct(r)
}

// UpdateCompetencyRequest is a full replace of one competency.
type UpdateCompetencyRequest struct {
	ID   int    `json:"-" form:"-"`
	Code string `json:"code" form:"code"`
	Name string `json:"name" form:"name"`
}
