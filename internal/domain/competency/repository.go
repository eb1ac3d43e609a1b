package competency

import "context"

type CompetencyRepository interface {
	List(ctx context.Context) ([]Competency, error)
	Create(ctx context.Context, req CreateCompetencyRequest) (Competency, error)
	Update(ctx context.Context, req UpdateCompetencyRequest) (Competency, error)
	Delete(ctx context.Context, id int) error
}
