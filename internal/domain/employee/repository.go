package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	// ListCompetencies returns every employee's competency rows, keyed by
	// EmployeeID.
	ListCompetencies(ctx context.Context) ([]Competency, error)
}
