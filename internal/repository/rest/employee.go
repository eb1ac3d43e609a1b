package rest

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/competency-web/internal/domain/employee"
	"github.com/cmlabs-hris/competency-web/internal/pkg/apiclient"
)

type employeeRepositoryImpl struct {
	api *apiclient.Client
}

func NewEmployeeRepository(api *apiclient.Client) employee.EmployeeRepository {
	return &employeeRepositoryImpl{api: api}
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	if err := r.api.Get(ctx, "/employees", &result); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return result, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if req.Competencies == nil {
		req.Competencies = []employee.CompetencyRequirement{}
	}

	var result employee.Employee
	if err := r.api.Post(ctx, "/employees", req, &result); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return result, nil
}

// ListCompetencies implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListCompetencies(ctx context.Context) ([]employee.Competency, error) {
	var result []employee.Competency
	if err := r.api.Get(ctx, "/employee-competencies", &result); err != nil {
		return nil, fmt.Errorf("failed to list employee competencies: %w", err)
	}
	return result, nil
}
