package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/competency-web/internal/domain/competency"
	"github.com/cmlabs-hris/competency-web/internal/pkg/apiclient"
)

type competencyRepositoryImpl struct {
	api *apiclient.Client
}

func NewCompetencyRepository(api *apiclient.Client) competency.CompetencyRepository {
	return &competencyRepositoryImpl{api: api}
}

// List implements competency.CompetencyRepository.
func (r *competencyRepositoryImpl) List(ctx context.Context) ([]competency.Competency, error) {
	var result []competency.Competency
	if err := r.api.Get(ctx, "/competencies", &result); err != nil {
		return nil, fmt.Errorf("failed to list competencies: %w", err)
	}
	return result, nil
}

// Create implements competency.CompetencyRepository.
func (r *competencyRepositoryImpl) Create(ctx context.Context, req competency.CreateCompetencyRequest) (competency.Competency, error) {
	var result competency.Competency
	if err := r.api.Post(ctx, "/competencies", req, &result); err != nil {
		return competency.Competency{}, fmt.Errorf("failed to create competency: %w", err)
	}
	return result, nil
}

// Update implements competency.CompetencyRepository.
func (r *competencyRepositoryImpl) Update(ctx context.Context, req competency.UpdateCompetencyRequest) (competency.Competency, error) {
	var result competency.Competency
	if err := r.api.Put(ctx, competencyPath(req.ID), req, &result); err != nil {
		return competency.Competency{}, fmt.Errorf("failed to update competency %d: %w", req.ID, notFound(err))
	}
	return result, nil
}

// Delete implements competency.CompetencyRepository.
func (r *competencyRepositoryImpl) Delete(ctx context.Context, id int) error {
	if err := r.api.Delete(ctx, competencyPath(id)); err != nil {
		return fmt.Errorf("failed to delete competency %d: %w", id, notFound(err))
	}
	return nil
}

func competencyPath(id int) string {
	return fmt.Sprintf("/competencies/%d", id)
}

func notFound(err error) error {
	if apiclient.StatusCode(err) == http.StatusNotFound {
		return fmt.Errorf("%w: %w", competency.ErrCompetencyNotFound, err)
	}
	return err
}
