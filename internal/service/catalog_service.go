package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bruinplan/planner-api/internal/models"
	appErrors "github.com/bruinplan/planner-api/pkg/errors"
)

// CourseCatalog abstracts the catalog source.
type CourseCatalog interface {
	List(subjectPrefix string) []models.Course
	Find(id string) (models.Course, bool)
}

// CatalogService serves course records to the planner UI.
type CatalogService struct {
	catalog CourseCatalog
	logger  *zap.Logger
}

// NewCatalogService constructs the catalog service.
func NewCatalogService(catalog CourseCatalog, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{catalog: catalog, logger: logger}
}

// List returns catalog courses, optionally filtered by subject prefix.
func (s *CatalogService) List(_ context.Context, subjectPrefix string) ([]models.Course, error) {
	if s.catalog == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "course catalog unavailable")
	}
	return s.catalog.List(subjectPrefix), nil
}

// Find returns a single course by its catalog id.
func (s *CatalogService) Find(_ context.Context, id string) (*models.Course, error) {
	if s.catalog == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "course catalog unavailable")
	}
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "course id is required")
	}
	course, ok := s.catalog.Find(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return &course, nil
}
