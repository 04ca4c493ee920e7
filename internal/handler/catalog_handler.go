package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bruinplan/planner-api/internal/dto"
	"github.com/bruinplan/planner-api/internal/models"
	appErrors "github.com/bruinplan/planner-api/pkg/errors"
	"github.com/bruinplan/planner-api/pkg/response"
)

type catalogReader interface {
	List(ctx context.Context, subjectPrefix string) ([]models.Course, error)
	Find(ctx context.Context, id string) (*models.Course, error)
}

// CatalogHandler exposes the course catalog read endpoints.
type CatalogHandler struct {
	service catalogReader
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(svc catalogReader) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// List returns catalog courses, optionally filtered by subject prefix.
func (h *CatalogHandler) List(c *gin.Context) {
	var query dto.CatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid catalog query"))
		return
	}

	courses, err := h.service.List(c.Request.Context(), query.Subject)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// Get returns a single catalog course by id.
func (h *CatalogHandler) Get(c *gin.Context) {
	course, err := h.service.Find(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}
