package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bruinplan/planner-api/internal/dto"
	appErrors "github.com/bruinplan/planner-api/pkg/errors"
	"github.com/bruinplan/planner-api/pkg/response"
)

type planGenerator interface {
	Generate(ctx context.Context, req dto.GeneratePlanRequest) (*dto.GeneratePlanResponse, bool, error)
	Get(ctx context.Context, planID string) (*dto.GeneratePlanResponse, error)
	Best(ctx context.Context, planID string) (*dto.RankedScheduleView, error)
	Delete(ctx context.Context, planID string) error
}

// PlanHandler exposes the schedule-optimizer endpoints.
type PlanHandler struct {
	service planGenerator
}

// NewPlanHandler constructs the handler.
func NewPlanHandler(svc planGenerator) *PlanHandler {
	return &PlanHandler{service: svc}
}

// Generate ranks every conflict-free schedule for the posted course list.
func (h *PlanHandler) Generate(c *gin.Context) {
	var req dto.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid plan payload"))
		return
	}
	result, cacheHit, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, map[string]interface{}{"cache_hit": cacheHit})
}

// Get returns a previously generated plan.
func (h *PlanHandler) Get(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Delete discards a stored plan.
func (h *PlanHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Best returns the minimum-gap schedule of a stored plan.
func (h *PlanHandler) Best(c *gin.Context) {
	result, err := h.service.Best(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
