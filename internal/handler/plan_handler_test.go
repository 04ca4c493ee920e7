package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bruinplan/planner-api/internal/dto"
	appErrors "github.com/bruinplan/planner-api/pkg/errors"
)

type fakePlanSrv struct {
	resp     *dto.GeneratePlanResponse
	best     *dto.RankedScheduleView
	err      error
	cacheHit bool
	lastID   string
}

func (f *fakePlanSrv) Generate(context.Context, dto.GeneratePlanRequest) (*dto.GeneratePlanResponse, bool, error) {
	return f.resp, f.cacheHit, f.err
}

func (f *fakePlanSrv) Get(_ context.Context, planID string) (*dto.GeneratePlanResponse, error) {
	f.lastID = planID
	return f.resp, f.err
}

func (f *fakePlanSrv) Best(_ context.Context, planID string) (*dto.RankedScheduleView, error) {
	f.lastID = planID
	return f.best, f.err
}

func (f *fakePlanSrv) Delete(_ context.Context, planID string) error {
	f.lastID = planID
	return f.err
}

type responseEnvelope struct {
	Data  map[string]interface{} `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func TestPlanHandlerGenerateInvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewPlanHandler(&fakePlanSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader("{nope"))

	handler.Generate(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlanHandlerGenerateSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewPlanHandler(&fakePlanSrv{
		resp:     &dto.GeneratePlanResponse{PlanID: "plan-1", Count: 1, Message: "Found 1 valid schedule"},
		cacheHit: true,
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(`{"courses":[]}`))

	handler.Generate(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "plan-1", envelope.Data["planId"])
	assert.Equal(t, true, envelope.Meta["cache_hit"])
}

func TestPlanHandlerGenerateServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewPlanHandler(&fakePlanSrv{err: appErrors.ErrTooManyCourses})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(`{"courses":[]}`))

	handler.Generate(c)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, appErrors.ErrTooManyCourses.Code, envelope.Error["code"])
}

func TestPlanHandlerGetPassesID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakePlanSrv{resp: &dto.GeneratePlanResponse{PlanID: "plan-7"}}
	handler := NewPlanHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/plans/plan-7", nil)
	c.Params = gin.Params{{Key: "id", Value: "plan-7"}}

	handler.Get(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "plan-7", srv.lastID)
}

func TestPlanHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakePlanSrv{}
	handler := NewPlanHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodDelete, "/plans/plan-7", nil)
	c.Params = gin.Params{{Key: "id", Value: "plan-7"}}

	handler.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "plan-7", srv.lastID)
}

func TestPlanHandlerBestNoValidSchedule(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewPlanHandler(&fakePlanSrv{err: appErrors.ErrNoValidSchedule})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/plans/plan-1/best", nil)
	c.Params = gin.Params{{Key: "id", Value: "plan-1"}}

	handler.Best(c)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, appErrors.ErrNoValidSchedule.Code, envelope.Error["code"])
}
