package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bruinplan/planner-api/internal/dto"
	"github.com/bruinplan/planner-api/internal/planner"
	appErrors "github.com/bruinplan/planner-api/pkg/errors"
)

const noValidScheduleMessage = "No valid schedule found: lectures, discussions, or final exams conflict."

// PlanConfig governs planner limits and retention.
type PlanConfig struct {
	MaxCourses    int
	MaxCandidates int
	ResultTTL     time.Duration
	CacheTTL      time.Duration
}

// PlanService runs the schedule optimizer and keeps results addressable for
// follow-up fetches.
type PlanService struct {
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	store     *planStore
	cfg       PlanConfig
}

// NewPlanService wires planner dependencies.
func NewPlanService(cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cfg PlanConfig) *PlanService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxCourses <= 0 {
		cfg.MaxCourses = 12
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = 20000
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 30 * time.Minute
	}
	return &PlanService{
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		store:     newPlanStore(cfg.ResultTTL),
		cfg:       cfg,
	}
}

// Generate enumerates and ranks every conflict-free schedule for the request.
// The bool result reports whether the ranked schedules came from cache.
func (s *PlanService) Generate(ctx context.Context, req dto.GeneratePlanRequest) (*dto.GeneratePlanResponse, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid plan payload")
	}
	if len(req.Courses) > s.cfg.MaxCourses {
		return nil, false, appErrors.Clone(appErrors.ErrTooManyCourses,
			fmt.Sprintf("at most %d courses are supported per plan", s.cfg.MaxCourses))
	}
	if count := planner.CandidateCount(req.Courses); count > s.cfg.MaxCandidates {
		return nil, false, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("course selection produces %d combinations, above the %d limit", count, s.cfg.MaxCandidates))
	}

	for title, tokens := range planner.DroppedDayTokens(req.Courses) {
		s.logger.Warn("dropped unrecognized day tokens",
			zap.String("course", title),
			zap.Strings("tokens", tokens))
	}

	cacheKey, keyErr := planCacheKey(req)
	if keyErr == nil && s.cache.Enabled() {
		var cached []dto.RankedScheduleView
		if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
			resp := s.finishResponse(cached)
			return resp, true, nil
		}
	}

	start := time.Now()
	ranked := planner.Rank(req.Courses)
	s.metrics.ObservePlanGeneration(planner.CandidateCount(req.Courses), len(ranked), time.Since(start))

	views := make([]dto.RankedScheduleView, 0, len(ranked))
	for _, r := range ranked {
		views = append(views, dto.RankedScheduleView{
			Schedule:      eventViews(r.Events),
			Finals:        eventViews(r.Finals),
			TotalGapHours: r.TotalGapHours,
		})
	}

	if keyErr == nil {
		_ = s.cache.Set(ctx, cacheKey, views, s.cfg.CacheTTL)
	}

	resp := s.finishResponse(views)
	s.logger.Info("plan generated",
		zap.String("plan_id", resp.PlanID),
		zap.Int("courses", len(req.Courses)),
		zap.Int("valid_schedules", resp.Count))
	return resp, false, nil
}

// Get returns a previously generated plan by id.
func (s *PlanService) Get(_ context.Context, planID string) (*dto.GeneratePlanResponse, error) {
	if planID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "plan id is required")
	}
	resp, ok := s.store.Get(planID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "plan not found or expired")
	}
	return &resp, nil
}

// Delete discards a stored plan before its TTL expires. Deleting an unknown
// id is a no-op.
func (s *PlanService) Delete(_ context.Context, planID string) error {
	if planID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "plan id is required")
	}
	s.store.Delete(planID)
	return nil
}

// Best returns the minimum-gap schedule of a stored plan.
func (s *PlanService) Best(ctx context.Context, planID string) (*dto.RankedScheduleView, error) {
	resp, err := s.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	if len(resp.Schedules) == 0 {
		return nil, appErrors.ErrNoValidSchedule
	}
	return &resp.Schedules[0], nil
}

func (s *PlanService) finishResponse(views []dto.RankedScheduleView) *dto.GeneratePlanResponse {
	resp := dto.GeneratePlanResponse{
		PlanID:    uuid.NewString(),
		Count:     len(views),
		Schedules: views,
	}
	if resp.Count == 0 {
		resp.Message = noValidScheduleMessage
	} else {
		plural := "s"
		if resp.Count == 1 {
			plural = ""
		}
		resp.Message = fmt.Sprintf("Found %d valid schedule%s", resp.Count, plural)
	}
	s.store.Save(resp.PlanID, resp)
	return &resp
}

func eventViews(events []planner.Event) []dto.ScheduleEventView {
	views := make([]dto.ScheduleEventView, 0, len(events))
	for _, ev := range events {
		view := dto.ScheduleEventView{
			Day:       ev.Day,
			TimeValid: ev.TimeValid,
			Type:      string(ev.Kind),
			Course:    ev.Course,
			Section:   ev.Section,
			TimeStr:   ev.TimeStr,
		}
		if ev.TimeValid {
			start, end := ev.Start, ev.End
			view.Start = &start
			view.End = &end
		}
		views = append(views, view)
	}
	return views
}

func planCacheKey(req dto.GeneratePlanRequest) (string, error) {
	payload, err := json.Marshal(req.Courses)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return "plan:" + hex.EncodeToString(sum[:]), nil
}
