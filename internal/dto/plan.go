package dto

import "github.com/bruinplan/planner-api/internal/models"

// GeneratePlanRequest carries the selected courses to optimize. An empty
// course list is legal and yields one trivial empty schedule.
type GeneratePlanRequest struct {
	Courses []models.Course `json:"courses" validate:"dive"`
}

// ScheduleEventView is the wire form of one scheduled meeting. Start and End
// are null when the catalog strings could not be parsed.
type ScheduleEventView struct {
	Day       string   `json:"day"`
	TimeValid bool     `json:"timeValid"`
	Start     *float64 `json:"start"`
	End       *float64 `json:"end"`
	Type      string   `json:"type"`
	Course    string   `json:"course"`
	Section   string   `json:"section,omitempty"`
	TimeStr   string   `json:"timeStr"`
}

// RankedScheduleView is one valid candidate with its idle-time cost.
type RankedScheduleView struct {
	Schedule      []ScheduleEventView `json:"schedule"`
	Finals        []ScheduleEventView `json:"finals"`
	TotalGapHours float64             `json:"totalGapHours"`
}

// GeneratePlanResponse returns every valid schedule sorted ascending by total
// gap, plus a plan ID for later retrieval.
type GeneratePlanResponse struct {
	PlanID    string               `json:"planId"`
	Count     int                  `json:"count"`
	Schedules []RankedScheduleView `json:"schedules"`
	Message   string               `json:"message"`
}
